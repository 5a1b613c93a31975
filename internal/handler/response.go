package handler

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain"
)

// ErrorBody is the uniform error payload for request-level failures.
// Orchestration failures never reach this path: /api/chat absorbs them
// into an always-200 chat payload.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse maps a domain error onto an HTTP error response.
func ErrorResponse(c *app.RequestContext, err error) {
	userMessage := func(err error) string {
		if domainErr, ok := err.(*domain.DomainError); ok {
			return domainErr.UserMessage()
		}
		return "an error occurred"
	}

	switch {
	case domain.IsInvalidInput(err):
		c.JSON(consts.StatusBadRequest, ErrorBody{
			Code:    "INVALID_INPUT",
			Message: userMessage(err),
		})
	default:
		// internal detail never leaves the server
		c.JSON(consts.StatusInternalServerError, ErrorBody{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
	}
}
