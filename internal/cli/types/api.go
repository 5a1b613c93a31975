package types

import "time"

// Wire shapes for the Chowpal API, kept separate from the server's
// internal DTOs so the CLI compiles against the HTTP contract only.

// Card is one recommended catalog item.
type Card struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	VendorName  string `json:"vendorName"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Sponsored   bool   `json:"sponsored,omitempty"`
}

// Turn is one conversation turn.
type Turn struct {
	ID        int64     `json:"id,omitempty"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	Cards     []Card    `json:"cards,omitempty"`
}

// ChatRequest is the POST /api/chat body.
type ChatRequest struct {
	Message   string `json:"message,omitempty"`
	History   []Turn `json:"history,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Image     string `json:"image,omitempty"`
}

// ChatResponse is the POST /api/chat reply.
type ChatResponse struct {
	Text  string `json:"text"`
	Cards []Card `json:"cards"`
}

// NewSessionRequest is the POST /api/session/new body.
type NewSessionRequest struct {
	SessionID string `json:"sessionId,omitempty"`
}

// NewSessionResponse is the POST /api/session/new reply.
type NewSessionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MenuResponse is the GET /api/menu reply.
type MenuResponse struct {
	Items []Card `json:"items"`
}

// Vendor is one vendor directory entry.
type Vendor struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Rating       string   `json:"rating"`
	DeliveryTime string   `json:"deliveryTime"`
	Categories   []string `json:"categories"`
	Location     string   `json:"location"`
}

// VendorsResponse is the GET /api/vendors reply.
type VendorsResponse struct {
	Vendors []Vendor `json:"vendors"`
}
