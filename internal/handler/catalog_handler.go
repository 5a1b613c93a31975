package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/handler/dto"
)

// CatalogHandler serves the read-only catalog endpoints.
type CatalogHandler struct {
	catalog domain.CatalogRepository
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(catalog domain.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Menu lists the full catalog, organic and sponsored.
//
//	@Summary	List orderable items
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{object}	dto.MenuResponse
//	@Router		/api/menu [get]
func (h *CatalogHandler) Menu(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, dto.MenuResponse{
		Items: h.catalog.AllItems(),
	})
}

// Vendors lists the vendor directory.
//
//	@Summary	List vendors
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{object}	dto.VendorsResponse
//	@Router		/api/vendors [get]
func (h *CatalogHandler) Vendors(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, dto.VendorsResponse{
		Vendors: h.catalog.Vendors(),
	})
}
