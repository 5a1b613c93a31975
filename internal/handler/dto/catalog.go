package dto

import "github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain/entity"

// MenuResponse is the GET /api/menu reply.
type MenuResponse struct {
	Items []entity.CatalogItem `json:"items"`
}

// VendorsResponse is the GET /api/vendors reply.
type VendorsResponse struct {
	Vendors []entity.Vendor `json:"vendors"`
}
