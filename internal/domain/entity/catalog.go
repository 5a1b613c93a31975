package entity

// CatalogItem is a single orderable item (Domain layer pure object).
// The catalog assigns ids at startup; they are stable for the process
// lifetime and never generated per request.
type CatalogItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"` // whole naira
	VendorName  string `json:"vendorName"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Sponsored   bool   `json:"sponsored,omitempty"`
}

// Vendor is a restaurant or store listed in the app.
type Vendor struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Rating       string   `json:"rating"`
	DeliveryTime string   `json:"deliveryTime"`
	Categories   []string `json:"categories"`
	Location     string   `json:"location"`
}
