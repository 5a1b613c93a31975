// Package catalog holds the fixed set of orderable items and vendors the
// assistant is allowed to recommend. The tables are loaded once at startup
// and never mutated, so a Catalog is safe to share across requests.
package catalog

import (
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain/entity"
)

// Catalog is the in-memory implementation of domain.CatalogRepository.
type Catalog struct {
	menu      []entity.CatalogItem
	sponsored []entity.CatalogItem
	vendors   []entity.Vendor
	byID      map[int]entity.CatalogItem
}

// New builds the catalog from the fixed demo tables.
func New() domain.CatalogRepository {
	return newWith(menuItems, sponsoredItems, vendors)
}

// NewWith builds a catalog from caller-supplied tables. Used by tests
// that want a small, known item set.
func NewWith(menu, sponsored []entity.CatalogItem) domain.CatalogRepository {
	return newWith(menu, sponsored, nil)
}

func newWith(menu, sponsored []entity.CatalogItem, vendors []entity.Vendor) *Catalog {
	c := &Catalog{
		menu:      menu,
		sponsored: sponsored,
		vendors:   vendors,
		byID:      make(map[int]entity.CatalogItem, len(menu)+len(sponsored)),
	}
	for _, item := range menu {
		c.byID[item.ID] = item
	}
	for _, item := range sponsored {
		c.byID[item.ID] = item
	}
	return c
}

// AllItems returns every item, organic first then sponsored, in stable
// order. The same order feeds both prompt serialization and display.
func (c *Catalog) AllItems() []entity.CatalogItem {
	all := make([]entity.CatalogItem, 0, len(c.menu)+len(c.sponsored))
	all = append(all, c.menu...)
	all = append(all, c.sponsored...)
	return all
}

// MenuItems returns the organic menu items.
func (c *Catalog) MenuItems() []entity.CatalogItem {
	items := make([]entity.CatalogItem, len(c.menu))
	copy(items, c.menu)
	return items
}

// SponsoredItems returns the promoted items.
func (c *Catalog) SponsoredItems() []entity.CatalogItem {
	items := make([]entity.CatalogItem, len(c.sponsored))
	copy(items, c.sponsored)
	return items
}

// Resolve maps ids onto catalog items, mirroring the caller's order.
// Unknown ids are dropped without error; duplicate ids yield duplicate
// entries. Callers that want a de-duplicated result de-duplicate the ids
// before resolving.
func (c *Catalog) Resolve(ids []int) []entity.CatalogItem {
	items := make([]entity.CatalogItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := c.byID[id]; ok {
			items = append(items, item)
		}
	}
	return items
}

// Vendors returns the vendor directory.
func (c *Catalog) Vendors() []entity.Vendor {
	out := make([]entity.Vendor, len(c.vendors))
	copy(out, c.vendors)
	return out
}
