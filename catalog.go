// catalog.go
package shopcart

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Catalog is a read-only mapping from item name to unit price. It is
// populated once at construction and never mutated afterward; read accessors
// return copies so callers cannot reach internal state.
type Catalog struct {
	items map[string]decimal.Decimal
}

// NewCatalog validates every entry and builds an immutable catalog. If any
// entry is invalid the whole construction is rejected and no catalog is
// produced. Entries are validated in sorted name order, so which failure is
// reported does not depend on map iteration order.
func NewCatalog(items map[string]decimal.Decimal) (*Catalog, error) {
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)

	validated := make(map[string]decimal.Decimal, len(items))
	for _, name := range names {
		if err := ValidateItemName(name); err != nil {
			return nil, err
		}

		price := items[name]
		if err := ValidatePrice(price); err != nil {
			return nil, fmt.Errorf("item %q: %w", name, err)
		}

		validated[name] = price
	}

	return &Catalog{items: validated}, nil
}

// HasItem reports whether the catalog carries the item. Absence is reported
// as false, never as an error.
func (c *Catalog) HasItem(itemName string) bool {
	_, ok := c.items[itemName]
	return ok
}

// GetPrice returns the unit price of an item. The second return value is
// false when the item is not in the catalog.
func (c *Catalog) GetPrice(itemName string) (decimal.Decimal, bool) {
	price, ok := c.items[itemName]
	return price, ok
}

// GetAllItems returns a copy of the catalog contents. Mutating the returned
// map has no effect on the catalog.
func (c *Catalog) GetAllItems() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(c.items))
	for name, price := range c.items {
		out[name] = price
	}
	return out
}
