// cart.go
package shopcart

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart holds validated item quantities for one customer. The cart ID and
// customer ID are fixed at construction and exposed only through read
// accessors. Every mutation validates its arguments and checks catalog
// membership before touching stored state, so a failed call leaves the cart
// exactly as it was.
type Cart struct {
	cartID     uuid.UUID
	customerID string
	catalog    *Catalog
	items      map[string]int
}

// NewCart creates an empty cart for the given customer, bound to catalog for
// item lookups. A fresh version 4 UUID is generated as the cart ID.
func NewCart(customerID string, catalog *Catalog) (*Cart, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: catalog must not be nil", ErrShoppingCart)
	}

	if err := ValidateCustomerID(customerID); err != nil {
		return nil, err
	}

	return &Cart{
		cartID:     uuid.New(),
		customerID: customerID,
		catalog:    catalog,
		items:      make(map[string]int),
	}, nil
}

// CartID returns the immutable cart identifier.
func (c *Cart) CartID() uuid.UUID {
	return c.cartID
}

// CustomerID returns the immutable customer identifier.
func (c *Cart) CustomerID() string {
	return c.customerID
}

// AddItem puts quantity units of the named item into the cart, or increases
// the stored quantity if the item is already present. The merged quantity is
// checked against MaxQuantity before anything is written, so an overflowing
// add fails and leaves the existing quantity in place.
func (c *Cart) AddItem(itemName string, quantity int) error {
	if err := ValidateItemName(itemName); err != nil {
		return err
	}

	if err := ValidateQuantity(quantity); err != nil {
		return err
	}

	if !c.catalog.HasItem(itemName) {
		return fmt.Errorf("%w: %q does not exist in the catalog", ErrItemNotInCatalog, itemName)
	}

	newQuantity := quantity
	if existing, ok := c.items[itemName]; ok {
		newQuantity = existing + quantity
		if err := ValidateQuantity(newQuantity); err != nil {
			return err
		}
	}

	c.items[itemName] = newQuantity
	return nil
}

// UpdateItemQuantity overwrites the stored quantity of an item already in
// the cart. The quantity is an absolute value, not an increment.
func (c *Cart) UpdateItemQuantity(itemName string, quantity int) error {
	if err := ValidateItemName(itemName); err != nil {
		return err
	}

	if err := ValidateQuantity(quantity); err != nil {
		return err
	}

	if _, ok := c.items[itemName]; !ok {
		return fmt.Errorf("%w: %q", ErrItemNotInCart, itemName)
	}

	c.items[itemName] = quantity
	return nil
}

// RemoveItem deletes an item from the cart.
func (c *Cart) RemoveItem(itemName string) error {
	if err := ValidateItemName(itemName); err != nil {
		return err
	}

	if _, ok := c.items[itemName]; !ok {
		return fmt.Errorf("%w: %q", ErrItemNotInCart, itemName)
	}

	delete(c.items, itemName)
	return nil
}

// GetItems returns a copy of the cart contents. Mutating the returned map
// has no effect on the cart.
func (c *Cart) GetItems() map[string]int {
	out := make(map[string]int, len(c.items))
	for name, quantity := range c.items {
		out[name] = quantity
	}
	return out
}

// GetTotal returns the exact decimal cost of the cart: the sum of quantity
// times catalog unit price over all items. AddItem only accepts items the
// catalog carries, so every stored item must have a price; a miss here means
// internal state was corrupted, and GetTotal panics rather than returning a
// short total.
func (c *Cart) GetTotal() decimal.Decimal {
	total := decimal.New(0, -PriceDecimalPlaces)

	for itemName, quantity := range c.items {
		price, ok := c.catalog.GetPrice(itemName)
		if !ok {
			panic(fmt.Sprintf("shopcart: cart item %q has no catalog price", itemName))
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(quantity))))
	}

	return total
}
