// errors.go
package shopcart

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every error returned by this package wraps exactly one of
// the leaf sentinels below, so callers can match broadly with
// errors.Is(err, ErrShoppingCart) or errors.Is(err, ErrValidation), or match
// a specific failure class with a leaf sentinel.
var (
	// ErrShoppingCart is the root of the taxonomy.
	ErrShoppingCart = errors.New("shopping cart")

	// ErrValidation groups all malformed-input failures.
	ErrValidation = fmt.Errorf("%w: invalid input", ErrShoppingCart)

	// ErrInvalidCustomerID reports a customer ID that does not match the
	// required format.
	ErrInvalidCustomerID = fmt.Errorf("%w: customer id", ErrValidation)

	// ErrInvalidQuantity reports a quantity outside [MinQuantity, MaxQuantity].
	ErrInvalidQuantity = fmt.Errorf("%w: quantity", ErrValidation)

	// ErrInvalidItemName reports an item name with a bad length or characters.
	ErrInvalidItemName = fmt.Errorf("%w: item name", ErrValidation)

	// ErrInvalidPrice reports a price outside [MinPrice, MaxPrice] or with
	// more than PriceDecimalPlaces fractional digits.
	ErrInvalidPrice = fmt.Errorf("%w: price", ErrValidation)

	// ErrInvalidUUID reports a value that is not a version 4 UUID.
	ErrInvalidUUID = fmt.Errorf("%w: uuid", ErrValidation)

	// ErrImmutabilityViolation signals an attempt to overwrite an identity
	// field after construction. Cart identity fields are unexported and have
	// no setters, so the violation cannot be expressed through this package's
	// API; the sentinel is exported for callers that layer their own mutation
	// surface on top of Cart.
	ErrImmutabilityViolation = fmt.Errorf("%w: immutable field modification", ErrShoppingCart)

	// ErrItemNotInCatalog signals an add of an item the catalog does not carry.
	ErrItemNotInCatalog = fmt.Errorf("%w: item not in catalog", ErrShoppingCart)

	// ErrItemNotInCart signals an update or remove of an item the cart does
	// not hold.
	ErrItemNotInCart = fmt.Errorf("%w: item not in cart", ErrShoppingCart)
)
