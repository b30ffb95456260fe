// validators.go
package shopcart

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bounds enforced by the validators.
const (
	MinQuantity        = 1
	MaxQuantity        = 10000
	MinItemNameLength  = 1
	MaxItemNameLength  = 100
	PriceDecimalPlaces = 2
)

// Price bounds, fixed at two fractional digits.
var (
	MinPrice = decimal.New(0, -PriceDecimalPlaces)        // 0.00
	MaxPrice = decimal.New(99999999, -PriceDecimalPlaces) // 999999.99
)

// Patterns are compiled once at package init, never per call.
var (
	customerIDRegex = regexp.MustCompile(`^[A-Z]{3}[0-9]{5}[A-Z]{2}-[AQ]$`)
	itemNameRegex   = regexp.MustCompile(`^[a-zA-Z0-9\s-]+$`)
)

func containsNullByte(value string) bool {
	return strings.Contains(value, "\x00")
}

// containsControlCharacters reports ASCII control characters, with newline
// and tab exempt.
func containsControlCharacters(value string) bool {
	for _, r := range value {
		if r < 0x20 && r != '\n' && r != '\t' {
			return true
		}
	}
	return false
}

// ValidateCustomerID checks that a customer ID matches the format
// XXX#####XX-[A|Q], e.g. "ABC12345XY-A".
func ValidateCustomerID(customerID string) error {
	if containsNullByte(customerID) {
		return fmt.Errorf("%w: contains null bytes", ErrInvalidCustomerID)
	}

	if containsControlCharacters(customerID) {
		return fmt.Errorf("%w: contains control characters", ErrInvalidCustomerID)
	}

	if !customerIDRegex.MatchString(customerID) {
		return fmt.Errorf("%w: %q does not match required format XXX#####XX-[A|Q]", ErrInvalidCustomerID, customerID)
	}

	return nil
}

// ValidateQuantity checks that a quantity is between MinQuantity and
// MaxQuantity inclusive.
func ValidateQuantity(quantity int) error {
	if quantity < MinQuantity {
		return fmt.Errorf("%w: must be at least %d, got %d", ErrInvalidQuantity, MinQuantity, quantity)
	}

	if quantity > MaxQuantity {
		return fmt.Errorf("%w: cannot exceed %d, got %d", ErrInvalidQuantity, MaxQuantity, quantity)
	}

	return nil
}

// ValidateItemName checks that an item name is 1-100 characters of letters,
// digits, spaces, and hyphens.
func ValidateItemName(itemName string) error {
	if containsNullByte(itemName) {
		return fmt.Errorf("%w: contains null bytes", ErrInvalidItemName)
	}

	if containsControlCharacters(itemName) {
		return fmt.Errorf("%w: contains control characters", ErrInvalidItemName)
	}

	length := utf8.RuneCountInString(itemName)
	if length < MinItemNameLength {
		return fmt.Errorf("%w: must be at least %d character(s), got %d", ErrInvalidItemName, MinItemNameLength, length)
	}

	if length > MaxItemNameLength {
		return fmt.Errorf("%w: cannot exceed %d characters, got %d", ErrInvalidItemName, MaxItemNameLength, length)
	}

	if !itemNameRegex.MatchString(itemName) {
		return fmt.Errorf("%w: %q contains invalid characters, only alphanumeric, spaces, and hyphens allowed", ErrInvalidItemName, itemName)
	}

	return nil
}

// ValidatePrice checks that a price is between MinPrice and MaxPrice and has
// at most PriceDecimalPlaces fractional digits. The digit check looks at the
// exponent of the stored representation, so 10.990 is rejected even though
// it equals 10.99.
func ValidatePrice(price decimal.Decimal) error {
	if price.LessThan(MinPrice) {
		return fmt.Errorf("%w: cannot be negative, got %s", ErrInvalidPrice, price)
	}

	if price.GreaterThan(MaxPrice) {
		return fmt.Errorf("%w: cannot exceed %s, got %s", ErrInvalidPrice, MaxPrice, price)
	}

	if price.Exponent() < -PriceDecimalPlaces {
		return fmt.Errorf("%w: cannot have more than %d decimal places, got %s", ErrInvalidPrice, PriceDecimalPlaces, price)
	}

	return nil
}

// ValidateUUID4 parses value and checks that it is a version 4 UUID.
func ValidateUUID4(value string) (uuid.UUID, error) {
	if containsNullByte(value) {
		return uuid.Nil, fmt.Errorf("%w: contains null bytes", ErrInvalidUUID)
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidUUID, err)
	}

	if id.Version() != 4 {
		return uuid.Nil, fmt.Errorf("%w: must be version 4, got version %d", ErrInvalidUUID, id.Version())
	}

	return id, nil
}
