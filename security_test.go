// security_test.go
package shopcart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcart"
)

func TestSecurity_SQLInjectionShapedInputRejected(t *testing.T) {
	catalog := sampleCatalog(t)

	maliciousIDs := []string{
		"ABC12345XY-A'; DROP TABLE customers--",
		"' OR '1'='1",
		`ABC12345XY-A"; DROP TABLE carts--`,
	}
	for _, id := range maliciousIDs {
		_, err := shopcart.NewCart(id, catalog)
		assert.ErrorIs(t, err, shopcart.ErrInvalidCustomerID)
	}

	cart := sampleCart(t)
	maliciousNames := []string{
		"Widget'; DROP TABLE items--",
		"'; DELETE FROM carts WHERE '1'='1",
		"Widget' UNION SELECT * FROM users--",
	}
	for _, name := range maliciousNames {
		assert.ErrorIs(t, cart.AddItem(name, 1), shopcart.ErrInvalidItemName)
	}
}

func TestSecurity_PathTraversalRejected(t *testing.T) {
	cart := sampleCart(t)

	for _, name := range []string{
		"../../etc/passwd",
		"..\\..\\windows\\system32",
		"../../../secret",
	} {
		assert.ErrorIs(t, cart.AddItem(name, 1), shopcart.ErrInvalidItemName)
	}
}

func TestSecurity_StateConsistentAfterFailedOperations(t *testing.T) {
	cart := sampleCart(t)

	require.NoError(t, cart.AddItem("Widget", 5))
	originalTotal := cart.GetTotal()

	require.Error(t, cart.AddItem("Fake", 1))
	require.Error(t, cart.AddItem("Widget", shopcart.MaxQuantity))
	require.Error(t, cart.UpdateItemQuantity("Gadget", 3))
	require.Error(t, cart.RemoveItem("Gadget"))

	assert.Equal(t, map[string]int{"Widget": 5}, cart.GetItems())
	assert.True(t, cart.GetTotal().Equal(originalTotal))
}

func TestSecurity_NoSilentFailures(t *testing.T) {
	cart := sampleCart(t)

	assert.ErrorIs(t, cart.AddItem("Widget", 0), shopcart.ErrInvalidQuantity)
	assert.ErrorIs(t, cart.AddItem("Fake", 1), shopcart.ErrItemNotInCatalog)
	assert.ErrorIs(t, cart.AddItem("Invalid@Name", 1), shopcart.ErrInvalidItemName)

	assert.Empty(t, cart.GetItems())
	assert.True(t, cart.GetTotal().Equal(decimal.RequireFromString("0.00")))
}

func TestSecurity_CartsSharingCatalogAreIsolated(t *testing.T) {
	catalog := sampleCatalog(t)

	cart1, err := shopcart.NewCart("ABC12345XY-A", catalog)
	require.NoError(t, err)
	cart2, err := shopcart.NewCart("XYZ99999ZZ-Q", catalog)
	require.NoError(t, err)

	require.NoError(t, cart1.AddItem("Widget", 3))
	require.NoError(t, cart2.AddItem("Gadget", 1))

	assert.Equal(t, map[string]int{"Widget": 3}, cart1.GetItems())
	assert.Equal(t, map[string]int{"Gadget": 1}, cart2.GetItems())
	assert.NotEqual(t, cart1.CartID(), cart2.CartID())
}

func TestSecurity_HugeInputsRejectedBeforeStateChanges(t *testing.T) {
	cart := sampleCart(t)

	assert.ErrorIs(t, cart.AddItem("Widget", 999999999), shopcart.ErrInvalidQuantity)

	hugeName := make([]byte, 10000)
	for i := range hugeName {
		hugeName[i] = 'A'
	}
	assert.ErrorIs(t, cart.AddItem(string(hugeName), 1), shopcart.ErrInvalidItemName)

	assert.Empty(t, cart.GetItems())
}
