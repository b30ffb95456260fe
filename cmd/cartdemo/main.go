// cmd/cartdemo/main.go
package main

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"shopcart"
)

func main() {
	fmt.Println("🛒 Shopping Cart Library Demo")
	fmt.Println()

	catalog, err := shopcart.NewCatalog(map[string]decimal.Decimal{
		"Laptop":     decimal.RequireFromString("999.99"),
		"Mouse":      decimal.RequireFromString("25.99"),
		"Keyboard":   decimal.RequireFromString("79.99"),
		"Monitor":    decimal.RequireFromString("299.99"),
		"USB Cable":  decimal.RequireFromString("9.99"),
		"Laptop Bag": decimal.RequireFromString("49.99"),
	})
	if err != nil {
		log.Fatalf("Failed to build catalog: %v", err)
	}
	fmt.Printf("Catalog created with %d items\n\n", len(catalog.GetAllItems()))

	cart, err := shopcart.NewCart("TEC12345AB-Q", catalog)
	if err != nil {
		log.Fatalf("Failed to create cart: %v", err)
	}
	fmt.Printf("Cart ID:     %s\n", cart.CartID())
	fmt.Printf("Customer ID: %s\n\n", cart.CustomerID())

	mustAdd(cart, "Laptop", 1)
	mustAdd(cart, "Mouse", 2)
	mustAdd(cart, "Keyboard", 1)
	printCart(cart, catalog)

	fmt.Println("Updating mouse quantity to 1...")
	if err := cart.UpdateItemQuantity("Mouse", 1); err != nil {
		log.Fatalf("Failed to update quantity: %v", err)
	}
	fmt.Printf("New total: $%s\n\n", cart.GetTotal().StringFixed(2))

	mustAdd(cart, "Monitor", 1)
	mustAdd(cart, "USB Cable", 3)

	fmt.Println("Removing monitor...")
	if err := cart.RemoveItem("Monitor"); err != nil {
		log.Fatalf("Failed to remove item: %v", err)
	}
	printCart(cart, catalog)

	// Mutating the map returned by GetItems never reaches the cart.
	leaked := cart.GetItems()
	leaked["Hacked Item"] = 999
	fmt.Printf("After mutating the returned map the cart still has %d items\n\n", len(cart.GetItems()))

	// Invalid input is rejected before any state changes.
	if err := cart.AddItem("Unknown Gadget", 1); err != nil {
		fmt.Printf("Rejected: %v\n", err)
	}
	if err := cart.AddItem("Laptop", 10001); err != nil {
		fmt.Printf("Rejected: %v\n", err)
	}
	if _, err := shopcart.NewCart("not-a-customer-id", catalog); err != nil {
		fmt.Printf("Rejected: %v\n", err)
	}
}

func mustAdd(cart *shopcart.Cart, name string, quantity int) {
	if err := cart.AddItem(name, quantity); err != nil {
		log.Fatalf("Failed to add %s: %v", name, err)
	}
	fmt.Printf("  + %dx %s\n", quantity, name)
}

func printCart(cart *shopcart.Cart, catalog *shopcart.Catalog) {
	fmt.Println("\nCurrent cart contents:")
	for name, quantity := range cart.GetItems() {
		price, _ := catalog.GetPrice(name)
		line := price.Mul(decimal.NewFromInt(int64(quantity)))
		fmt.Printf("  %-12s %4d x $%9s = $%9s\n", name, quantity, price.StringFixed(2), line.StringFixed(2))
	}
	fmt.Printf("Total: $%s\n\n", cart.GetTotal().StringFixed(2))
}
