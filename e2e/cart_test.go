package e2e

import (
	"testing"

	"github.com/JagadeshSrinivasan01/playwright01/internal/fixtures"
	"github.com/JagadeshSrinivasan01/playwright01/internal/pages"
)

// TestCartListsAddedItems tests the cart contents against what was added
// Feature: Cart
//
//	Scenario: The cart lists exactly what was added
//	  Given I am logged in as the standard user
//	  When I add the known items in an order different from the listing
//	  And I open the cart
//	  Then the cart should list exactly those items, order aside
func TestCartListsAddedItems(t *testing.T) {
	page := newPage(t)

	// Given I am logged in as the standard user
	inventory := loginAsStandardUser(t, page)

	// When I add the known items in an order different from the listing
	added := []string{fixtures.BoltTShirt.Name, fixtures.Backpack.Name, fixtures.BikeLight.Name}
	if err := inventory.AddItems(added...); err != nil {
		t.Fatalf("Failed to add items to the cart: %v", err)
	}

	// And I open the cart
	if err := inventory.OpenCart(); err != nil {
		t.Fatalf("Failed to open the cart: %v", err)
	}
	cart := pages.NewCartPage(page, cfg)
	if err := cart.WaitForLoaded(); err != nil {
		t.Fatalf("Cart screen never became ready: %v", err)
	}

	// Then the cart should list exactly those items, order aside
	if err := cart.VerifyItems(added); err != nil {
		t.Errorf("Cart contents are wrong: %v", err)
	}
}

// TestCartRemoveItem tests removal of items from the cart
// Feature: Cart
//
//	Scenario: Removing an item leaves the rest untouched
//	  Given I have the backpack and the bike light in the cart
//	  When I remove the bike light
//	  Then only the backpack should remain
//	  When I remove items that are not in the cart
//	  Then nothing should change
func TestCartRemoveItem(t *testing.T) {
	page := newPage(t)

	// Given I have the backpack and the bike light in the cart
	inventory := loginAsStandardUser(t, page)
	if err := inventory.AddItems(fixtures.Backpack.Name, fixtures.BikeLight.Name); err != nil {
		t.Fatalf("Failed to add items to the cart: %v", err)
	}
	if err := inventory.OpenCart(); err != nil {
		t.Fatalf("Failed to open the cart: %v", err)
	}
	cart := pages.NewCartPage(page, cfg)
	if err := cart.WaitForLoaded(); err != nil {
		t.Fatalf("Cart screen never became ready: %v", err)
	}

	// When I remove the bike light
	if err := cart.RemoveItem(fixtures.BikeLight.Name); err != nil {
		t.Fatalf("Failed to remove %q: %v", fixtures.BikeLight.Name, err)
	}

	// Then only the backpack should remain
	if err := cart.VerifyItems([]string{fixtures.Backpack.Name}); err != nil {
		t.Errorf("Cart contents are wrong after removal: %v", err)
	}

	// When I remove items that are not in the cart
	if err := cart.RemoveItem(fixtures.BoltTShirt.Name); err != nil {
		t.Errorf("Removing an absent catalog item should be a no-op, got: %v", err)
	}
	if err := cart.RemoveItem("Sauce Labs Anvil"); err != nil {
		t.Errorf("Removing an unknown item should be a no-op, got: %v", err)
	}

	// Then nothing should change
	if err := cart.VerifyItems([]string{fixtures.Backpack.Name}); err != nil {
		t.Errorf("Cart contents changed after no-op removals: %v", err)
	}
}
