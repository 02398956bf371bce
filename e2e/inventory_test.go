package e2e

import (
	"errors"
	"testing"

	"github.com/JagadeshSrinivasan01/playwright01/internal/fixtures"
)

// TestCartBadgeCountsAdditions tests the cart badge against sequential adds
// Feature: Inventory
//
//	Scenario: The cart badge tracks every addition
//	  Given I am logged in as the standard user
//	  Then the cart badge should show an empty cart
//	  When I add each known item one at a time
//	  Then the badge should count up by exactly one per addition
func TestCartBadgeCountsAdditions(t *testing.T) {
	page := newPage(t)

	// Given I am logged in as the standard user
	inventory := loginAsStandardUser(t, page)

	// Then the cart badge should show an empty cart
	count, err := inventory.CartCount()
	if err != nil {
		t.Fatalf("Failed to read the cart badge: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected an empty cart before adding anything, got %d", count)
	}

	// When I add each known item one at a time
	// Then the badge should count up by exactly one per addition
	for i, name := range fixtures.AllItemNames() {
		if err := inventory.AddItems(name); err != nil {
			t.Fatalf("Failed to add %q to the cart: %v", name, err)
		}
		count, err := inventory.CartCount()
		if err != nil {
			t.Fatalf("Failed to read the cart badge after adding %q: %v", name, err)
		}
		if count != i+1 {
			t.Errorf("Expected the badge to read %d after %d addition(s), got %d", i+1, i+1, count)
		}
	}
}

// TestAddUnknownItemFailsFast tests that a broken scenario never reaches the browser
// Feature: Inventory
//
//	Scenario: Adding an item outside the known catalog is an error
//	  Given I am logged in as the standard user
//	  When I try to add an item that is not in the known catalog
//	  Then the call should fail with the unknown-item error
//	  And the cart should stay empty
func TestAddUnknownItemFailsFast(t *testing.T) {
	page := newPage(t)

	// Given I am logged in as the standard user
	inventory := loginAsStandardUser(t, page)

	// When I try to add an item that is not in the known catalog
	// The known name comes first: nothing may be added before the batch is
	// validated.
	err := inventory.AddItems(fixtures.Backpack.Name, "Sauce Labs Anvil")

	// Then the call should fail with the unknown-item error
	if !errors.Is(err, fixtures.ErrUnknownItem) {
		t.Fatalf("Expected the unknown-item error, got: %v", err)
	}

	// And the cart should stay empty
	count, err := inventory.CartCount()
	if err != nil {
		t.Fatalf("Failed to read the cart badge: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected the cart to stay empty, got %d", count)
	}
}
