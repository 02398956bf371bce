// Package pages binds each screen of the demo shop to its selectors and
// user-meaningful operations. A page object wraps one live playwright.Page
// for its lifetime; locators are resolved lazily at each interaction.
//
// Error semantics are uniform across the package: operations that wait for
// a required element or navigation propagate timeout errors as hard
// failures, while "is it there / what does it say" queries treat absence as
// a valid result and reserve their error return for driver failures.
package pages

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/playwright-community/playwright-go"

	"github.com/JagadeshSrinivasan01/playwright01/internal/money"
)

// URL paths of the shop's screens. Screen transitions are confirmed by
// matching the current URL against these.
const (
	LoginPath            = "/"
	InventoryPath        = "/inventory.html"
	CartPath             = "/cart.html"
	CheckoutInfoPath     = "/checkout-step-one.html"
	CheckoutOverviewPath = "/checkout-step-two.html"
	CheckoutCompletePath = "/checkout-complete.html"
)

// errorBanner is the validation/error message container the target renders
// on both the login screen and the checkout form.
const errorBanner = `[data-test="error"]`

// LineItem is one product row as displayed on the cart or overview screen.
type LineItem struct {
	Name  string
	Price float64
}

// ms converts a wait budget into the milliseconds playwright expects.
func ms(d time.Duration) float64 {
	return float64(d.Milliseconds())
}

// waitVisible blocks until the locator's element is visible, failing once
// the timeout expires.
func waitVisible(loc playwright.Locator, timeout time.Duration) error {
	return loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(ms(timeout)),
	})
}

// waitForPath blocks until the page's URL matches the given screen path.
func waitForPath(page playwright.Page, path string, timeout time.Duration) error {
	return page.WaitForURL("**"+path, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(ms(timeout)),
	})
}

// optionalText resolves an element that may legitimately be absent.
// present=false with a nil error is confirmed absence; a non-nil error
// means the driver could not answer, which callers must not confuse with
// absence.
func optionalText(loc playwright.Locator) (text string, present bool, err error) {
	visible, err := loc.IsVisible()
	if err != nil {
		return "", false, fmt.Errorf("could not check visibility: %w", err)
	}
	if !visible {
		return "", false, nil
	}

	text, err = loc.TextContent()
	if err != nil {
		return "", false, fmt.Errorf("could not read text: %w", err)
	}
	return strings.TrimSpace(text), true, nil
}

// lineItems scrapes the product rows shown on the cart and overview
// screens, which share the same row markup. Zero rows is a valid result:
// an empty cart has none.
func lineItems(page playwright.Page) ([]LineItem, error) {
	rows, err := page.Locator(".cart_item").All()
	if err != nil {
		return nil, fmt.Errorf("could not list product rows: %w", err)
	}

	items := make([]LineItem, 0, len(rows))
	for _, row := range rows {
		name, err := row.Locator(".inventory_item_name").TextContent()
		if err != nil {
			return nil, fmt.Errorf("could not read item name: %w", err)
		}
		raw, err := row.Locator(".inventory_item_price").TextContent()
		if err != nil {
			return nil, fmt.Errorf("could not read price of %q: %w", name, err)
		}
		price, err := money.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", name, err)
		}
		items = append(items, LineItem{Name: strings.TrimSpace(name), Price: price})
	}
	return items, nil
}

// itemNames projects line items onto their display names.
func itemNames(items []LineItem) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}

// diffItemNames compares expected and displayed item names as multisets:
// order is irrelevant, counts are not. A mismatch is returned as a
// readable diff.
func diffItemNames(expected, actual []string) error {
	want := append([]string(nil), expected...)
	got := append([]string(nil), actual...)
	sort.Strings(want)
	sort.Strings(got)

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		return fmt.Errorf("displayed items do not match (-want +got):\n%s", diff)
	}
	return nil
}
