package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/JagadeshSrinivasan01/playwright01/internal/config"
	"github.com/JagadeshSrinivasan01/playwright01/internal/fixtures"
)

// Selectors for the cart screen.
const (
	cartList       = ".cart_list"
	checkoutButton = "#checkout"
)

// CartPage drives the cart screen.
type CartPage struct {
	page playwright.Page
	cfg  *config.Config
}

// NewCartPage binds a cart page object to a live browser page.
func NewCartPage(page playwright.Page, cfg *config.Config) *CartPage {
	return &CartPage{page: page, cfg: cfg}
}

// WaitForLoaded blocks until the cart list is rendered.
func (p *CartPage) WaitForLoaded() error {
	if err := waitVisible(p.page.Locator(cartList), p.cfg.Timeouts.Default); err != nil {
		return fmt.Errorf("cart screen never became ready: %w", err)
	}
	return nil
}

// Items lists the product rows currently in the cart. An empty cart yields
// an empty list, not an error.
func (p *CartPage) Items() ([]LineItem, error) {
	return lineItems(p.page)
}

// ItemNames lists the display names currently in the cart.
func (p *CartPage) ItemNames() ([]string, error) {
	items, err := p.Items()
	if err != nil {
		return nil, err
	}
	return itemNames(items), nil
}

// VerifyItems checks the cart holds exactly the expected names: same
// names, same count, order-insensitive.
func (p *CartPage) VerifyItems(expected []string) error {
	names, err := p.ItemNames()
	if err != nil {
		return err
	}
	return diffItemNames(expected, names)
}

// RemoveItem takes the named item out of the cart. A name that is not in
// the cart, including one outside the catalog, is a no-op.
func (p *CartPage) RemoveItem(name string) error {
	item, err := fixtures.ItemByName(name)
	if err != nil {
		return nil
	}

	control := p.page.Locator(fmt.Sprintf(`[data-test="remove-%s"]`, item.Slug))
	visible, err := control.IsVisible()
	if err != nil {
		return fmt.Errorf("could not check remove control for %q: %w", name, err)
	}
	if !visible {
		return nil
	}

	if err := control.Click(); err != nil {
		return fmt.Errorf("could not remove %q from the cart: %w", name, err)
	}
	return nil
}

// Checkout proceeds to the checkout information form.
func (p *CartPage) Checkout() error {
	if err := p.page.Locator(checkoutButton).Click(); err != nil {
		return fmt.Errorf("could not start checkout: %w", err)
	}
	if err := waitForPath(p.page, CheckoutInfoPath, p.cfg.Timeouts.Default); err != nil {
		return fmt.Errorf("checkout form never loaded: %w", err)
	}
	return nil
}

// URL reports the page's current address.
func (p *CartPage) URL() string {
	return p.page.URL()
}
