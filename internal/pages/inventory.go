package pages

import (
	"fmt"
	"strconv"

	"github.com/playwright-community/playwright-go"

	"github.com/JagadeshSrinivasan01/playwright01/internal/config"
	"github.com/JagadeshSrinivasan01/playwright01/internal/fixtures"
)

// Selectors for the product listing.
const (
	inventoryList = ".inventory_list"
	cartLink      = ".shopping_cart_link"
	cartBadge     = ".shopping_cart_badge"
)

// InventoryPage drives the product listing shown after login.
type InventoryPage struct {
	page playwright.Page
	cfg  *config.Config
}

// NewInventoryPage binds an inventory page object to a live browser page.
func NewInventoryPage(page playwright.Page, cfg *config.Config) *InventoryPage {
	return &InventoryPage{page: page, cfg: cfg}
}

// WaitForLoaded blocks until the product listing is rendered.
func (p *InventoryPage) WaitForLoaded() error {
	if err := waitVisible(p.page.Locator(inventoryList), p.cfg.Timeouts.Default); err != nil {
		return fmt.Errorf("inventory screen never became ready: %w", err)
	}
	return nil
}

// AddItems puts each named catalog item into the cart, in the order given.
// An unrecognized name fails before any browser interaction happens.
func (p *InventoryPage) AddItems(names ...string) error {
	items := make([]fixtures.Item, 0, len(names))
	for _, name := range names {
		item, err := fixtures.ItemByName(name)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	for _, item := range items {
		sel := fmt.Sprintf(`[data-test="add-to-cart-%s"]`, item.Slug)
		if err := p.page.Locator(sel).Click(); err != nil {
			return fmt.Errorf("could not add %q to the cart: %w", item.Name, err)
		}
	}
	return nil
}

// CartCount reads the cart badge. A missing or unparsable badge counts as
// an empty cart; only driver failures surface as errors.
func (p *InventoryPage) CartCount() (int, error) {
	text, present, err := optionalText(p.page.Locator(cartBadge))
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, nil
	}

	count, err := strconv.Atoi(text)
	if err != nil {
		return 0, nil
	}
	return count, nil
}

// OpenCart navigates to the cart screen.
func (p *InventoryPage) OpenCart() error {
	if err := p.page.Locator(cartLink).Click(); err != nil {
		return fmt.Errorf("could not open the cart: %w", err)
	}
	if err := waitForPath(p.page, CartPath, p.cfg.Timeouts.Default); err != nil {
		return fmt.Errorf("cart screen never loaded: %w", err)
	}
	return nil
}

// URL reports the page's current address.
func (p *InventoryPage) URL() string {
	return p.page.URL()
}
