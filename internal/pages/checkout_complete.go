package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/JagadeshSrinivasan01/playwright01/internal/config"
	"github.com/JagadeshSrinivasan01/playwright01/internal/fixtures"
)

// Selectors for the order confirmation screen.
const (
	completeHeader = ".complete-header"
	completeText   = ".complete-text"
	backHomeButton = "#back-to-products"
)

// CheckoutCompletePage drives the order confirmation screen.
type CheckoutCompletePage struct {
	page playwright.Page
	cfg  *config.Config
}

// NewCheckoutCompletePage binds a confirmation page object to a live
// browser page.
func NewCheckoutCompletePage(page playwright.Page, cfg *config.Config) *CheckoutCompletePage {
	return &CheckoutCompletePage{page: page, cfg: cfg}
}

// WaitForLoaded blocks until the confirmation header is rendered.
func (p *CheckoutCompletePage) WaitForLoaded() error {
	if err := waitVisible(p.page.Locator(completeHeader), p.cfg.Timeouts.Default); err != nil {
		return fmt.Errorf("order confirmation never became ready: %w", err)
	}
	return nil
}

// Header reads the confirmation headline.
func (p *CheckoutCompletePage) Header() (string, error) {
	text, err := p.page.Locator(completeHeader).TextContent()
	if err != nil {
		return "", fmt.Errorf("could not read the confirmation header: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// BodyText reads the confirmation body copy.
func (p *CheckoutCompletePage) BodyText() (string, error) {
	text, err := p.page.Locator(completeText).TextContent()
	if err != nil {
		return "", fmt.Errorf("could not read the confirmation text: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// OrderComplete reports whether the screen shows a successful order: the
// expected headline plus the dispatch wording in the body. A missing or
// wrong headline reports false without error.
func (p *CheckoutCompletePage) OrderComplete() (bool, error) {
	header, present, err := optionalText(p.page.Locator(completeHeader))
	if err != nil {
		return false, err
	}
	if !present || header != fixtures.CompleteHeader {
		return false, nil
	}

	body, present, err := optionalText(p.page.Locator(completeText))
	if err != nil {
		return false, err
	}
	if !present {
		return false, nil
	}
	return strings.Contains(body, fixtures.CompleteDispatchText) &&
		strings.Contains(body, fixtures.CompletePonyText), nil
}

// BackHome returns to the inventory screen.
func (p *CheckoutCompletePage) BackHome() error {
	if err := p.page.Locator(backHomeButton).Click(); err != nil {
		return fmt.Errorf("could not navigate back to products: %w", err)
	}
	if err := waitForPath(p.page, InventoryPath, p.cfg.Timeouts.Default); err != nil {
		return fmt.Errorf("inventory never loaded after returning home: %w", err)
	}
	return nil
}

// URL reports the page's current address.
func (p *CheckoutCompletePage) URL() string {
	return p.page.URL()
}
