package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/JagadeshSrinivasan01/playwright01/internal/config"
	"github.com/JagadeshSrinivasan01/playwright01/internal/money"
)

// Selectors for the order overview screen.
const (
	summarySubtotalLabel = ".summary_subtotal_label"
	summaryTaxLabel      = ".summary_tax_label"
	summaryTotalLabel    = ".summary_total_label"
	finishButton         = "#finish"
)

// CheckoutOverviewPage drives the order overview screen, the second
// checkout step.
type CheckoutOverviewPage struct {
	page playwright.Page
	cfg  *config.Config
}

// NewCheckoutOverviewPage binds an overview page object to a live browser
// page.
func NewCheckoutOverviewPage(page playwright.Page, cfg *config.Config) *CheckoutOverviewPage {
	return &CheckoutOverviewPage{page: page, cfg: cfg}
}

// WaitForLoaded blocks until the overview is rendered.
func (p *CheckoutOverviewPage) WaitForLoaded() error {
	if err := waitVisible(p.page.Locator(finishButton), p.cfg.Timeouts.Default); err != nil {
		return fmt.Errorf("order overview never became ready: %w", err)
	}
	return nil
}

// Items lists the product rows shown on the overview.
func (p *CheckoutOverviewPage) Items() ([]LineItem, error) {
	return lineItems(p.page)
}

// ItemNames lists the display names shown on the overview.
func (p *CheckoutOverviewPage) ItemNames() ([]string, error) {
	items, err := p.Items()
	if err != nil {
		return nil, err
	}
	return itemNames(items), nil
}

// VerifyItems checks the overview shows exactly the expected names: same
// names, same count, order-insensitive.
func (p *CheckoutOverviewPage) VerifyItems(expected []string) error {
	names, err := p.ItemNames()
	if err != nil {
		return err
	}
	return diffItemNames(expected, names)
}

func (p *CheckoutOverviewPage) summaryAmount(selector, label string) (float64, error) {
	text, err := p.page.Locator(selector).TextContent()
	if err != nil {
		return 0, fmt.Errorf("could not read the %s label: %w", label, err)
	}
	amount, err := money.ParseLabeled(text)
	if err != nil {
		return 0, fmt.Errorf("could not parse the %s label %q: %w", label, text, err)
	}
	return amount, nil
}

// ItemTotal reads the pre-tax item total from the summary.
func (p *CheckoutOverviewPage) ItemTotal() (float64, error) {
	return p.summaryAmount(summarySubtotalLabel, "item total")
}

// Tax reads the tax amount from the summary.
func (p *CheckoutOverviewPage) Tax() (float64, error) {
	return p.summaryAmount(summaryTaxLabel, "tax")
}

// Total reads the grand total from the summary.
func (p *CheckoutOverviewPage) Total() (float64, error) {
	return p.summaryAmount(summaryTotalLabel, "total")
}

// VerifyTotals checks the arithmetic on the overview: the line prices must
// add up to the displayed item total, and item total plus tax must equal
// the grand total. Comparisons allow a one cent tolerance.
func (p *CheckoutOverviewPage) VerifyTotals() error {
	items, err := p.Items()
	if err != nil {
		return err
	}
	prices := make([]float64, len(items))
	for i, item := range items {
		prices[i] = item.Price
	}

	itemTotal, err := p.ItemTotal()
	if err != nil {
		return err
	}
	if sum := money.Sum(prices); !money.Within(sum, itemTotal, money.Tolerance) {
		return fmt.Errorf("line prices add up to %.2f but the displayed item total is %.2f", sum, itemTotal)
	}

	tax, err := p.Tax()
	if err != nil {
		return err
	}
	total, err := p.Total()
	if err != nil {
		return err
	}
	if !money.Within(itemTotal+tax, total, money.Tolerance) {
		return fmt.Errorf("item total %.2f plus tax %.2f does not equal the displayed total %.2f", itemTotal, tax, total)
	}
	return nil
}

// FinishEnabled reports whether the finish button is present and enabled.
// An absent button reports false without error.
func (p *CheckoutOverviewPage) FinishEnabled() (bool, error) {
	control := p.page.Locator(finishButton)
	visible, err := control.IsVisible()
	if err != nil {
		return false, fmt.Errorf("could not check the finish button: %w", err)
	}
	if !visible {
		return false, nil
	}
	enabled, err := control.IsEnabled()
	if err != nil {
		return false, fmt.Errorf("could not check the finish button: %w", err)
	}
	return enabled, nil
}

// Finish places the order and waits for the confirmation screen.
func (p *CheckoutOverviewPage) Finish() error {
	if err := p.page.Locator(finishButton).Click(); err != nil {
		return fmt.Errorf("could not place the order: %w", err)
	}
	if err := waitForPath(p.page, CheckoutCompletePath, p.cfg.Timeouts.Default); err != nil {
		return fmt.Errorf("order confirmation never loaded: %w", err)
	}
	return nil
}

// URL reports the page's current address.
func (p *CheckoutOverviewPage) URL() string {
	return p.page.URL()
}
