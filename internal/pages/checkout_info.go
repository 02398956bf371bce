package pages

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/JagadeshSrinivasan01/playwright01/internal/config"
	"github.com/JagadeshSrinivasan01/playwright01/internal/fixtures"
)

// Selectors for the checkout information form.
const (
	firstNameField  = "#first-name"
	lastNameField   = "#last-name"
	postalCodeField = "#postal-code"
	continueButton  = "#continue"
)

// CheckoutInfoPage drives the buyer information form, the first checkout
// step.
type CheckoutInfoPage struct {
	page playwright.Page
	cfg  *config.Config
}

// NewCheckoutInfoPage binds a checkout form page object to a live browser
// page.
func NewCheckoutInfoPage(page playwright.Page, cfg *config.Config) *CheckoutInfoPage {
	return &CheckoutInfoPage{page: page, cfg: cfg}
}

// WaitForLoaded blocks until the form is rendered.
func (p *CheckoutInfoPage) WaitForLoaded() error {
	if err := waitVisible(p.page.Locator(firstNameField), p.cfg.Timeouts.Default); err != nil {
		return fmt.Errorf("checkout form never became ready: %w", err)
	}
	return nil
}

// FillFirstName types into the first name field, replacing its contents.
func (p *CheckoutInfoPage) FillFirstName(value string) error {
	if err := p.page.Locator(firstNameField).Fill(value); err != nil {
		return fmt.Errorf("could not fill first name: %w", err)
	}
	return nil
}

// FillLastName types into the last name field, replacing its contents.
func (p *CheckoutInfoPage) FillLastName(value string) error {
	if err := p.page.Locator(lastNameField).Fill(value); err != nil {
		return fmt.Errorf("could not fill last name: %w", err)
	}
	return nil
}

// FillPostalCode types into the postal code field, replacing its contents.
func (p *CheckoutInfoPage) FillPostalCode(value string) error {
	if err := p.page.Locator(postalCodeField).Fill(value); err != nil {
		return fmt.Errorf("could not fill postal code: %w", err)
	}
	return nil
}

// Fill populates all three form fields from the given buyer information.
func (p *CheckoutInfoPage) Fill(info fixtures.CheckoutInfo) error {
	if err := p.FillFirstName(info.FirstName); err != nil {
		return err
	}
	if err := p.FillLastName(info.LastName); err != nil {
		return err
	}
	return p.FillPostalCode(info.PostalCode)
}

// Continue submits the form. It does not wait for the overview screen:
// validation failures keep the browser on the form, and callers decide
// which outcome they expect.
func (p *CheckoutInfoPage) Continue() error {
	if err := p.page.Locator(continueButton).Click(); err != nil {
		return fmt.Errorf("could not submit checkout form: %w", err)
	}
	return nil
}

// WaitForOverview blocks until the order overview screen replaces the form.
func (p *CheckoutInfoPage) WaitForOverview() error {
	if err := waitForPath(p.page, CheckoutOverviewPath, p.cfg.Timeouts.Default); err != nil {
		return fmt.Errorf("order overview never loaded: %w", err)
	}
	return nil
}

// FieldValues reads back the current contents of the three form fields.
func (p *CheckoutInfoPage) FieldValues() (fixtures.CheckoutInfo, error) {
	var info fixtures.CheckoutInfo

	first, err := p.page.Locator(firstNameField).InputValue()
	if err != nil {
		return info, fmt.Errorf("could not read first name: %w", err)
	}
	last, err := p.page.Locator(lastNameField).InputValue()
	if err != nil {
		return info, fmt.Errorf("could not read last name: %w", err)
	}
	postal, err := p.page.Locator(postalCodeField).InputValue()
	if err != nil {
		return info, fmt.Errorf("could not read postal code: %w", err)
	}

	info.FirstName = first
	info.LastName = last
	info.PostalCode = postal
	return info, nil
}

// WaitForError blocks until the validation banner is rendered, bounded by
// the given budget.
func (p *CheckoutInfoPage) WaitForError(timeout time.Duration) error {
	if err := waitVisible(p.page.Locator(errorBanner), timeout); err != nil {
		return fmt.Errorf("no validation banner appeared: %w", err)
	}
	return nil
}

// ErrorMessage reads the validation banner. present is false when the form
// shows no error.
func (p *CheckoutInfoPage) ErrorMessage() (text string, present bool, err error) {
	return optionalText(p.page.Locator(errorBanner))
}

// URL reports the page's current address.
func (p *CheckoutInfoPage) URL() string {
	return p.page.URL()
}
