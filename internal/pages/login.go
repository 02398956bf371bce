package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/JagadeshSrinivasan01/playwright01/internal/config"
	"github.com/JagadeshSrinivasan01/playwright01/internal/fixtures"
	"github.com/JagadeshSrinivasan01/playwright01/internal/retry"
)

// Selectors for the login screen.
const (
	loginUsernameField = "#user-name"
	loginPasswordField = "#password"
	loginSubmitButton  = "#login-button"
)

// LoginPage drives the credential form at the shop's root URL.
type LoginPage struct {
	page playwright.Page
	cfg  *config.Config
}

// NewLoginPage binds a login page object to a live browser page.
func NewLoginPage(page playwright.Page, cfg *config.Config) *LoginPage {
	return &LoginPage{page: page, cfg: cfg}
}

// Navigate opens the login screen. The first load of a cold target is the
// flakiest interaction in the suite, so it goes through the shared retry
// policy.
func (p *LoginPage) Navigate() error {
	return retry.Do(context.Background(), 3, 500*time.Millisecond, func() error {
		if _, err := p.page.Goto(p.cfg.BaseURL + LoginPath); err != nil {
			return fmt.Errorf("could not open login screen: %w", err)
		}
		return waitVisible(p.page.Locator(loginSubmitButton), p.cfg.Timeouts.Default)
	})
}

// Reload reloads the screen; the target resets both form fields on reload.
func (p *LoginPage) Reload() error {
	if _, err := p.page.Reload(); err != nil {
		return fmt.Errorf("could not reload login screen: %w", err)
	}
	return waitVisible(p.page.Locator(loginSubmitButton), p.cfg.Timeouts.Default)
}

// FillUsername types the username into the form.
func (p *LoginPage) FillUsername(username string) error {
	if err := p.page.Locator(loginUsernameField).Fill(username); err != nil {
		return fmt.Errorf("could not fill username: %w", err)
	}
	return nil
}

// FillPassword types the password into the form.
func (p *LoginPage) FillPassword(password string) error {
	if err := p.page.Locator(loginPasswordField).Fill(password); err != nil {
		return fmt.Errorf("could not fill password: %w", err)
	}
	return nil
}

// Submit clicks the login button.
func (p *LoginPage) Submit() error {
	if err := p.page.Locator(loginSubmitButton).Click(); err != nil {
		return fmt.Errorf("could not click login button: %w", err)
	}
	return nil
}

// Login fills both fields and submits in one call.
func (p *LoginPage) Login(creds fixtures.Credentials) error {
	if err := p.FillUsername(creds.Username); err != nil {
		return err
	}
	if err := p.FillPassword(creds.Password); err != nil {
		return err
	}
	return p.Submit()
}

// WaitForInventory blocks until the authenticated landing screen is
// reached, bounded by the given budget.
func (p *LoginPage) WaitForInventory(timeout time.Duration) error {
	if err := waitForPath(p.page, InventoryPath, timeout); err != nil {
		return fmt.Errorf("login did not reach the inventory screen: %w", err)
	}
	return nil
}

// URL reports the page's current address.
func (p *LoginPage) URL() string {
	return p.page.URL()
}

// WaitForError blocks until the error banner is rendered, bounded by the
// given budget. Rejected submissions render it near-instantly, so the
// short budget is the usual choice.
func (p *LoginPage) WaitForError(timeout time.Duration) error {
	if err := waitVisible(p.page.Locator(errorBanner), timeout); err != nil {
		return fmt.Errorf("no login error banner appeared: %w", err)
	}
	return nil
}

// ErrorMessage reads the login error banner. present is false when the
// banner is confirmed absent; err reports driver failures only.
func (p *LoginPage) ErrorMessage() (text string, present bool, err error) {
	return optionalText(p.page.Locator(errorBanner))
}

// SubmitEnabled reports whether the login button accepts clicks.
func (p *LoginPage) SubmitEnabled() (bool, error) {
	enabled, err := p.page.Locator(loginSubmitButton).IsEnabled()
	if err != nil {
		return false, fmt.Errorf("could not check login button state: %w", err)
	}
	return enabled, nil
}

// FieldValues reads back what the form currently holds.
func (p *LoginPage) FieldValues() (username, password string, err error) {
	username, err = p.page.Locator(loginUsernameField).InputValue()
	if err != nil {
		return "", "", fmt.Errorf("could not read username field: %w", err)
	}
	password, err = p.page.Locator(loginPasswordField).InputValue()
	if err != nil {
		return "", "", fmt.Errorf("could not read password field: %w", err)
	}
	return username, password, nil
}
