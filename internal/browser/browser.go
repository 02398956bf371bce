// Package browser starts the Playwright driver and hands out isolated
// browser contexts for scenarios. The CLI and the e2e suite share it so
// both launch the engine the same way.
package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/JagadeshSrinivasan01/playwright01/internal/config"
)

// Launch starts the Playwright driver and launches the configured browser.
// Callers own both handles: close the browser, then stop the driver.
func Launch(cfg *config.Config) (*playwright.Playwright, playwright.Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("could not start the browser driver: %w", err)
	}

	engine, err := engineFor(pw, cfg.Browser)
	if err != nil {
		_ = pw.Stop()
		return nil, nil, err
	}

	options := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMo > 0 {
		options.SlowMo = playwright.Float(float64(cfg.SlowMo.Milliseconds()))
	}

	b, err := engine.Launch(options)
	if err != nil {
		_ = pw.Stop()
		return nil, nil, fmt.Errorf("could not launch %s: %w", cfg.Browser, err)
	}
	return pw, b, nil
}

// NewPage opens a fresh, isolated browser context with the configured
// default timeout and returns a page in it. Each scenario gets its own
// context so nothing leaks between runs.
func NewPage(b playwright.Browser, cfg *config.Config) (playwright.BrowserContext, playwright.Page, error) {
	ctx, err := b.NewContext()
	if err != nil {
		return nil, nil, fmt.Errorf("could not open a browser context: %w", err)
	}
	ctx.SetDefaultTimeout(float64(cfg.Timeouts.Default.Milliseconds()))

	page, err := ctx.NewPage()
	if err != nil {
		_ = ctx.Close()
		return nil, nil, fmt.Errorf("could not open a page: %w", err)
	}
	return ctx, page, nil
}

// Install downloads the configured browser through the Playwright driver.
func Install(cfg *config.Config) error {
	err := playwright.Install(&playwright.RunOptions{
		Browsers: []string{cfg.Browser},
	})
	if err != nil {
		return fmt.Errorf("could not install %s: %w", cfg.Browser, err)
	}
	return nil
}

func engineFor(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case config.BrowserChromium:
		return pw.Chromium, nil
	case config.BrowserFirefox:
		return pw.Firefox, nil
	case config.BrowserWebKit:
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unsupported browser %q", name)
	}
}
