package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/playwright-community/playwright-go"

	"github.com/JagadeshSrinivasan01/playwright01/internal/browser"
	"github.com/JagadeshSrinivasan01/playwright01/internal/config"
	"github.com/JagadeshSrinivasan01/playwright01/internal/fixtures"
	"github.com/JagadeshSrinivasan01/playwright01/internal/pages"
	"github.com/JagadeshSrinivasan01/playwright01/internal/retry"
)

const (
	defaultSmokeAttempts = 3
	defaultSmokeDelay    = 2 * time.Second
)

// SmokeDependencies holds all dependencies needed for the smoke probe
type SmokeDependencies struct {
	Config      *config.Config
	Credentials fixtures.Credentials
	Attempts    int
	BaseDelay   time.Duration
}

// normalize fills in defaults for anything the caller left zero
func (deps SmokeDependencies) normalize() SmokeDependencies {
	if deps.Attempts < 1 {
		deps.Attempts = defaultSmokeAttempts
	}
	if deps.BaseDelay <= 0 {
		deps.BaseDelay = defaultSmokeDelay
	}
	if deps.Credentials == (fixtures.Credentials{}) {
		deps.Credentials = fixtures.StandardUser
	}
	return deps
}

// RunSmoke launches a browser and probes the target: log in, wait for the
// inventory screen. The probe is retried with backoff so a cold target or
// a flaky network does not fail the check outright.
func RunSmoke(deps SmokeDependencies) error {
	deps = deps.normalize()
	cfg := deps.Config

	log.Printf("Launching %s (headless=%v) against %s", cfg.Browser, cfg.Headless, cfg.BaseURL)

	pw, b, err := browser.Launch(cfg)
	if err != nil {
		color.Red("✗ Smoke probe could not start: %v", err)
		return err
	}
	defer pw.Stop()
	defer b.Close()

	err = retry.Do(context.Background(), deps.Attempts, deps.BaseDelay, func() error {
		return probe(b, deps)
	})
	if err != nil {
		color.Red("✗ Smoke probe failed after %d attempt(s): %v", deps.Attempts, err)
		return fmt.Errorf("smoke probe failed: %w", err)
	}

	color.Green("✓ %s serves the login and inventory screens", cfg.BaseURL)
	return nil
}

// probe runs one login attempt in a fresh browser context
func probe(b playwright.Browser, deps SmokeDependencies) error {
	ctx, page, err := browser.NewPage(b, deps.Config)
	if err != nil {
		return err
	}
	defer ctx.Close()

	login := pages.NewLoginPage(page, deps.Config)
	if err := login.Navigate(); err != nil {
		return err
	}
	if err := login.Login(deps.Credentials); err != nil {
		return err
	}
	if err := login.WaitForInventory(deps.Config.Timeouts.Long); err != nil {
		return err
	}
	return pages.NewInventoryPage(page, deps.Config).WaitForLoaded()
}
