package e2e

import (
	"flag"
	"log"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/playwright-community/playwright-go"

	"github.com/JagadeshSrinivasan01/playwright01/internal/artifacts"
	internalbrowser "github.com/JagadeshSrinivasan01/playwright01/internal/browser"
	"github.com/JagadeshSrinivasan01/playwright01/internal/config"
	"github.com/JagadeshSrinivasan01/playwright01/internal/fixtures"
	"github.com/JagadeshSrinivasan01/playwright01/internal/pages"
)

var (
	cfg     *config.Config
	pw      *playwright.Playwright
	browser playwright.Browser
)

// TestMain sets up and tears down the shared Playwright browser for all
// scenarios. Browsers are installed beforehand, either with
// `swagcheck install` or
// `go run github.com/playwright-community/playwright-go/cmd/playwright@latest install chromium`.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		// Every scenario skips itself; no point launching a browser.
		m.Run()
		return
	}

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	var err error
	cfg, err = config.Load(os.Getenv)
	if err != nil {
		panic(err)
	}

	pw, browser, err = internalbrowser.Launch(cfg)
	if err != nil {
		panic(err)
	}
	defer pw.Stop()
	defer browser.Close()

	m.Run()
}

// newPage opens an isolated browser context for one scenario. The context
// is closed when the test ends; if the scenario failed, a full-page
// screenshot is saved to the artifacts directory first.
func newPage(t *testing.T) playwright.Page {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser scenario in short mode")
	}

	ctx, page, err := internalbrowser.NewPage(browser, cfg)
	if err != nil {
		t.Fatalf("Failed to open a browser context: %v", err)
	}
	t.Cleanup(func() {
		if t.Failed() {
			if path, err := artifacts.CaptureScreenshot(page, cfg.ArtifactsDir, t.Name()); err != nil {
				t.Logf("Could not capture failure screenshot: %v", err)
			} else {
				t.Logf("Failure screenshot saved to %s", path)
			}
		}
		if err := ctx.Close(); err != nil {
			t.Logf("Could not close browser context: %v", err)
		}
	})
	return page
}

// loginAsStandardUser walks a fresh page through a successful login and
// returns the inventory page object once the listing is ready.
func loginAsStandardUser(t *testing.T, page playwright.Page) *pages.InventoryPage {
	t.Helper()

	login := pages.NewLoginPage(page, cfg)
	if err := login.Navigate(); err != nil {
		t.Fatalf("Failed to open the login screen: %v", err)
	}
	if err := login.Login(fixtures.StandardUser); err != nil {
		t.Fatalf("Failed to submit credentials: %v", err)
	}
	if err := login.WaitForInventory(cfg.Timeouts.Default); err != nil {
		t.Fatalf("Login did not reach the inventory screen: %v", err)
	}

	inventory := pages.NewInventoryPage(page, cfg)
	if err := inventory.WaitForLoaded(); err != nil {
		t.Fatalf("Inventory screen never became ready: %v", err)
	}
	return inventory
}
