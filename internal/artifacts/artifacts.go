// Package artifacts persists post-mortem evidence for failed scenarios.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
)

var nameReplacer = strings.NewReplacer("/", "-", " ", "-", ":", "-")

// CaptureScreenshot writes a full-page screenshot of the given page into
// dir and returns the file's path. The label, typically the test name,
// becomes part of the filename together with a fresh ID so repeated
// failures never clobber each other.
func CaptureScreenshot(page playwright.Page, dir, label string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create artifacts directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s-%s.png", nameReplacer.Replace(label), uuid.New().String())
	path := filepath.Join(dir, name)

	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("could not capture screenshot %s: %w", path, err)
	}
	return path, nil
}
