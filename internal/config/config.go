package config

import (
	"fmt"
	"strconv"
	"time"
)

// Browser engines the harness knows how to launch.
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultBaseURL      = "https://www.saucedemo.com"
	DefaultArtifactsDir = "artifacts"

	defaultTimeout = 10 * time.Second
	shortTimeout   = 5 * time.Second
	longTimeout    = 30 * time.Second
)

// Timeouts holds the wait budgets used to bound browser operations.
// Default covers ordinary waits, Short covers elements that should already
// be rendered, Long covers deliberately slow flows such as the
// performance-degraded login.
type Timeouts struct {
	Default time.Duration
	Short   time.Duration
	Long    time.Duration
}

// Config holds the execution parameters for a test run.
type Config struct {
	BaseURL      string
	Browser      string
	Headless     bool
	SlowMo       time.Duration
	ArtifactsDir string
	Timeouts     Timeouts
}

// Load builds a Config from environment variables. getenv is injected so
// tests can supply their own environment. Every parameter has a default:
// with nothing set the harness runs headless Chromium against the public
// demo site.
func Load(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		BaseURL:      getenv("E2E_BASE_URL"),
		Browser:      getenv("E2E_BROWSER"),
		Headless:     getenv("E2E_HEADLESS") != "false",
		ArtifactsDir: getenv("E2E_ARTIFACTS_DIR"),
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Browser == "" {
		cfg.Browser = BrowserChromium
	}
	if cfg.ArtifactsDir == "" {
		cfg.ArtifactsDir = DefaultArtifactsDir
	}

	switch cfg.Browser {
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
	default:
		return nil, fmt.Errorf("E2E_BROWSER must be one of %s, %s or %s, got %q",
			BrowserChromium, BrowserFirefox, BrowserWebKit, cfg.Browser)
	}

	slowMo, err := millisEnv(getenv, "E2E_SLOW_MO_MS", 0)
	if err != nil {
		return nil, err
	}
	cfg.SlowMo = slowMo

	cfg.Timeouts.Default, err = millisEnv(getenv, "E2E_DEFAULT_TIMEOUT_MS", defaultTimeout)
	if err != nil {
		return nil, err
	}
	cfg.Timeouts.Short, err = millisEnv(getenv, "E2E_SHORT_TIMEOUT_MS", shortTimeout)
	if err != nil {
		return nil, err
	}
	cfg.Timeouts.Long, err = millisEnv(getenv, "E2E_LONG_TIMEOUT_MS", longTimeout)
	if err != nil {
		return nil, err
	}

	// A zero timeout would make every bounded wait fail immediately.
	if cfg.Timeouts.Default <= 0 {
		return nil, fmt.Errorf("E2E_DEFAULT_TIMEOUT_MS must be positive")
	}
	if cfg.Timeouts.Short <= 0 {
		return nil, fmt.Errorf("E2E_SHORT_TIMEOUT_MS must be positive")
	}
	if cfg.Timeouts.Long <= 0 {
		return nil, fmt.Errorf("E2E_LONG_TIMEOUT_MS must be positive")
	}

	return cfg, nil
}

// millisEnv reads an integer millisecond value from the environment,
// falling back when the variable is unset.
func millisEnv(getenv func(string) string, key string, fallback time.Duration) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}

	ms, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer number of milliseconds, got %q", key, raw)
	}
	if ms < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", key, ms)
	}

	return time.Duration(ms) * time.Millisecond, nil
}
