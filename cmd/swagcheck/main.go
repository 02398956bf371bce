package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/JagadeshSrinivasan01/playwright01/internal/browser"
	internalcli "github.com/JagadeshSrinivasan01/playwright01/internal/cli"
	"github.com/JagadeshSrinivasan01/playwright01/internal/config"
)

var version = "0.1.0"

// buildSmokeDependencies creates all dependencies needed for the smoke probe
func buildSmokeDependencies() (internalcli.SmokeDependencies, error) {
	var deps internalcli.SmokeDependencies

	cfg, err := config.Load(os.Getenv)
	if err != nil {
		return deps, fmt.Errorf("invalid configuration: %w", err)
	}
	deps.Config = cfg

	return deps, nil
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Download the configured browser engine",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(os.Getenv)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			log.Printf("Installing %s...", cfg.Browser)
			if err := browser.Install(cfg); err != nil {
				return err
			}

			color.Green("✓ %s installed", cfg.Browser)
			return nil
		},
	}
}

// SmokeCommand returns the smoke command
func SmokeCommand() *cli.Command {
	return &cli.Command{
		Name:  "smoke",
		Usage: "Log in to the target shop and verify the inventory renders",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "attempts",
				Usage: "How many times to try the probe before giving up",
				Value: 3,
			},
		},
		Action: func(c *cli.Context) error {
			deps, err := buildSmokeDependencies()
			if err != nil {
				return err
			}
			deps.Attempts = c.Int("attempts")

			return internalcli.RunSmoke(deps)
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "swagcheck",
		Usage:   "Acceptance checks for the Swag Labs demo shop",
		Version: version,
		Commands: []*cli.Command{
			InstallCommand(),
			SmokeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
