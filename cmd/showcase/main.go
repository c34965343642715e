// Command showcase runs the ZYXO product showcase on an SDL2 display.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath   string
	startSection string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "ZYXO product showcase",
	Long: `Runs the ZYXO showcase full screen: a deck of sections paged by mouse wheel,
touch, keyboard or game controller, with an AI assistant overlay.

Settings are read from a TOML file and reloaded when it changes. Environment
variables override the file:
  SHOWCASE_REDUCED_MOTION   true to cross-fade instead of slide
  SHOWCASE_TOUCH_MODE       strict or lenient swipe recognition
  SHOWCASE_LOG_LEVEL        debug, info, warn or error
  SHOWCASE_CONTENT          path to a replacement content catalogue
  GEMINI_API_KEY            key for the assistant
  ENVIRONMENT=DEV           windowed development mode`,
	SilenceUsage: true,
	RunE:         runShowcase,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "showcase.toml", "Path to the settings file")
	rootCmd.Flags().StringVar(&startSection, "section", "", "Section id to open on (default: the first section)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
