package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zyxo/showcase/pkg/showcase/chat"
	"github.com/zyxo/showcase/pkg/showcase/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the settings file and content catalogue",
	Long: `Loads the settings file with environment overrides applied, derives the
navigation tuning and loads the content catalogue, then prints a summary.
Nothing is displayed on screen.

Examples:
  showcase validate
  showcase validate --config /etc/showcase/kiosk.toml`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the assistant's system prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		catalogue, err := loadCatalogue(cfg)
		if err != nil {
			return err
		}
		printf(cmd, "%s\n", chat.SystemPrompt(catalogue))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(promptCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	nav, err := cfg.Deck()
	if err != nil {
		return err
	}
	catalogue, err := loadCatalogue(cfg)
	if err != nil {
		return fmt.Errorf("content: %w", err)
	}

	printf(cmd, "settings:   %s\n", configPath)
	printf(cmd, "transition: %s (reduced %s, reduced motion %t)\n",
		nav.TransitionDuration, nav.ReducedTransitionDuration, nav.ReducedMotion)
	printf(cmd, "touch:      %s, swipe %.0fpx, noise %.0fpx\n",
		nav.TouchMode, nav.TouchDisplacementThreshold, nav.TouchNoiseThreshold)
	printf(cmd, "wheel:      threshold %.0f, throttle %s, edge buffer %.0fpx\n",
		nav.WheelThreshold, nav.WheelThrottle, nav.EdgeBuffer)

	names := make([]string, len(catalogue.Sections))
	for i, s := range catalogue.Sections {
		names[i] = fmt.Sprintf("%d:%s", i, s.ID)
	}
	printf(cmd, "sections:   %s\n", strings.Join(names, " "))

	assistant := "disabled"
	if cfg.Chat.Enabled {
		assistant = "enabled, no API key"
		if cfg.Chat.APIKey != "" {
			assistant = "enabled"
		}
	}
	printf(cmd, "assistant:  %s\n", assistant)
	return nil
}
