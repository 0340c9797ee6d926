package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/swipecal/internal/config"
	"github.com/javiermolinar/swipecal/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  swipecal config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(path, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&path, "path", config.DefaultConfigPath(), "Config file to edit")

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			printConfig(cmd.OutOrStdout(), a.config)
			return nil
		},
	})
	return cmd
}

func runConfigInteractive(configPath string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	cfg.Calendar.Timezone = promptValue(reader, out, "Time zone (IANA name, Local or UTC)", cfg.Calendar.Timezone)
	cfg.Calendar.FirstWeekday = promptValue(reader, out, "First weekday", cfg.Calendar.FirstWeekday)
	cfg.Calendar.MinDaysInFirstWeek = promptInt(reader, out, "Min days in first week (1-7)", cfg.Calendar.MinDaysInFirstWeek)
	cfg.Calendar.Earliest = promptValue(reader, out, "Earliest date (empty for none)", cfg.Calendar.Earliest)
	cfg.Calendar.Latest = promptValue(reader, out, "Latest date (empty for none)", cfg.Calendar.Latest)
	cfg.Behavior.Mode = promptValue(reader, out, "Mode (month/week)", cfg.Behavior.Mode)
	cfg.Behavior.PastDaysEnabled = promptBool(reader, out, "Past days selectable", cfg.Behavior.PastDaysEnabled)
	cfg.Behavior.FollowSelection = promptBool(reader, out, "Selection follows paging", cfg.Behavior.FollowSelection)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[calendar]")
	fmt.Fprintf(out, "  timezone               = %s\n", cfg.Calendar.Timezone)
	fmt.Fprintf(out, "  first_weekday          = %s\n", cfg.Calendar.FirstWeekday)
	fmt.Fprintf(out, "  min_days_in_first_week = %d\n", cfg.Calendar.MinDaysInFirstWeek)
	if cfg.Calendar.Earliest != "" {
		fmt.Fprintf(out, "  earliest               = %s\n", cfg.Calendar.Earliest)
	}
	if cfg.Calendar.Latest != "" {
		fmt.Fprintf(out, "  latest                 = %s\n", cfg.Calendar.Latest)
	}
	fmt.Fprintln(out, "\n[behavior]")
	fmt.Fprintf(out, "  mode                   = %s\n", cfg.Behavior.Mode)
	fmt.Fprintf(out, "  past_days_enabled      = %t\n", cfg.Behavior.PastDaysEnabled)
	fmt.Fprintf(out, "  follow_selection       = %t\n", cfg.Behavior.FollowSelection)
	fmt.Fprintf(out, "  swipe_threshold        = %g\n", cfg.Behavior.SwipeThreshold)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme                  = %s\n", cfg.UI.Theme)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
	}
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	for {
		value := promptValue(reader, out, label, strconv.FormatBool(current))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		fmt.Fprintf(out, "  Invalid value %q (true/false)\n", value)
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
