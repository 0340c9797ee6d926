// Package ui provides the swipecal command line interface.
package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/swipecal/internal/calendar"
	"github.com/javiermolinar/swipecal/internal/config"
	"github.com/javiermolinar/swipecal/internal/dateutil"
	"github.com/javiermolinar/swipecal/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	now    func() time.Time
	debug  bool   // Enable debug logging
	mode   string // Overrides behavior.mode when set
	date   string // Initially selected date
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, now: time.Now}

	a.root = &cobra.Command{
		Use:   "swipecal",
		Short: "A swipeable month and week calendar for the terminal",
		Long: `Swipecal shows a calendar that pages between adjacent months or weeks.

Drag the grid with the mouse, use the wheel or H/L to change period,
and press t to jump back to today.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts, err := a.tuiOptions()
			if err != nil {
				return err
			}
			return tui.Run(a.config, a.debug, opts...)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+tui.DebugLogPath+")")
	a.root.Flags().StringVar(&a.mode, "mode", "", "Display mode: month or week (default from config)")
	a.root.Flags().StringVar(&a.date, "date", "", "Initially selected date (YYYY-MM-DD, tomorrow, next-month...)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.periodCmd(calendar.Month))
	a.root.AddCommand(a.periodCmd(calendar.Week))

	return a
}

func (a *App) tuiOptions() ([]tui.ModelOption, error) {
	var opts []tui.ModelOption
	if a.mode != "" {
		mode, err := calendar.ParseMode(a.mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tui.WithMode(mode))
	}
	if a.date != "" {
		cal, err := a.config.NewCalendar()
		if err != nil {
			return nil, err
		}
		date, err := parseDate(cal, a.date, a.now())
		if err != nil {
			return nil, err
		}
		opts = append(opts, tui.WithSelectedDate(date))
	}
	return opts, nil
}

// parseDate resolves s relative to the day containing now.
func parseDate(cal *calendar.Calendar, s string, now time.Time) (time.Time, error) {
	date, err := dateutil.ParseRelativeDate(s, cal.Today(now))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	if !cal.InBounds(date) {
		return time.Time{}, fmt.Errorf("date %s is outside the calendar range", date.Format("2006-01-02"))
	}
	return date, nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "swipecal %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetArgs overrides the command line arguments.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
