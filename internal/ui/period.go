package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/swipecal/internal/calendar"
	"github.com/javiermolinar/swipecal/internal/tui/view"
)

// printOpts configures period printing.
type printOpts struct {
	Mode      calendar.Mode
	Now       time.Time // Decides which days are past and today
	Selected  time.Time // Highlighted day (zero for none)
	CellWidth int       // Columns per day, including the leading gap
}

func (a *App) periodCmd(mode calendar.Mode) *cobra.Command {
	var noColor bool
	var count int
	var selected string

	cmd := &cobra.Command{
		Use:   mode.String() + " [date]",
		Short: fmt.Sprintf("Print the %s containing a date", mode),
		Long: fmt.Sprintf(`Print the %[1]s containing date (default today) using the configured
calendar rules. Today is highlighted and past days are dimmed.

Examples:
  swipecal %[1]s
  swipecal %[1]s next-month -n 3
  swipecal %[1]s 2025-02-01 --select 2025-02-14`, mode),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			cal, err := a.config.NewCalendar()
			if err != nil {
				return err
			}
			now := a.now()

			ref := cal.Today(now)
			if len(args) == 1 {
				ref, err = parseDate(cal, args[0], now)
				if err != nil {
					return err
				}
			}

			opts := printOpts{
				Mode:      mode,
				Now:       now,
				CellWidth: cellWidthFor(termWidth(), cal.WeekdayCount()),
			}
			if selected != "" {
				opts.Selected, err = parseDate(cal, selected, now)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			start := cal.CurrentPeriodStart(ref, mode)
			for i := 0; i < count && cal.PeriodInBounds(start, mode); i++ {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printPeriod(out, cal, start, opts)
				start = cal.AdjacentPeriodStart(start, mode, calendar.Forward)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of consecutive periods to print")
	cmd.Flags().StringVar(&selected, "select", "", "Day to highlight as selected")
	return cmd
}

// cellWidthFor picks the widest cell that fits width.
func cellWidthFor(width, columns int) int {
	if width >= 4*columns {
		return 4
	}
	return 3
}

// printPeriod prints the title, weekday labels and one line per week row.
// Rows without any day are skipped.
func printPeriod(w io.Writer, cal *calendar.Calendar, start time.Time, opts printOpts) {
	columns := cal.WeekdayCount()
	width := columns * opts.CellWidth

	title := view.PeriodTitle(cal, start, opts.Mode)
	if pad := (width - len(title)) / 2; pad > 0 {
		title = strings.Repeat(" ", pad) + title
	}
	fmt.Fprintln(w, colorTitle.Sprint(title))

	var header strings.Builder
	for _, label := range view.WeekdayLabels(cal) {
		header.WriteString(padLeft(label, opts.CellWidth))
	}
	fmt.Fprintln(w, colorWeekdays.Sprint(header.String()))

	days := cal.DaysInPeriod(start, opts.Mode)
	for row := 0; row*columns < len(days); row++ {
		cells := days[row*columns : min((row+1)*columns, len(days))]
		if allEmpty(cells) {
			continue
		}
		var line strings.Builder
		for _, d := range cells {
			line.WriteString(formatDay(cal, d, opts))
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}

// formatDay right-aligns the day number in its cell and colours only the
// number.
func formatDay(cal *calendar.Calendar, d time.Time, opts printOpts) string {
	if d.IsZero() {
		return strings.Repeat(" ", opts.CellWidth)
	}
	label := view.DayLabel(d.Day())
	pad := strings.Repeat(" ", max(0, opts.CellWidth-len(label)))

	return pad + colorDay(label, cal.DayType(d, opts.Now), cal.SameDay(d, opts.Selected))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func allEmpty(days []time.Time) bool {
	for _, d := range days {
		if !d.IsZero() {
			return false
		}
	}
	return true
}
