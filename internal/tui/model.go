package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/swipecal/internal/calendar"
	"github.com/javiermolinar/swipecal/internal/config"
	"github.com/javiermolinar/swipecal/internal/tui/theme"
	"github.com/javiermolinar/swipecal/internal/widget"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // Typing a go-to date
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config *config.Config
	log    *zap.Logger
	now    func() time.Time

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Widget
	host  *host
	shell *shell
	ctrl  *widget.Controller

	// Components
	keys   keyMap
	help   help.Model
	prompt textinput.Model

	// State
	mode   Mode
	cursor time.Time // Keyboard cursor, a day of the current period
	drag   dragState

	// Startup overrides
	startDate time.Time
	startMode calendar.Mode

	// Terminal dimensions and layout
	width     int
	height    int
	cellWidth int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusErr  bool      // Render statusMsg as an error
	statusTime time.Time // When to clear message
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLogger sets the logger for the model and the widget.
func WithLogger(log *zap.Logger) ModelOption {
	return func(m *Model) {
		if log != nil {
			m.log = log
		}
	}
}

// WithClock overrides time.Now for everything that depends on today.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithSelectedDate starts with date selected and its period centred.
func WithSelectedDate(date time.Time) ModelOption {
	return func(m *Model) {
		m.startDate = date
	}
}

// WithMode overrides the configured display mode.
func WithMode(mode calendar.Mode) ModelOption {
	return func(m *Model) {
		m.startMode = mode
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) (*Model, error) {
	cal, err := cfg.NewCalendar()
	if err != nil {
		return nil, fmt.Errorf("building calendar: %w", err)
	}

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, err = theme.Load("mocha")
		if err != nil {
			return nil, err
		}
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Prompt = "go to: "
	ti.Placeholder = "YYYY-MM-DD, tomorrow, next-month..."
	ti.CharLimit = 32
	ti.PromptStyle = styles.PromptStyle
	ti.TextStyle = styles.PromptStyle
	ti.PlaceholderStyle = styles.HelpStyle

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpStyle
	h.Styles.FullSeparator = styles.HelpStyle

	m := &Model{
		config:    cfg,
		log:       zap.NewNop(),
		now:       time.Now,
		theme:     t,
		styles:    styles,
		keys:      defaultKeyMap(),
		help:      h,
		prompt:    ti,
		mode:      ModeNormal,
		startMode: cfg.Mode(),
		cellWidth: minCellWidth,
	}
	for _, opt := range opts {
		opt(m)
	}

	var selected time.Time
	if !m.startDate.IsZero() {
		selected = cal.Day(m.startDate)
	}
	m.host = newHost(cal, cfg.Behavior.PastDaysEnabled, selected, m.log.Named("host"))
	m.shell = newShell(time.Now)
	m.ctrl = widget.New(m.host, m.shell, m.startMode,
		widget.WithLogger(m.log.Named("widget")),
		widget.WithClock(m.now),
		widget.WithThreshold(cfg.Behavior.SwipeThreshold),
		widget.WithFollowSelection(cfg.Behavior.FollowSelection),
		widget.WithViewportWidth(float64(m.cellWidth*cal.WeekdayCount())),
	)

	m.cursor = selected
	if m.cursor.IsZero() {
		m.cursor = cal.Today(m.now())
	}
	m.clampCursor()

	m.log.Info("tui started",
		zap.Stringer("mode", m.startMode),
		zap.String("theme", t.Name),
		zap.Time("cursor", m.cursor),
	)
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the TUI with optional debug logging.
func Run(cfg *config.Config, debug bool, opts ...ModelOption) error {
	log, err := NewDebugLogger(debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts = append([]ModelOption{WithLogger(log)}, opts...)
	model, err := New(cfg, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func (m Model) cal() *calendar.Calendar {
	return m.host.Calendar()
}

// paneWidth is the width of one period in columns and the widget's
// viewport width.
func (m Model) paneWidth() int {
	return m.cellWidth * m.cal().WeekdayCount()
}
