package widget

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/javiermolinar/swipecal/internal/calendar"
)

// Controller errors. They signal misuse by the shell, not runtime failures.
var (
	ErrBusy            = errors.New("controller is not idle")
	ErrInvalidState    = errors.New("event not valid in current state")
	ErrUnexpectedToken = errors.New("animation token does not match pending animation")
)

// State is the controller's gesture/animation state.
type State int

const (
	Idle State = iota
	Dragging
	Animating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Animating:
		return "animating"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Animation durations.
const (
	SwipeDuration    = 250 * time.Millisecond
	SnapBackDuration = 150 * time.Millisecond
	JumpDuration     = 150 * time.Millisecond
	HopDuration      = 80 * time.Millisecond
)

// DefaultThreshold is the fraction of the viewport width a drag must cover
// to commit a page change.
const DefaultThreshold = 0.15

type transition int

const (
	transitionSnapBack transition = iota
	transitionPage                // full slide to an adjacent period
	transitionHopOut              // first half of a jump beyond the window
	transitionHopIn               // second half, centring today's period
)

func (t transition) String() string {
	switch t {
	case transitionSnapBack:
		return "snap_back"
	case transitionPage:
		return "page"
	case transitionHopOut:
		return "hop_out"
	case transitionHopIn:
		return "hop_in"
	default:
		return fmt.Sprintf("transition(%d)", int(t))
	}
}

// pendingAnimation is the single in-flight animation.
type pendingAnimation struct {
	token       Token
	kind        transition
	dir         calendar.Direction
	selectToday bool
}

// Controller owns the window of three buffers and drives paging from shell
// gestures, animation completions and explicit commands. It is not safe for
// concurrent use; all calls must come from the shell's event loop.
type Controller struct {
	host  Host
	shell Shell
	log   *zap.Logger
	now   func() time.Time

	mode      calendar.Mode
	window    *Window
	selection *Selection

	state     State
	width     float64
	threshold float64
	follow    bool

	today   time.Time // day the buffers were last classified against
	offset  float64   // current drag displacement of the centre buffer
	lastX   float64
	seq     Token
	pending *pendingAnimation
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transition tracing.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithThreshold sets the commit threshold as a fraction of the viewport width.
func WithThreshold(fraction float64) Option {
	return func(c *Controller) {
		if fraction > 0 && fraction < 1 {
			c.threshold = fraction
		}
	}
}

// WithViewportWidth sets the initial viewport width.
func WithViewportWidth(w float64) Option {
	return func(c *Controller) {
		if w > 0 {
			c.width = w
		}
	}
}

// WithFollowSelection makes committed pages move the selection into the new
// current period: today if it is there, otherwise the same weekday (week
// mode) or day of month (month mode).
func WithFollowSelection(follow bool) Option {
	return func(c *Controller) {
		c.follow = follow
	}
}

// New builds a controller and seeds its window around the host's selected
// date (today if the host has none).
func New(host Host, shell Shell, mode calendar.Mode, opts ...Option) *Controller {
	c := &Controller{
		host:      host,
		shell:     shell,
		log:       zap.NewNop(),
		now:       time.Now,
		mode:      mode,
		width:     1,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.build()
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Mode returns the display mode.
func (c *Controller) Mode() calendar.Mode {
	return c.mode
}

// Window returns the buffer window. Callers must not mutate buffers.
func (c *Controller) Window() *Window {
	return c.window
}

// Offset returns the current displacement of the centre buffer.
func (c *Controller) Offset() float64 {
	return c.offset
}

// Width returns the viewport width.
func (c *Controller) Width() float64 {
	return c.width
}

// SetViewportWidth updates the viewport width and re-centres when idle.
func (c *Controller) SetViewportWidth(w float64) {
	if w <= 0 {
		return
	}
	c.width = w
	if c.state == Idle {
		c.center()
	}
}

// SetMode switches between month and week display, discarding and rebuilding
// the window around the selected date.
func (c *Controller) SetMode(mode calendar.Mode) error {
	if c.state != Idle {
		return ErrBusy
	}
	if mode == c.mode {
		return nil
	}
	c.log.Debug("mode change", zap.Stringer("from", c.mode), zap.Stringer("to", mode))
	c.mode = mode
	c.build()
	return nil
}

// Reload re-seeds the existing buffers around the host's selected date, e.g.
// after the host moved the selection programmatically.
func (c *Controller) Reload() error {
	if c.state != Idle {
		return ErrBusy
	}
	c.log.Debug("reload", zap.Time("selected", c.host.SelectedDate()))
	c.seed()
	return nil
}

// Select selects the slot at index of the buffer at pos. It reports whether
// the selection changed; taps while not idle are ignored.
func (c *Controller) Select(pos Position, index int) bool {
	if c.state != Idle {
		return false
	}
	c.refreshDayTypes()
	return c.selection.Select(c.window.At(pos), index)
}

// GestureBegan starts a drag at x.
func (c *Controller) GestureBegan(x float64) error {
	switch c.state {
	case Animating:
		return ErrBusy
	case Dragging:
		return ErrInvalidState
	}
	c.refreshDayTypes()
	c.state = Dragging
	c.lastX = x
	c.offset = 0
	c.log.Debug("gesture began", zap.Float64("x", x))
	return nil
}

// GestureMoved translates the buffers by the movement since the last event.
func (c *Controller) GestureMoved(x float64) error {
	if c.state != Dragging {
		return ErrInvalidState
	}
	c.drag(x)
	return nil
}

// GestureEnded finishes a drag: past the threshold the window pages in the
// drag direction, otherwise it snaps back.
func (c *Controller) GestureEnded(x float64) error {
	if c.state != Dragging {
		return ErrInvalidState
	}
	c.drag(x)

	limit := c.threshold * c.width
	switch {
	case c.offset < -limit:
		c.animate(transitionPage, calendar.Forward, SwipeDuration, c.positions(-c.width), false)
	case c.offset > limit:
		c.animate(transitionPage, calendar.Backward, SwipeDuration, c.positions(c.width), false)
	default:
		c.animate(transitionSnapBack, 0, SnapBackDuration, c.positions(0), false)
	}
	return nil
}

// Advance pages forward one period with a full slide.
func (c *Controller) Advance() error {
	return c.page(calendar.Forward)
}

// Retreat pages backward one period with a full slide. It is a no-op at the
// earliest allowed period.
func (c *Controller) Retreat() error {
	return c.page(calendar.Backward)
}

func (c *Controller) page(dir calendar.Direction) error {
	if c.state != Idle {
		return ErrBusy
	}
	c.refreshDayTypes()
	if c.blocked(dir) {
		c.log.Debug("page blocked", zap.Int("dir", int(dir)))
		return nil
	}
	c.animate(transitionPage, dir, SwipeDuration, c.positions(-float64(dir)*c.width), false)
	return nil
}

// JumpToToday brings the period containing today to the centre and selects
// today. If today lies outside the loaded window, the leading buffer is
// re-seeded with today's period between two half-distance slides.
func (c *Controller) JumpToToday() error {
	if c.state != Idle {
		return ErrBusy
	}

	cal := c.host.Calendar()
	now := c.now()
	today := cal.Today(now)
	c.today = today
	for _, b := range c.window.Buffers() {
		b.reclassify(cal, now)
		c.shell.RefreshBuffer(b.ID(), b.Slots())
	}

	pos, found := c.window.TodayAt()
	switch {
	case found && pos == Previous:
		c.animate(transitionPage, calendar.Backward, JumpDuration, c.positions(c.width), true)
	case found && pos == Current:
		c.selection.SelectDate(c.window.Current(), today)
	case found && pos == Next:
		c.animate(transitionPage, calendar.Forward, JumpDuration, c.positions(-c.width), true)
	default:
		dir := c.jumpDirection(cal, today)
		c.log.Debug("jump beyond window", zap.Int("dir", int(dir)), zap.Time("today", today))
		c.animate(transitionHopOut, dir, HopDuration, c.positions(-float64(dir)*c.width/2), true)
	}
	return nil
}

// jumpDirection compares today with the host's selected date; when they are
// the same day the centred period decides.
func (c *Controller) jumpDirection(cal *calendar.Calendar, today time.Time) calendar.Direction {
	ref := c.host.SelectedDate()
	if ref.IsZero() || cal.SameDay(ref, today) {
		ref = c.window.Current().Start()
	}
	if today.Before(cal.Day(ref)) {
		return calendar.Backward
	}
	return calendar.Forward
}

// AnimationCompleted finishes the pending animation identified by token.
func (c *Controller) AnimationCompleted(token Token) error {
	if c.state != Animating || c.pending == nil {
		return ErrInvalidState
	}
	if token != c.pending.token {
		return fmt.Errorf("%w: got %d, pending %d", ErrUnexpectedToken, token, c.pending.token)
	}

	p := *c.pending
	c.pending = nil
	c.state = Idle
	c.log.Debug("animation completed", zap.Uint64("token", uint64(token)), zap.Stringer("kind", p.kind))

	switch p.kind {
	case transitionSnapBack:
		c.center()

	case transitionPage:
		c.recycle(p.dir)
		c.center()
		c.afterPage(p.selectToday)

	case transitionHopOut:
		// The buffer about to become current jumps straight to today's period.
		cal := c.host.Calendar()
		leading := c.window.At(Next)
		if p.dir == calendar.Backward {
			leading = c.window.At(Previous)
		}
		c.reseed(leading, cal.CurrentPeriodStart(c.now(), c.mode))
		c.animate(transitionHopIn, p.dir, HopDuration, c.positions(-float64(p.dir)*c.width), true)
		return nil

	case transitionHopIn:
		c.recycle(p.dir)
		// The buffer left behind still holds the period we jumped away from.
		cal := c.host.Calendar()
		trailing := c.window.At(Previous)
		if p.dir == calendar.Backward {
			trailing = c.window.At(Next)
		}
		c.reseed(trailing, cal.AdjacentPeriodStart(c.window.Current().Start(), c.mode, -p.dir))
		c.center()
		c.afterPage(true)
	}

	c.assertAdjacent()
	return nil
}

// build allocates the window and its selection, then seeds it. Only
// construction and mode switches allocate buffers.
func (c *Controller) build() {
	c.selection = NewSelection(c.host, c.now)
	c.window = NewWindow(newBuffer(0), newBuffer(1), newBuffer(2))
	c.seed()
}

// seed re-seeds the window's buffers in place around the host's selected
// date (today if the host has none).
func (c *Controller) seed() {
	cal := c.host.Calendar()
	ref := c.host.SelectedDate()
	if ref.IsZero() {
		ref = c.now()
	}

	current := cal.CurrentPeriodStart(ref, c.mode)
	starts := [3]time.Time{
		cal.AdjacentPeriodStart(current, c.mode, calendar.Backward),
		current,
		cal.AdjacentPeriodStart(current, c.mode, calendar.Forward),
	}

	c.selection.clear()
	c.today = cal.Today(c.now())
	for i, b := range c.window.Buffers() {
		c.reseed(b, starts[i])
	}
	c.state = Idle
	c.pending = nil
	c.center()
	c.assertAdjacent()
}

// reseed loads a new period into b, restores the selection mark and asks
// the shell to redraw it.
func (c *Controller) reseed(b *Buffer, start time.Time) {
	cal := c.host.Calendar()
	b.update(cal, cal.Period(start, c.mode), c.now())
	c.selection.ResolveAfterRecycle(b)
	c.shell.RefreshBuffer(b.ID(), b.Slots())
}

// recycle rotates the window one period in dir and re-seeds the buffer that
// moved to the far end.
func (c *Controller) recycle(dir calendar.Direction) {
	var b *Buffer
	if dir == calendar.Forward {
		b = c.window.ShiftForward()
	} else {
		b = c.window.ShiftBackward()
	}
	cal := c.host.Calendar()
	c.reseed(b, cal.AdjacentPeriodStart(c.window.Current().Start(), c.mode, dir))
	c.log.Debug("recycled buffer",
		zap.Int("buffer", b.ID()),
		zap.Time("current", c.window.Current().Start()),
	)
}

func (c *Controller) afterPage(selectToday bool) {
	cur := c.window.Current()
	c.selection.ResolveAfterRecycle(cur)

	switch {
	case selectToday:
		c.selection.SelectDate(cur, c.host.Calendar().Today(c.now()))
	case c.follow:
		c.followSelection(cur)
	}
}

// followSelection moves the selection into cur after a page.
func (c *Controller) followSelection(cur *Buffer) {
	cal := c.host.Calendar()
	if cur.ContainsToday() {
		c.selection.SelectDate(cur, cal.Today(c.now()))
		return
	}

	selected := c.host.SelectedDate()
	if selected.IsZero() {
		return
	}
	if c.mode == calendar.Week {
		idx := cal.WeekdayIndex(selected) - 1
		if idx < cur.Len() && !cur.Slot(idx).Empty() {
			c.selection.Select(cur, idx)
		}
		return
	}

	start := cur.Start()
	day := cal.Day(selected).Day()
	if last := calendar.DaysInMonth(start.Year(), start.Month()); day > last {
		day = last
	}
	c.selection.SelectDate(cur, cal.Date(start.Year(), start.Month(), day))
}

// drag applies the pointer position x, clamping movement toward blocked
// periods.
func (c *Controller) drag(x float64) {
	delta := x - c.lastX
	c.lastX = x

	offset := c.offset + delta
	if offset > 0 && c.blocked(calendar.Backward) {
		offset = 0
	}
	if offset < 0 && c.blocked(calendar.Forward) {
		offset = 0
	}
	if offset > c.width {
		offset = c.width
	}
	if offset < -c.width {
		offset = -c.width
	}

	c.offset = offset
	c.shell.TranslateBuffers(c.positions(offset))
}

// blocked reports whether paging in dir is disallowed: backward from the
// period containing today when past days are disabled, or toward a period
// with no representable dates.
func (c *Controller) blocked(dir calendar.Direction) bool {
	if dir == calendar.Backward {
		if !c.host.PastDaysEnabled() && c.window.Current().ContainsToday() {
			return true
		}
		return !c.window.Previous().HasDates()
	}
	return !c.window.Next().HasDates()
}

func (c *Controller) animate(kind transition, dir calendar.Direction, d time.Duration, target Positions, selectToday bool) {
	c.seq++
	c.pending = &pendingAnimation{
		token:       c.seq,
		kind:        kind,
		dir:         dir,
		selectToday: selectToday,
	}
	c.state = Animating
	c.log.Debug("animate",
		zap.Uint64("token", uint64(c.seq)),
		zap.Stringer("kind", kind),
		zap.Int("dir", int(dir)),
		zap.Duration("duration", d),
	)
	c.shell.Animate(d, target, c.seq)
}

// refreshDayTypes reclassifies every buffer once the clock has moved into a
// new day, so past/current/future and ContainsToday follow the live clock.
func (c *Controller) refreshDayTypes() {
	cal := c.host.Calendar()
	now := c.now()
	today := cal.Today(now)
	if today.Equal(c.today) {
		return
	}
	c.log.Debug("day changed", zap.Time("today", today))
	c.today = today
	for _, b := range c.window.Buffers() {
		b.reclassify(cal, now)
		c.shell.RefreshBuffer(b.ID(), b.Slots())
	}
}

// center re-centres the window without animation.
func (c *Controller) center() {
	c.offset = 0
	c.shell.TranslateBuffers(c.positions(0))
}

func (c *Controller) positions(offset float64) Positions {
	return Positions{-c.width + offset, offset, c.width + offset}
}

// assertAdjacent panics when an idle window is not chronologically adjacent.
func (c *Controller) assertAdjacent() {
	if c.state != Idle {
		return
	}
	if err := c.window.Validate(c.host.Calendar(), c.mode); err != nil {
		panic("widget: window invariant broken: " + err.Error())
	}
}
