package game

// Mode is the global pursuer behaviour phase.
type Mode uint8

const (
	ModeScatter Mode = iota // pursuers head for their fixed corners
	ModeChase               // per-identity targeting is active
)

func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	default:
		return "unknown"
	}
}

// ModeEntry is one scheduled phase. A negative Duration is the infinite
// sentinel: the timeline dwells on that entry forever. By construction the
// final entry of every level timeline is an infinite Chase.
type ModeEntry struct {
	Mode     Mode
	Duration float64 // seconds; < 0 means infinite
}

// ModeTimeline walks an ordered sequence of (mode, duration) phases. The
// index only ever advances; once the final entry is active it never moves
// again.
type ModeTimeline struct {
	entries   []ModeEntry
	index     int
	remaining float64
}

// NewModeTimeline creates a timeline positioned at its first entry.
// The entries slice must be non-empty.
func NewModeTimeline(entries []ModeEntry) *ModeTimeline {
	return &ModeTimeline{
		entries:   entries,
		remaining: entries[0].Duration,
	}
}

// Current returns the active mode.
func (tl *ModeTimeline) Current() Mode {
	return tl.entries[tl.index].Mode
}

// Index returns the active entry index. Monotonically non-decreasing.
func (tl *ModeTimeline) Index() int {
	return tl.index
}

// Remaining returns the time left on the active entry, or a negative value
// when the entry is infinite.
func (tl *ModeTimeline) Remaining() float64 {
	return tl.remaining
}

// Tick decrements the active entry and advances to the next one when it
// expires. Returns true if the active mode changed this tick. Infinite
// entries never decrement: the sentinel is a dwell, not a countdown.
func (tl *ModeTimeline) Tick(dt float64) bool {
	if tl.entries[tl.index].Duration < 0 {
		return false
	}
	tl.remaining -= dt
	if tl.remaining > 0 {
		return false
	}
	if tl.index+1 >= len(tl.entries) {
		// Exhausted with no infinite tail: freeze on the last entry.
		tl.remaining = 0
		return false
	}
	prev := tl.Current()
	tl.index++
	tl.remaining = tl.entries[tl.index].Duration
	return tl.Current() != prev
}

// FrightenedTimer is the level-scoped countdown armed by power-pellet
// consumption. It is independent of the mode timeline.
type FrightenedTimer struct {
	remaining float64
}

// Arm sets the countdown to d seconds.
func (ft *FrightenedTimer) Arm(d float64) {
	ft.remaining = d
}

// Reset clears the countdown.
func (ft *FrightenedTimer) Reset() {
	ft.remaining = 0
}

// Active reports whether the frightened window is open.
func (ft *FrightenedTimer) Active() bool {
	return ft.remaining > 0
}

// Remaining returns the seconds left, clamped at zero.
func (ft *FrightenedTimer) Remaining() float64 {
	return ft.remaining
}

// Tick decrements the countdown, clamping at zero. Returns true on the tick
// that the window closes.
func (ft *FrightenedTimer) Tick(dt float64) bool {
	if ft.remaining <= 0 {
		return false
	}
	ft.remaining -= dt
	if ft.remaining <= 0 {
		ft.remaining = 0
		return true
	}
	return false
}

// frightenedDuration returns the frightened window length for a level: long
// at low levels, tapering to a fixed floor. Monotonically non-increasing.
func frightenedDuration(level int) float64 {
	switch {
	case level <= 1:
		return 6.0
	case level <= 5:
		return 5.0
	case level <= 9:
		return 4.0
	case level <= 13:
		return 3.0
	case level <= 20:
		return 2.0
	case level <= 25:
		return 1.0
	default:
		return 0.5
	}
}
