package game

import "fmt"

// TestSim is a headless harness used by tests and the report CLI. It wraps a
// Sim with deterministic seeding, a fixed frame delta, scripted input and
// structured change logging.
type TestSim struct {
	Sim    *Sim
	SimLog *SimLog

	frame int
	dt    float64

	// construction state
	seed    int64
	src     LevelSource
	verbose bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // seed, delta, source, verbose; applied first
	simOptState                      // level/lives adjustments; applied after the Sim exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.seed = seed }}
}

// WithFrameDelta sets the per-frame delta time in seconds (default 1/60).
func WithFrameDelta(dt float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.dt = dt }}
}

// WithLevelSource substitutes the level generator, letting tests run on
// purpose-built mazes.
func WithLevelSource(src LevelSource) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.src = src }}
}

// WithVerbose enables per-frame position and timer logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.verbose = v }}
}

// WithStartLevel jumps the fresh simulation to the given level.
func WithStartLevel(level int) SimOption {
	return SimOption{simOptState, func(ts *TestSim) { ts.Sim.loadLevel(level) }}
}

// WithLives overrides the starting life count.
func WithLives(lives int) SimOption {
	return SimOption{simOptState, func(ts *TestSim) { ts.Sim.session.Lives = lives }}
}

// NewTestSim constructs a harness in two ordered passes: infrastructure
// options first, then state adjustments once the Sim exists.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		seed: 1,
		dt:   1.0 / 60.0,
		src:  GenerateLevel,
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.Sim = NewSim(ts.src, ts.seed)
	ts.SimLog = NewSimLog(ts.verbose)
	for _, o := range opts {
		if o.kind == simOptState {
			o.fn(ts)
		}
	}
	return ts
}

// RunFrames advances n frames holding a constant input intent.
func (ts *TestSim) RunFrames(n int, intent Heading) {
	ts.Drive(n, func(*Sim) Heading { return intent })
}

// Drive advances n frames, asking driver for the player's intent each frame.
func (ts *TestSim) Drive(n int, driver func(*Sim) Heading) {
	for i := 0; i < n; i++ {
		ts.stepFrame(driver(ts.Sim))
	}
}

// RunUntil advances up to maxFrames, stopping early when predicate returns
// true. Returns the frame at which it was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxFrames int, intent Heading) int {
	for i := 0; i < maxFrames; i++ {
		ts.stepFrame(intent)
		if predicate(ts) {
			return ts.frame
		}
	}
	return -1
}

// CurrentFrame returns the number of frames advanced so far.
func (ts *TestSim) CurrentFrame() int {
	return ts.frame
}

// stepFrame advances one frame and logs observable changes.
func (ts *TestSim) stepFrame(intent Heading) {
	s := ts.Sim

	prevMode := s.Mode()
	prevIndex := s.ModeIndex()
	prevLevel := s.Level()
	prevScore := s.Score()
	prevLives := s.Lives()
	var prevStates [NumGhosts]GhostState
	for i, gh := range s.ghosts {
		prevStates[i] = gh.State
	}

	ts.frame++
	frame := ts.frame
	s.Advance(ts.dt, intent)

	// Discrete events first: they explain the state deltas below.
	for _, ev := range s.Events() {
		ts.SimLog.Add(frame, "--", "event", ev.Kind.String(),
			fmt.Sprintf("points=%d", ev.Points), float64(ev.Points))
	}

	if s.Level() != prevLevel {
		ts.SimLog.Add(frame, "--", "level", "advance",
			fmt.Sprintf("%d → %d", prevLevel, s.Level()), float64(s.Level()))
	} else {
		// Ghost state deltas are meaningless across a level reload.
		for i, gh := range s.ghosts {
			if gh.State != prevStates[i] {
				ts.SimLog.Add(frame, gh.ID.String(), "ghost", "state_change",
					fmt.Sprintf("%s → %s", prevStates[i], gh.State), 0)
			}
		}
	}

	if s.Mode() != prevMode || s.ModeIndex() != prevIndex {
		ts.SimLog.Add(frame, "--", "mode", "change",
			fmt.Sprintf("%s → %s (entry %d)", prevMode, s.Mode(), s.ModeIndex()),
			float64(s.ModeIndex()))
	}
	if s.Score() != prevScore {
		ts.SimLog.Add(frame, "player", "score", "change",
			fmt.Sprintf("%d → %d", prevScore, s.Score()), float64(s.Score()))
	}
	if s.Lives() != prevLives {
		ts.SimLog.Add(frame, "player", "score", "lives",
			fmt.Sprintf("%d → %d", prevLives, s.Lives()), float64(s.Lives()))
	}

	// Verbose: positions and timers every frame.
	pl := s.PlayerSnapshot()
	ts.SimLog.AddVerbose(frame, "player", "move", "position",
		fmt.Sprintf("(%.2f,%.2f) %s", pl.X, pl.Y, pl.Heading), 0)
	for _, gh := range s.GhostSnapshots() {
		ts.SimLog.AddVerbose(frame, gh.ID.String(), "move", "position",
			fmt.Sprintf("(%.2f,%.2f) %s %s", gh.X, gh.Y, gh.Heading, gh.State), 0)
	}
	ts.SimLog.AddVerbose(frame, "--", "timer", "frightened",
		fmt.Sprintf("%.2fs", s.FrightenedRemaining()), s.FrightenedRemaining())
}
