package game

import (
	"math"
	"math/rand"
)

// Scoring and collision constants. The encounter radius and combo base are
// fixed implementation artifacts preserved verbatim; classic behaviour
// depends on them.
const (
	pelletPoints      = 10
	powerPelletPoints = 50
	ghostComboBase    = 200
	levelBonusPer     = 100
	bonusLifeScore    = 10000
	encounterRadius   = 0.5

	maxLevel   = 256
	startLives = 3

	fruitX           = 13.5
	fruitY           = 17.0
	fruitEatRadius   = 0.5
	fruitBaseSeconds = 9.0
	fruitMaxSpawns   = 2
)

// fruitThresholds are the pellet-eaten counts that open the two bonus-item
// spawn windows, each firing at most once per level.
var fruitThresholds = [fruitMaxSpawns]int{70, 170}

// SessionState is the cross-level game state: score, lives and the one-shot
// session markers. Created at new-game, survives level advances.
type SessionState struct {
	Score     int
	HighScore int
	Lives     int
	Combo     int // ghost-eaten combo exponent, reset only by power pellets

	bonusLifeAwarded bool
}

// fruitState tracks the per-level bonus item.
type fruitState struct {
	active bool
	timer  float64
	points int
	fired  [fruitMaxSpawns]bool
}

// Sim is the frame-stepped simulation core. A single goroutine owns it; one
// Advance call per rendered frame is the only mutation entry point.
type Sim struct {
	grid         *Grid
	cfg          LevelConfig
	totalPellets int
	pelletsEaten int

	player *Player
	ghosts [NumGhosts]*Ghost

	timeline   *ModeTimeline
	frightened FrightenedTimer
	fruit      fruitState

	session SessionState
	level   int
	over    bool

	glitchOverride bool
	src            LevelSource
	rng            *rand.Rand

	events []Event
}

// NewSim creates a simulation on level 1 using the given level source. The
// seed drives frightened wandering, fruit timers and glitch corruption only,
// so equal seeds reproduce equal runs.
func NewSim(src LevelSource, seed int64) *Sim {
	s := &Sim{
		src:    src,
		rng:    rand.New(rand.NewSource(seed)), // #nosec G404 -- simulation, not crypto
		player: NewPlayer(),
	}
	s.session = SessionState{Lives: startLives}
	s.loadLevel(1)
	return s
}

// NewGame resets the session for a fresh run, keeping the high score.
func (s *Sim) NewGame() {
	high := s.session.HighScore
	s.session = SessionState{Lives: startLives, HighScore: high}
	s.over = false
	s.loadLevel(1)
}

// loadLevel regenerates all per-level state from the level source.
func (s *Sim) loadLevel(level int) {
	s.level = level
	data := s.src(level, s.glitchOverride || level >= maxLevel, s.rng)
	s.grid = data.Grid
	s.cfg = data.Config
	s.totalPellets = data.TotalPellets
	s.pelletsEaten = 0
	s.fruit = fruitState{}
	s.timeline = NewModeTimeline(s.cfg.Timeline)
	s.frightened.Reset()
	s.player.ResetPosition()
	for i := range s.ghosts {
		s.ghosts[i] = NewGhost(GhostID(i), s.cfg.GhostSpeed, s.cfg.ReleaseDelays[i])
	}
}

// Advance runs one simulation frame: player, pursuers, timers, level
// progress, encounters, terminal conditions, in that fixed order. dt is the
// elapsed frame time in seconds; intent is the player's desired heading, or
// HeadingNone when no direction key is held.
func (s *Sim) Advance(dt float64, intent Heading) {
	if s.over || dt <= 0 {
		return
	}

	s.updatePlayer(dt, intent)
	s.updateGhosts(dt)
	s.tickTimers(dt)
	s.updateProgress(dt)
	s.resolveEncounters()
	s.checkLevelClear()
}

func (s *Sim) updatePlayer(dt float64, intent Heading) {
	s.player.Update(s.grid, intent, dt)

	px, py := s.player.Tile()
	kind, ok := s.grid.Consume(px, py)
	if !ok {
		return
	}
	s.pelletsEaten++
	switch kind {
	case CellPellet:
		s.addScore(pelletPoints)
		s.emit(Event{Kind: EventPelletEaten, Points: pelletPoints})
	case CellPowerPellet:
		s.addScore(powerPelletPoints)
		s.session.Combo = 0
		s.frightened.Arm(s.cfg.FrightenedTime)
		for _, gh := range s.ghosts {
			if gh.State != GhostEaten {
				gh.State = GhostFrightened
			}
		}
		s.emit(Event{Kind: EventPowerPelletEaten, Points: powerPelletPoints})
	}
}

func (s *Sim) updateGhosts(dt float64) {
	mode := s.timeline.Current()
	blinky := s.ghosts[GhostBlinky]
	for _, gh := range s.ghosts {
		gh.Update(s.grid, s.player, blinky, mode, dt, s.rng)
	}
}

func (s *Sim) tickTimers(dt float64) {
	s.timeline.Tick(dt)
	if s.frightened.Tick(dt) {
		for _, gh := range s.ghosts {
			if gh.State == GhostFrightened {
				gh.State = GhostNormal
			}
		}
	}
}

// updateProgress evaluates the level-progress tracker: fruit windows, Elroy
// thresholds, the session bonus life and the high-score watermark.
func (s *Sim) updateProgress(dt float64) {
	// Bonus item spawn windows, one-shot each.
	for i, threshold := range fruitThresholds {
		if !s.fruit.fired[i] && s.pelletsEaten >= threshold {
			s.fruit.fired[i] = true
			s.fruit.active = true
			s.fruit.timer = fruitBaseSeconds + s.rng.Float64()
			s.fruit.points = s.cfg.FruitValue
			s.emit(Event{Kind: EventFruitSpawned, Points: s.fruit.points})
		}
	}

	if s.fruit.active {
		s.fruit.timer -= dt
		if s.fruit.timer <= 0 {
			s.fruit.active = false
		} else if math.Hypot(s.player.X-fruitX, s.player.Y-fruitY) < fruitEatRadius {
			s.fruit.active = false
			s.addScore(s.fruit.points)
			s.emit(Event{Kind: EventFruitEaten, Points: s.fruit.points})
		}
	}

	// Elroy: the lead pursuer speeds up as the maze empties. Each phase
	// fires exactly once per level.
	remaining := s.totalPellets - s.pelletsEaten
	blinky := s.ghosts[GhostBlinky]
	if !blinky.elroy1Fired && remaining <= s.cfg.ElroyPhase1 {
		blinky.elroy1Fired = true
		blinky.Speed *= elroySpeedMul
	}
	if !blinky.elroy2Fired && remaining <= s.cfg.ElroyPhase2 {
		blinky.elroy2Fired = true
		blinky.Speed *= elroySpeedMul
	}

	if !s.session.bonusLifeAwarded && s.session.Score >= bonusLifeScore {
		s.session.bonusLifeAwarded = true
		s.session.Lives++
		s.emit(Event{Kind: EventBonusLife})
	}
}

// resolveEncounters runs the per-frame proximity test between the player and
// every pursuer.
func (s *Sim) resolveEncounters() {
	for _, gh := range s.ghosts {
		if math.Hypot(s.player.X-gh.X, s.player.Y-gh.Y) >= encounterRadius {
			continue
		}
		switch gh.State {
		case GhostFrightened:
			gh.State = GhostEaten
			points := ghostComboBase << s.session.Combo
			s.session.Combo++
			s.addScore(points)
			s.emit(Event{Kind: EventGhostEaten, Points: points, Ghost: gh.ID})

		case GhostNormal:
			s.loseLife()
			return

		case GhostEaten:
			// Already harmless.
		}
	}
}

// loseLife handles a player capture: decrement lives, then either end the
// game or reset all agents for another attempt. The ghost-eaten combo is
// not reset here; only power pellets do that.
func (s *Sim) loseLife() {
	s.session.Lives--
	s.emit(Event{Kind: EventLifeLost})
	if s.session.Lives <= 0 {
		s.over = true
		s.emit(Event{Kind: EventGameOver})
		return
	}
	s.player.ResetPosition()
	for i, gh := range s.ghosts {
		gh.ResetPosition(s.cfg.ReleaseDelays[i])
	}
	s.frightened.Reset()
}

// checkLevelClear declares the level complete when every pellet is consumed,
// awards the level bonus and regenerates. Level 256 wraps back to 1.
func (s *Sim) checkLevelClear() {
	if s.pelletsEaten < s.totalPellets {
		return
	}
	bonus := levelBonusPer * s.level
	s.addScore(bonus)
	s.emit(Event{Kind: EventLevelCleared, Points: bonus, Level: s.level})

	next := s.level + 1
	if next > maxLevel {
		next = 1
	}
	s.loadLevel(next)
}

func (s *Sim) addScore(points int) {
	s.session.Score += points
	if s.session.Score > s.session.HighScore {
		s.session.HighScore = s.session.Score
	}
}

func (s *Sim) emit(ev Event) {
	s.events = append(s.events, ev)
}

// --- Read-only surface for the presentation layer ---

// Events drains and returns the notifications raised since the last call.
func (s *Sim) Events() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// Grid returns the current maze. Callers must treat it as read-only.
func (s *Sim) Grid() *Grid { return s.grid }

// Mode returns the active global pursuer phase.
func (s *Sim) Mode() Mode { return s.timeline.Current() }

// ModeIndex returns the timeline position (monotone per level).
func (s *Sim) ModeIndex() int { return s.timeline.Index() }

// FrightenedRemaining returns the seconds left on the frightened window.
func (s *Sim) FrightenedRemaining() float64 { return s.frightened.Remaining() }

// FrightenedActive reports whether the frightened window is open.
func (s *Sim) FrightenedActive() bool { return s.frightened.Active() }

// Score returns the current score.
func (s *Sim) Score() int { return s.session.Score }

// HighScore returns the session-best score.
func (s *Sim) HighScore() int { return s.session.HighScore }

// Lives returns the remaining lives.
func (s *Sim) Lives() int { return s.session.Lives }

// Level returns the current level number (1-based, wraps after 256).
func (s *Sim) Level() int { return s.level }

// Over reports the terminal game-over state. Once set, Advance is inert
// until NewGame.
func (s *Sim) Over() bool { return s.over }

// PelletsRemaining returns how many pellets are left to clear the level.
func (s *Sim) PelletsRemaining() int { return s.totalPellets - s.pelletsEaten }

// PelletsEaten returns the consumed-pellet count for this level.
func (s *Sim) PelletsEaten() int { return s.pelletsEaten }

// SetGlitch toggles forced kill-screen corruption for subsequently generated
// levels.
func (s *Sim) SetGlitch(on bool) { s.glitchOverride = on }

// RegenerateLevel rebuilds the current level from the level source,
// discarding its per-level state.
func (s *Sim) RegenerateLevel() { s.loadLevel(s.level) }

// Glitch reports whether the current level was generated corrupted.
func (s *Sim) Glitch() bool { return s.cfg.Glitch }

// PlayerSnapshot is a read-only copy of the player's observable state.
type PlayerSnapshot struct {
	X, Y    float64
	Heading Heading
}

// GhostSnapshot is a read-only copy of one pursuer's observable state.
type GhostSnapshot struct {
	ID      GhostID
	X, Y    float64
	Heading Heading
	State   GhostState
	Waiting bool // still held by the release countdown
}

// FruitSnapshot describes the bonus item.
type FruitSnapshot struct {
	Active bool
	X, Y   float64
	Points int
}

// PlayerSnapshot returns the player's observable state.
func (s *Sim) PlayerSnapshot() PlayerSnapshot {
	return PlayerSnapshot{X: s.player.X, Y: s.player.Y, Heading: s.player.Heading}
}

// GhostSnapshots returns the observable state of all pursuers.
func (s *Sim) GhostSnapshots() [NumGhosts]GhostSnapshot {
	var out [NumGhosts]GhostSnapshot
	for i, gh := range s.ghosts {
		out[i] = GhostSnapshot{
			ID:      gh.ID,
			X:       gh.X,
			Y:       gh.Y,
			Heading: gh.Heading,
			State:   gh.State,
			Waiting: gh.ReleaseDelay > 0,
		}
	}
	return out
}

// FruitSnapshot returns the bonus-item state.
func (s *Sim) FruitSnapshot() FruitSnapshot {
	return FruitSnapshot{Active: s.fruit.active, X: fruitX, Y: fruitY, Points: s.fruit.points}
}
