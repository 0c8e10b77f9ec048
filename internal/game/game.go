package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// tileSize is the pixel size of one maze cell.
	tileSize = 20
	// hudHeight is the pixel height of the score strip above the maze.
	hudHeight = 64

	// frameDelta is the simulation step per rendered frame at 60 TPS.
	frameDelta = 1.0 / 60.0

	readyDuration      = 1.6 // seconds of READY! at game start
	levelReadyDuration = 2.0 // slightly longer between levels
)

// screenState is the presentation flow around the simulation core.
type screenState uint8

const (
	screenTitle screenState = iota
	screenReady
	screenPlay
	screenOver
)

// Game is the Ebiten wrapper: input latching, screen flow and rendering
// around a Sim.
type Game struct {
	sim   *Sim
	state screenState

	readyTimer float64
	paused     bool
	simSpeed   float64 // 0.5 / 1 / 2 / 4; pause is a separate flag

	width  int
	height int

	prevKeys map[ebiten.Key]bool

	// Cosmetic only: glitch-mode screen jitter.
	fxRng *rand.Rand
}

// New creates a windowed game on a fresh time-seeded simulation.
func New() *Game {
	return &Game{
		sim:      NewSim(GenerateLevel, time.Now().UnixNano()),
		state:    screenTitle,
		simSpeed: 1.0,
		width:    gridCols * tileSize,
		height:   gridRows*tileSize + hudHeight,
		prevKeys: make(map[ebiten.Key]bool),
		fxRng:    rand.New(rand.NewSource(time.Now().UnixNano() + 9999)), // #nosec G404 -- cosmetic only
	}
}

// Update advances the screen flow and, during play, the simulation.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleInput()

	switch g.state {
	case screenReady:
		g.readyTimer -= frameDelta
		if g.readyTimer <= 0 {
			g.state = screenPlay
		}

	case screenPlay:
		if g.paused {
			break
		}
		g.sim.Advance(frameDelta*g.simSpeed, g.inputIntent())
		for _, ev := range g.sim.Events() {
			switch ev.Kind {
			case EventGameOver:
				g.state = screenOver
			case EventLevelCleared:
				g.state = screenReady
				g.readyTimer = levelReadyDuration
			}
		}
	}
	return nil
}

// inputIntent returns the player's desired heading from held keys. Arrows
// and WASD both work; ties break in the fixed order up, down, left, right.
func (g *Game) inputIntent() Heading {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		return HeadingUp
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		return HeadingDown
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		return HeadingLeft
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		return HeadingRight
	default:
		return HeadingNone
	}
}

// handleInput processes edge-triggered control keys.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	// SPACE: start from title / restart from game over / pause during play.
	if pressed(ebiten.KeySpace) {
		switch g.state {
		case screenTitle:
			g.sim.NewGame()
			g.state = screenReady
			g.readyTimer = readyDuration
		case screenPlay:
			g.paused = !g.paused
		case screenOver:
			g.sim.NewGame()
			g.state = screenReady
			g.readyTimer = readyDuration
		}
	}

	// G: toggle forced kill-screen corruption and regenerate.
	if pressed(ebiten.KeyG) {
		g.sim.SetGlitch(!g.sim.glitchOverride)
		g.sim.RegenerateLevel()
	}

	// C: copy a debug report to the clipboard.
	if pressed(ebiten.KeyC) {
		g.copyDebugReport()
	}

	// Comma/period: simulation speed down/up.
	speeds := []float64{0.5, 1, 2, 4}
	if pressed(ebiten.KeyComma) {
		for i, s := range speeds {
			if s >= g.simSpeed && i > 0 {
				g.simSpeed = speeds[i-1]
				break
			}
		}
	}
	if pressed(ebiten.KeyPeriod) {
		for i := len(speeds) - 1; i >= 0; i-- {
			if speeds[i] <= g.simSpeed && i < len(speeds)-1 {
				g.simSpeed = speeds[i+1]
				break
			}
		}
	}

	g.prevKeys = currentKeys
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
