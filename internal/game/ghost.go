package game

import (
	"math"
	"math/rand"
)

// NumGhosts is the fixed size of the pursuer roster.
const NumGhosts = 4

// GhostID identifies a pursuer and selects its targeting rule.
type GhostID uint8

const (
	GhostBlinky GhostID = iota // direct pursuit; Elroy speed-ups
	GhostPinky                 // ambush four tiles ahead
	GhostInky                  // flank via doubled Blinky vector
	GhostClyde                 // shy: chases only beyond eight tiles
)

func (id GhostID) String() string {
	switch id {
	case GhostBlinky:
		return "blinky"
	case GhostPinky:
		return "pinky"
	case GhostInky:
		return "inky"
	case GhostClyde:
		return "clyde"
	default:
		return "unknown"
	}
}

// GhostState is the pursuer's local sub-state, orthogonal to the global
// scatter/chase mode. Frightened and Eaten are mutually exclusive by
// construction; Eaten always wins the speed rule.
type GhostState uint8

const (
	GhostNormal GhostState = iota
	GhostFrightened
	GhostEaten
)

func (gs GhostState) String() string {
	switch gs {
	case GhostNormal:
		return "normal"
	case GhostFrightened:
		return "frightened"
	case GhostEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

const (
	// Home tile: where eaten ghosts return and revive.
	ghostHomeX = 13.5
	ghostHomeY = 14.0

	// homeArriveDist is the arrival threshold for the eaten-to-normal
	// transition. Fixed constant; pursuit fidelity depends on it.
	homeArriveDist = 0.5

	frightenedSpeedMul   = 0.5
	eatenSpeedMul        = 2.0
	frightenedTurnChance = 0.05 // per-frame random re-heading probability
	elroySpeedMul        = 1.05

	ghostBaseSpeed = 1.18
)

// ghostSpawns holds the fixed per-identity spawn coordinates.
var ghostSpawns = [NumGhosts][2]float64{
	{13.5, 11.5}, // Blinky starts outside the house
	{12.0, 14.0},
	{13.5, 14.0},
	{15.0, 14.0},
}

// scatterCorners holds the fixed per-identity scatter targets.
var scatterCorners = [NumGhosts][2]float64{
	{gridCols - 3, 3},
	{3, 3},
	{gridCols - 3, gridRows - 3},
	{3, gridRows - 3},
}

// Ghost is one autonomous pursuer.
type Ghost struct {
	ID      GhostID
	X, Y    float64
	Heading Heading
	State   GhostState

	Speed     float64 // current speed; Blinky's grows with Elroy phases
	BaseSpeed float64

	ScatterX float64
	ScatterY float64

	// ReleaseDelay staggers maze entry: while positive the ghost is inert
	// and only this countdown ticks.
	ReleaseDelay float64

	// One-shot Elroy markers, reset on level regeneration. Only Blinky
	// ever fires them.
	elroy1Fired bool
	elroy2Fired bool
}

// NewGhost creates a pursuer at its spawn with the given base speed and
// release delay.
func NewGhost(id GhostID, speed, releaseDelay float64) *Ghost {
	g := &Ghost{
		ID:        id,
		Speed:     speed,
		BaseSpeed: speed,
		ScatterX:  scatterCorners[id][0],
		ScatterY:  scatterCorners[id][1],
	}
	g.ResetPosition(releaseDelay)
	return g
}

// ResetPosition returns the ghost to spawn in Normal state. Blinky re-enters
// facing up; the others wait for a direction choice.
func (gh *Ghost) ResetPosition(releaseDelay float64) {
	gh.X = ghostSpawns[gh.ID][0]
	gh.Y = ghostSpawns[gh.ID][1]
	gh.State = GhostNormal
	gh.ReleaseDelay = releaseDelay
	if gh.ID == GhostBlinky {
		gh.Heading = HeadingUp
	} else {
		gh.Heading = HeadingNone
	}
}

// Update runs one frame of pursuer behaviour. blinky is the lead pursuer,
// needed by Inky's flanking rule.
func (gh *Ghost) Update(grid *Grid, pl *Player, blinky *Ghost, mode Mode, dt float64, rng *rand.Rand) {
	if gh.ReleaseDelay > 0 {
		gh.ReleaseDelay -= dt
		return
	}

	switch gh.State {
	case GhostEaten:
		if math.Hypot(gh.X-ghostHomeX, gh.Y-ghostHomeY) < homeArriveDist {
			gh.X = ghostHomeX
			gh.Y = ghostHomeY
			gh.State = GhostNormal
			gh.Heading = HeadingUp
			return
		}
		gh.Heading = gh.chooseDirection(grid, ghostHomeX, ghostHomeY)

	case GhostFrightened:
		if gh.Heading == HeadingNone || rng.Float64() < frightenedTurnChance {
			gh.Heading = cardinalHeadings[rng.Intn(len(cardinalHeadings))]
		}

	case GhostNormal:
		var tx, ty float64
		if mode == ModeScatter {
			tx, ty = gh.ScatterX, gh.ScatterY
		} else {
			tx, ty = gh.chaseTarget(grid, pl, blinky)
		}
		gh.Heading = gh.chooseDirection(grid, tx, ty)
	}

	gh.move(grid, dt)
}

// move integrates position along the current heading with the state speed
// multiplier, rejecting wall moves, then wraps tunnels.
func (gh *Ghost) move(grid *Grid, dt float64) {
	step := gh.Speed * dt * tileStepRate
	switch gh.State {
	case GhostFrightened:
		step *= frightenedSpeedMul
	case GhostEaten:
		step *= eatenSpeedMul
	}

	dx, dy := gh.Heading.Vector()
	nx := gh.X + dx*step
	ny := gh.Y + dy*step
	if grid.CellAt(tileOf(nx), tileOf(ny)) != CellWall {
		gh.X = nx
		gh.Y = ny
	}
	wrapX(grid, &gh.X)
}

// chooseDirection is the greedy one-step lookahead: among the directions not
// reversing the current heading, pick the open one whose next tile minimises
// straight-line distance to the target. Reversal is allowed only when every
// other exit is blocked. Ties break by first match in the fixed priority
// order up, down, left, right.
func (gh *Ghost) chooseDirection(grid *Grid, tx, ty float64) Heading {
	reverse := gh.Heading.Opposite()
	best := gh.Heading
	bestDist := math.Inf(1)

	for _, h := range cardinalHeadings {
		if gh.Heading != HeadingNone && h == reverse {
			continue
		}
		dx, dy := h.Vector()
		nx := gh.X + dx
		ny := gh.Y + dy
		if grid.CellAt(tileOf(nx), tileOf(ny)) == CellWall {
			continue
		}
		d := math.Hypot(nx-tx, ny-ty)
		if d < bestDist {
			bestDist = d
			best = h
		}
	}

	if math.IsInf(bestDist, 1) && gh.Heading != HeadingNone {
		// Dead end: only the reverse can be open.
		dx, dy := reverse.Vector()
		if grid.CellAt(tileOf(gh.X+dx), tileOf(gh.Y+dy)) != CellWall {
			return reverse
		}
	}
	return best
}

// Tile returns the ghost's containing tile.
func (gh *Ghost) Tile() (int, int) {
	return tileOf(gh.X), tileOf(gh.Y)
}
