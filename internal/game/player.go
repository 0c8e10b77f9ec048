package game

import "math"

const (
	// tileStepRate converts agent speed to tiles per second: an agent with
	// speed 1.0 crosses five tiles a second.
	tileStepRate = 5.0

	playerSpeed   = 1.0
	playerSpawnX  = 13.5
	playerSpawnY  = 23.5
	turnLookahead = 0.5 // half a step ahead: grid-snappy cornering
)

// Player is the player-controlled agent. It resolves against the grid each
// frame and knows nothing about pursuers beyond being a collision operand.
type Player struct {
	X, Y    float64
	Heading Heading
	Desired Heading // queued turn, committed when the way is clear
	Speed   float64
}

// NewPlayer creates the player at its fixed spawn point.
func NewPlayer() *Player {
	p := &Player{Speed: playerSpeed}
	p.ResetPosition()
	return p
}

// ResetPosition returns the player to spawn with no heading. Used at level
// start and after a life loss.
func (p *Player) ResetPosition() {
	p.X = playerSpawnX
	p.Y = playerSpawnY
	p.Heading = HeadingNone
	p.Desired = HeadingNone
}

// Update runs one frame of player motion: latch the desired heading, commit
// it if the tile half a step ahead is open, integrate along the current
// heading, settle on the tile centre when a wall rejects the move, then wrap
// tunnels.
// Consumption of the occupied cell is the caller's job.
func (p *Player) Update(grid *Grid, intent Heading, dt float64) {
	if intent != HeadingNone {
		p.Desired = intent
	}

	if p.Desired != HeadingNone {
		dx, dy := p.Desired.Vector()
		nx := p.X + dx*turnLookahead
		ny := p.Y + dy*turnLookahead
		if grid.CellAt(tileOf(nx), tileOf(ny)) != CellWall {
			p.Heading = p.Desired
		}
	}

	if p.Heading != HeadingNone {
		dx, dy := p.Heading.Vector()
		step := p.Speed * dt * tileStepRate
		nx := p.X + dx*step
		ny := p.Y + dy*step
		if grid.CellAt(tileOf(nx), tileOf(ny)) != CellWall {
			p.X = nx
			p.Y = ny
		} else {
			// Rejected: settle on the centre of the occupied tile.
			p.X = math.Floor(p.X) + 0.5
			p.Y = math.Floor(p.Y) + 0.5
		}
	}

	wrapX(grid, &p.X)
}

// Tile returns the player's containing tile.
func (p *Player) Tile() (int, int) {
	return tileOf(p.X), tileOf(p.Y)
}

// wrapX normalises an x coordinate into [0, cols) after tunnel traversal.
func wrapX(grid *Grid, x *float64) {
	w := float64(grid.Cols)
	if *x < 0 {
		*x += w
	} else if *x >= w {
		*x -= w
	}
}
