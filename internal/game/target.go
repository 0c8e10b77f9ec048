package game

import "math"

// Per-identity targeting parameters. Fixed constants: the ambush overshoot
// and shy radius are part of the classic pursuit behaviour being reproduced.
const (
	ambushLookahead = 4.0 // tiles ahead of the player for Pinky
	flankLookahead  = 2.0 // tiles ahead of the player for Inky's pivot
	shyRadius       = 8.0 // Clyde chases only beyond this distance
)

// chaseTarget returns the chase-mode target tile for this ghost's identity.
// Identities are a fixed enumeration dispatched here, not stored strategy
// functions.
func (gh *Ghost) chaseTarget(grid *Grid, pl *Player, blinky *Ghost) (float64, float64) {
	switch gh.ID {
	case GhostBlinky:
		// Direct: the player's exact position.
		return pl.X, pl.Y

	case GhostPinky:
		// Ambush: a fixed number of tiles ahead of the player, with the
		// leftward overshoot when the player faces up.
		dx, dy := pl.Heading.Vector()
		ax := pl.X + dx*ambushLookahead
		ay := pl.Y + dy*ambushLookahead
		if pl.Heading == HeadingUp {
			ax -= ambushLookahead
		}
		return clampToGrid(grid, ax, ay)

	case GhostInky:
		// Flank: reflect Blinky through the point two tiles ahead of the
		// player, i.e. double the Blinky-to-pivot vector.
		dx, dy := pl.Heading.Vector()
		px := pl.X + dx*flankLookahead
		py := pl.Y + dy*flankLookahead
		tx := px + (px - blinky.X)
		ty := py + (py - blinky.Y)
		return clampToGrid(grid, tx, ty)

	case GhostClyde:
		// Shy: chase while far away, retreat to the scatter corner when
		// within the fixed radius.
		if math.Hypot(gh.X-pl.X, gh.Y-pl.Y) > shyRadius {
			return pl.X, pl.Y
		}
		return gh.ScatterX, gh.ScatterY
	}
	return pl.X, pl.Y
}

// clampToGrid confines a target to valid tile coordinates. Targets may be
// unreachable; only their direction matters to the greedy chooser.
func clampToGrid(grid *Grid, x, y float64) (float64, float64) {
	return clamp(x, 0, float64(grid.Cols-1)), clamp(y, 0, float64(grid.Rows-1))
}
