package game

import (
	"math/rand"
	"testing"
)

func targetFixture(t *testing.T) (*Grid, *Player, *Ghost) {
	t.Helper()
	data := GenerateLevel(1, false, rand.New(rand.NewSource(1)))
	pl := &Player{X: 10, Y: 10, Speed: playerSpeed, Heading: HeadingRight}
	blinky := NewGhost(GhostBlinky, 1.18, 0)
	return data.Grid, pl, blinky
}

func TestBlinkyTargetsPlayerDirectly(t *testing.T) {
	g, pl, blinky := targetFixture(t)
	tx, ty := blinky.chaseTarget(g, pl, blinky)
	if tx != pl.X || ty != pl.Y {
		t.Errorf("target = (%v,%v), want the player at (%v,%v)", tx, ty, pl.X, pl.Y)
	}
}

func TestPinkyAimsAheadOfPlayer(t *testing.T) {
	g, pl, blinky := targetFixture(t)
	pinky := NewGhost(GhostPinky, 1.18, 0)

	tx, ty := pinky.chaseTarget(g, pl, blinky)
	if tx != pl.X+ambushLookahead || ty != pl.Y {
		t.Errorf("facing right: target = (%v,%v), want (%v,%v)",
			tx, ty, pl.X+ambushLookahead, pl.Y)
	}

	// Facing up gets the classic leftward overshoot as well.
	pl.Heading = HeadingUp
	tx, ty = pinky.chaseTarget(g, pl, blinky)
	if tx != pl.X-ambushLookahead || ty != pl.Y-ambushLookahead {
		t.Errorf("facing up: target = (%v,%v), want (%v,%v)",
			tx, ty, pl.X-ambushLookahead, pl.Y-ambushLookahead)
	}
}

func TestPinkyTargetClampedToGrid(t *testing.T) {
	g, pl, blinky := targetFixture(t)
	pinky := NewGhost(GhostPinky, 1.18, 0)

	pl.X, pl.Y = 1, 1
	pl.Heading = HeadingUp
	tx, ty := pinky.chaseTarget(g, pl, blinky)
	if tx < 0 || ty < 0 || tx > float64(g.Cols-1) || ty > float64(g.Rows-1) {
		t.Errorf("target (%v,%v) escaped the grid", tx, ty)
	}
	if tx != 0 || ty != 0 {
		t.Errorf("target = (%v,%v), want clamped to (0,0)", tx, ty)
	}
}

func TestInkyDoublesBlinkyVector(t *testing.T) {
	g, pl, blinky := targetFixture(t)
	inky := NewGhost(GhostInky, 1.18, 0)

	blinky.X, blinky.Y = 8, 10
	// Pivot is two ahead of the player: (12,10). Doubling Blinky's vector to
	// the pivot lands at (16,10).
	tx, ty := inky.chaseTarget(g, pl, blinky)
	if tx != 16 || ty != 10 {
		t.Errorf("target = (%v,%v), want (16,10)", tx, ty)
	}
}

func TestClydeShyRadius(t *testing.T) {
	g, pl, blinky := targetFixture(t)
	clyde := NewGhost(GhostClyde, 1.18, 0)

	// Far away: chases the player like Blinky.
	clyde.X, clyde.Y = pl.X+shyRadius+2, pl.Y
	tx, ty := clyde.chaseTarget(g, pl, blinky)
	if tx != pl.X || ty != pl.Y {
		t.Errorf("far: target = (%v,%v), want the player", tx, ty)
	}

	// Inside the radius: retreats to the scatter corner.
	clyde.X, clyde.Y = pl.X+2, pl.Y
	tx, ty = clyde.chaseTarget(g, pl, blinky)
	if tx != clyde.ScatterX || ty != clyde.ScatterY {
		t.Errorf("near: target = (%v,%v), want the scatter corner (%v,%v)",
			tx, ty, clyde.ScatterX, clyde.ScatterY)
	}
}

func TestScatterCornersDistinct(t *testing.T) {
	seen := map[[2]float64]bool{}
	for _, c := range scatterCorners {
		if seen[c] {
			t.Fatalf("duplicate scatter corner %v", c)
		}
		seen[c] = true
	}
}
