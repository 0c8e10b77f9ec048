package game

import (
	"math"
	"math/rand"
	"testing"
)

// openGrid builds an 11x11 grid whose whole interior is open.
func openGrid() *Grid {
	g := NewGrid(11, 11)
	for y := 1; y < 10; y++ {
		for x := 1; x < 10; x++ {
			g.SetCell(x, y, CellEmpty)
		}
	}
	return g
}

func TestChooseDirectionHeadsForTarget(t *testing.T) {
	g := crossGrid()
	gh := &Ghost{ID: GhostBlinky, X: 4.5, Y: 4.5}

	if got := gh.chooseDirection(g, 4.5, 1.0); got != HeadingUp {
		t.Errorf("target above: chose %s, want up", got)
	}
	if got := gh.chooseDirection(g, 7.5, 4.5); got != HeadingRight {
		t.Errorf("target right: chose %s, want right", got)
	}
}

func TestChooseDirectionTieBreakPriority(t *testing.T) {
	g := openGrid()
	// Target on the ghost's own tile: all four exits are equidistant, so the
	// fixed priority order decides.
	gh := &Ghost{ID: GhostBlinky, X: 5.5, Y: 5.5}
	if got := gh.chooseDirection(g, 5.5, 5.5); got != HeadingUp {
		t.Errorf("four-way tie chose %s, want up (first in priority order)", got)
	}
}

func TestChooseDirectionNeverReverses(t *testing.T) {
	g := NewGrid(9, 9)
	for x := 1; x < 8; x++ {
		g.SetCell(x, 4, CellEmpty)
	}
	gh := &Ghost{ID: GhostBlinky, X: 4.5, Y: 4.5, Heading: HeadingRight}

	// The target is directly behind; the only legal exit is straight on.
	if got := gh.chooseDirection(g, 1.0, 4.5); got != HeadingRight {
		t.Errorf("chose %s toward a target behind, want right (no reversing)", got)
	}
}

func TestChooseDirectionReversesOnlyAtDeadEnd(t *testing.T) {
	g := NewGrid(9, 9)
	for x := 1; x <= 4; x++ {
		g.SetCell(x, 4, CellEmpty)
	}
	gh := &Ghost{ID: GhostBlinky, X: 4.5, Y: 4.5, Heading: HeadingRight}

	if got := gh.chooseDirection(g, 7.5, 4.5); got != HeadingLeft {
		t.Errorf("dead end: chose %s, want the reverse (left)", got)
	}
}

func TestGhostSpeedMultipliersByState(t *testing.T) {
	g := openGrid()

	run := func(state GhostState) float64 {
		gh := &Ghost{ID: GhostBlinky, X: 2.5, Y: 5.5, Heading: HeadingRight,
			Speed: 1.0, State: state}
		gh.move(g, 0.1)
		return gh.X - 2.5
	}

	normal := run(GhostNormal)
	frightened := run(GhostFrightened)
	eaten := run(GhostEaten)

	if math.Abs(normal-1.0*0.1*tileStepRate) > 1e-9 {
		t.Errorf("normal step = %v, want %v", normal, 0.1*tileStepRate)
	}
	if math.Abs(frightened-normal*frightenedSpeedMul) > 1e-9 {
		t.Errorf("frightened step = %v, want half of %v", frightened, normal)
	}
	if math.Abs(eaten-normal*eatenSpeedMul) > 1e-9 {
		t.Errorf("eaten step = %v, want double %v", eaten, normal)
	}
}

func TestReleaseDelayHoldsGhost(t *testing.T) {
	g := openGrid()
	pl := &Player{X: 9.5, Y: 9.5, Speed: playerSpeed}
	rng := rand.New(rand.NewSource(1))

	gh := NewGhost(GhostPinky, 1.0, 1.0)
	gh.X, gh.Y = 5.5, 5.5
	startX, startY := gh.X, gh.Y

	// Held for the first second.
	for i := 0; i < 30; i++ {
		gh.Update(g, pl, gh, ModeChase, testDT, rng)
	}
	if gh.X != startX || gh.Y != startY {
		t.Fatalf("ghost moved to (%v,%v) during its release delay", gh.X, gh.Y)
	}

	// Released afterwards.
	for i := 0; i < 120; i++ {
		gh.Update(g, pl, gh, ModeChase, testDT, rng)
	}
	if gh.X == startX && gh.Y == startY {
		t.Error("ghost never moved after its release delay expired")
	}
}

func TestEatenGhostRevivesAtHome(t *testing.T) {
	data := GenerateLevel(1, false, rand.New(rand.NewSource(1)))
	g := data.Grid
	pl := NewPlayer()
	rng := rand.New(rand.NewSource(1))

	gh := NewGhost(GhostBlinky, 1.18, 0)
	gh.State = GhostEaten
	gh.X, gh.Y = ghostHomeX+0.3, ghostHomeY

	gh.Update(g, pl, gh, ModeChase, testDT, rng)
	if gh.State != GhostNormal {
		t.Fatalf("state = %s at home, want normal", gh.State)
	}
	if gh.X != ghostHomeX || gh.Y != ghostHomeY {
		t.Errorf("revived at (%v,%v), want snapped to home (%v,%v)",
			gh.X, gh.Y, ghostHomeX, ghostHomeY)
	}
	if gh.Heading != HeadingUp {
		t.Errorf("revived heading %s, want up", gh.Heading)
	}
}

func TestEatenGhostClosesOnHome(t *testing.T) {
	data := GenerateLevel(1, false, rand.New(rand.NewSource(1)))
	g := data.Grid
	pl := NewPlayer()
	rng := rand.New(rand.NewSource(1))

	gh := NewGhost(GhostBlinky, 1.18, 0)
	gh.State = GhostEaten
	gh.X, gh.Y = 13.5, 10.5 // just above the corridor over the door

	revived := false
	for i := 0; i < 60*20; i++ {
		gh.Update(g, pl, gh, ModeChase, testDT, rng)
		if gh.State == GhostNormal {
			revived = true
			break
		}
	}
	if !revived {
		t.Fatal("eaten ghost never reached home in 20 seconds")
	}
}

func TestFrightenedGhostWandersRandomly(t *testing.T) {
	g := openGrid()
	pl := &Player{X: 9.5, Y: 9.5, Speed: playerSpeed}
	rng := rand.New(rand.NewSource(3))

	gh := NewGhost(GhostBlinky, 1.0, 0)
	gh.X, gh.Y = 5.5, 5.5
	gh.State = GhostFrightened
	gh.Heading = HeadingNone

	seen := map[Heading]bool{}
	for i := 0; i < 60*30; i++ {
		gh.Update(g, pl, gh, ModeChase, testDT, rng)
		seen[gh.Heading] = true
	}
	if len(seen) < 3 {
		t.Errorf("frightened ghost used only %d headings in 30s, want varied wandering", len(seen))
	}
}

func TestScatterModeHeadsForCorner(t *testing.T) {
	data := GenerateLevel(1, false, rand.New(rand.NewSource(1)))
	g := data.Grid
	pl := NewPlayer()
	rng := rand.New(rand.NewSource(1))

	gh := NewGhost(GhostBlinky, 1.18, 0)
	start := math.Hypot(gh.X-gh.ScatterX, gh.Y-gh.ScatterY)

	for i := 0; i < 60*3; i++ {
		gh.Update(g, pl, gh, ModeScatter, testDT, rng)
	}
	end := math.Hypot(gh.X-gh.ScatterX, gh.Y-gh.ScatterY)
	if end >= start {
		t.Errorf("scatter distance to corner grew: %v to %v", start, end)
	}
}

func TestGhostResetPosition(t *testing.T) {
	gh := NewGhost(GhostClyde, 1.18, 6)
	gh.X, gh.Y = 1, 1
	gh.State = GhostEaten
	gh.Heading = HeadingLeft

	gh.ResetPosition(4)
	if gh.X != ghostSpawns[GhostClyde][0] || gh.Y != ghostSpawns[GhostClyde][1] {
		t.Errorf("reset to (%v,%v), want spawn %v", gh.X, gh.Y, ghostSpawns[GhostClyde])
	}
	if gh.State != GhostNormal {
		t.Errorf("reset state = %s, want normal", gh.State)
	}
	if gh.ReleaseDelay != 4 {
		t.Errorf("ReleaseDelay = %v, want 4", gh.ReleaseDelay)
	}
	if gh.Heading != HeadingNone {
		t.Errorf("reset heading = %s, want none until the first choice", gh.Heading)
	}

	blinky := NewGhost(GhostBlinky, 1.18, 0)
	if blinky.Heading != HeadingUp {
		t.Errorf("blinky spawn heading = %s, want up", blinky.Heading)
	}
}
