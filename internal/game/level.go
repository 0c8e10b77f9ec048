package game

import "math/rand"

// Grid dimensions shared by the built-in level generator.
const (
	gridCols = 28
	gridRows = 31

	// The two rows with wraparound tunnels at the horizontal borders.
	tunnelRowNorth = 12
	tunnelRowSouth = 18
)

// Home region: the rectangular ghost house, excluded from pellet placement.
const (
	homeMinX, homeMaxX = 10, 17
	homeMinY, homeMaxY = 13, 15
)

// LevelConfig is the explicit per-level parameter aggregate consumed by the
// simulation. One fixed field per knob; nothing heterogeneous.
type LevelConfig struct {
	GhostSpeed     float64               // base pursuer speed (player is 1.0)
	ElroyPhase1    int                   // remaining pellets for first Blinky speed-up
	ElroyPhase2    int                   // remaining pellets for second Blinky speed-up
	Timeline       []ModeEntry           // scatter/chase schedule, infinite chase tail
	FrightenedTime float64               // frightened window armed per power pellet
	FruitValue     int                   // bonus item value for this level
	ReleaseDelays  [NumGhosts]float64    // seconds each ghost stays home at level start
	Glitch         bool                  // kill-screen corruption was applied
}

// LevelData is what a level source hands the simulation: a fresh grid plus
// its parameters. The core never generates layouts itself.
type LevelData struct {
	Grid         *Grid
	Config       LevelConfig
	TotalPellets int
}

// LevelSource produces the level'th maze. glitch forces kill-screen
// corruption; rng drives it (and nothing else) so seeded runs reproduce.
type LevelSource func(level int, glitch bool, rng *rand.Rand) *LevelData

// glitchCells is how many interior cells kill-screen corruption rewrites.
const glitchCells = 60

// GenerateLevel is the built-in level source: the fixed symmetric maze with
// per-level speeds, timelines and bonus values.
func GenerateLevel(level int, glitch bool, rng *rand.Rand) *LevelData {
	g := buildMaze()
	if glitch {
		corruptMaze(g, rng)
	}
	placePellets(g)

	cfg := LevelConfig{
		GhostSpeed:     ghostBaseSpeed * ghostSpeedPct(level),
		ElroyPhase1:    20,
		ElroyPhase2:    10,
		Timeline:       modeTimelineFor(level),
		FrightenedTime: frightenedDuration(level),
		FruitValue:     fruitValue(level),
		ReleaseDelays:  releaseDelays(level),
		Glitch:         glitch,
	}
	return &LevelData{
		Grid:         g,
		Config:       cfg,
		TotalPellets: g.PelletCount(),
	}
}

// buildMaze lays out the handcrafted wall pattern, the ghost house and the
// two border tunnels.
func buildMaze() *Grid {
	g := NewGrid(gridCols, gridRows, tunnelRowNorth, tunnelRowSouth)

	// Interior starts open; the border stays wall.
	for y := 1; y < gridRows-1; y++ {
		for x := 1; x < gridCols-1; x++ {
			g.SetCell(x, y, CellEmpty)
		}
	}

	// Horizontal wall runs (symmetry-lite pattern).
	for x := 2; x < gridCols-2; x++ {
		if x < 10 || x > 17 {
			g.SetCell(x, 2, CellWall)
			g.SetCell(x, 23, CellWall)
		}
		if x < 6 || x > 21 {
			g.SetCell(x, 4, CellWall)
			g.SetCell(x, 14, CellWall)
			g.SetCell(x, 21, CellWall)
		}
		if (x >= 6 && x <= 9) || (x >= 18 && x <= 21) {
			g.SetCell(x, 6, CellWall)
			g.SetCell(x, 19, CellWall)
		}
		if (x >= 6 && x <= 12) || (x >= 15 && x <= 21) {
			g.SetCell(x, 9, CellWall)
			g.SetCell(x, 16, CellWall)
		}
		// Gap at 13/14 keeps the corridor above the ghost house door open.
		if x >= 9 && x <= 18 && x != 13 && x != 14 {
			g.SetCell(x, 11, CellWall)
		}
	}

	// Vertical wall runs, mirrored left/right.
	vruns := []struct {
		x      int
		y0, y1 int
	}{
		{2, 2, 4},
		{6, 2, 6},
		{9, 2, 9},
		{12, 6, 9},
		{6, 11, 14},
		{2, 14, 19},
		{9, 16, 19},
		{12, 16, 22},
		{6, 21, 23},
	}
	for _, r := range vruns {
		for y := r.y0; y <= r.y1; y++ {
			g.SetCell(r.x, y, CellWall)
			g.SetCell(gridCols-1-r.x, y, CellWall)
		}
	}

	// Ghost house walls with a two-cell door on top.
	for x := homeMinX; x <= homeMaxX; x++ {
		g.SetCell(x, homeMinY, CellWall)
		g.SetCell(x, homeMaxY, CellWall)
	}
	for y := homeMinY; y <= homeMaxY; y++ {
		g.SetCell(homeMinX, y, CellWall)
		g.SetCell(homeMaxX, y, CellWall)
	}
	g.SetCell(13, homeMinY, CellEmpty)
	g.SetCell(14, homeMinY, CellEmpty)

	// Carve the tunnel mouths through the border.
	g.SetCell(0, tunnelRowNorth, CellEmpty)
	g.SetCell(gridCols-1, tunnelRowNorth, CellEmpty)
	g.SetCell(0, tunnelRowSouth, CellEmpty)
	g.SetCell(gridCols-1, tunnelRowSouth, CellEmpty)

	return g
}

// corruptMaze rewrites random interior cells. Level 256 kill-screen vibes;
// the border and tunnel mouths are never touched.
func corruptMaze(g *Grid, rng *rand.Rand) {
	kinds := []CellKind{CellEmpty, CellWall, CellPellet, CellPowerPellet}
	for i := 0; i < glitchCells; i++ {
		x := 1 + rng.Intn(gridCols-2)
		y := 1 + rng.Intn(gridRows-2)
		if g.CellAt(x, y) != CellWall {
			g.SetCell(x, y, kinds[rng.Intn(len(kinds))])
		}
	}
}

// placePellets fills every open corridor cell with a pellet, power pellets in
// the four fixed corners, skipping the home region and the tunnel mouths.
func placePellets(g *Grid) {
	power := [][2]int{
		{1, 3}, {gridCols - 2, 3},
		{1, gridRows - 4}, {gridCols - 2, gridRows - 4},
	}
	isPower := func(x, y int) bool {
		for _, p := range power {
			if p[0] == x && p[1] == y {
				return true
			}
		}
		return false
	}

	for y := 0; y < gridRows; y++ {
		for x := 0; x < gridCols; x++ {
			if g.CellAt(x, y) != CellEmpty {
				continue
			}
			if x == 0 || x == gridCols-1 {
				continue // tunnel mouths stay empty
			}
			if x >= homeMinX && x <= homeMaxX && y >= homeMinY && y <= homeMaxY {
				continue
			}
			if isPower(x, y) {
				g.SetCell(x, y, CellPowerPellet)
			} else {
				g.SetCell(x, y, CellPellet)
			}
		}
	}
}

// ghostSpeedPct escalates pursuer speed 5% per level, capped at 160%.
func ghostSpeedPct(level int) float64 {
	pct := 1.0 + float64(level-1)*0.05
	if pct > 1.6 {
		pct = 1.6
	}
	return pct
}

// modeTimelineFor returns the scatter/chase schedule. Level 1 gets a longer
// opening scatter; every timeline ends in permanent chase.
func modeTimelineFor(level int) []ModeEntry {
	openScatter := 5.0
	if level == 1 {
		openScatter = 7.0
	}
	return []ModeEntry{
		{ModeScatter, openScatter},
		{ModeChase, 20},
		{ModeScatter, openScatter},
		{ModeChase, 20},
		{ModeScatter, 5},
		{ModeChase, 20},
		{ModeScatter, 5},
		{ModeChase, -1},
	}
}

// fruitValues is the ascending bonus-item table, clamped at its last entry
// for high levels.
var fruitValues = [...]int{100, 300, 500, 700, 1000, 2000, 3000, 5000}

func fruitValue(level int) int {
	idx := level - 1
	if idx >= len(fruitValues) {
		idx = len(fruitValues) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return fruitValues[idx]
}

// releaseDelays staggers ghost entry into the maze. Shorter after level 1.
func releaseDelays(level int) [NumGhosts]float64 {
	if level > 1 {
		return [NumGhosts]float64{0, 2, 4, 6}
	}
	return [NumGhosts]float64{0, 4, 8, 12}
}
