package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/rvale/chomp/internal/game"
)

// runStats aggregates one headless run.
type runStats struct {
	runIndex int
	seed     int64

	frames       int
	score        int
	levelReached int
	pelletsEaten int
	ghostsEaten  int
	powerPellets int
	fruitEaten   int
	livesLost    int
	modeChanges  int
	gameOver     bool
	gameOverAt   int
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&frames, "frames", 18000, "frames per run (60 = one second)")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}

	fmt.Printf("=== Headless Chase Report ===\n")
	fmt.Printf("runs=%d frames=%d seed_base=%d seed_step=%d\n\n", runs, frames, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runOnce(i+1, seed, frames)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

// runOnce drives one seeded simulation with the autopilot until the frame
// budget runs out or the game ends.
func runOnce(runIndex int, seed int64, frames int) runStats {
	ts := game.NewTestSim(game.WithSeed(seed))

	for i := 0; i < frames && !ts.Sim.Over(); i++ {
		ts.Drive(1, autopilot)
	}

	stats := runStats{
		runIndex:     runIndex,
		seed:         seed,
		frames:       ts.CurrentFrame(),
		score:        ts.Sim.Score(),
		levelReached: ts.Sim.Level(),
		gameOver:     ts.Sim.Over(),
	}
	for _, e := range ts.SimLog.Entries() {
		switch {
		case e.Category == "event" && e.Key == "pellet-eaten":
			stats.pelletsEaten++
		case e.Category == "event" && e.Key == "power-pellet-eaten":
			stats.powerPellets++
		case e.Category == "event" && e.Key == "ghost-eaten":
			stats.ghostsEaten++
		case e.Category == "event" && e.Key == "fruit-eaten":
			stats.fruitEaten++
		case e.Category == "event" && e.Key == "life-lost":
			stats.livesLost++
		case e.Category == "event" && e.Key == "game-over":
			stats.gameOverAt = e.Frame
		case e.Category == "mode":
			stats.modeChanges++
		}
	}
	return stats
}

// autopilot is a greedy pellet chaser: each frame it scores the open
// directions by distance to the nearest pellet plus a danger penalty for
// nearby hostile ghosts, and heads the cheapest way. Just good enough to
// exercise a full game headlessly.
func autopilot(s *game.Sim) game.Heading {
	pl := s.PlayerSnapshot()
	grid := s.Grid()
	ghosts := s.GhostSnapshots()

	best := game.HeadingNone
	bestScore := math.Inf(1)
	for _, h := range []game.Heading{game.HeadingUp, game.HeadingDown, game.HeadingLeft, game.HeadingRight} {
		dx, dy := h.Vector()
		nx := pl.X + dx
		ny := pl.Y + dy
		if grid.CellAt(int(math.Floor(nx)), int(math.Floor(ny))) == game.CellWall {
			continue
		}

		score := nearestPelletDist(grid, nx, ny)
		for _, gh := range ghosts {
			if gh.State != game.GhostNormal || gh.Waiting {
				continue
			}
			d := math.Hypot(gh.X-nx, gh.Y-ny)
			if d < 4 {
				score += (4 - d) * 25 // steer hard away from live ghosts
			}
		}
		if h == pl.Heading.Opposite() {
			score += 0.5 // mild inertia against flip-flopping
		}
		if score < bestScore {
			bestScore = score
			best = h
		}
	}
	return best
}

// nearestPelletDist scans the grid for the closest remaining pellet.
func nearestPelletDist(grid *game.Grid, x, y float64) float64 {
	best := math.Inf(1)
	for gy := 0; gy < grid.Rows; gy++ {
		for gx := 0; gx < grid.Cols; gx++ {
			switch grid.CellAt(gx, gy) {
			case game.CellPellet, game.CellPowerPellet:
				d := math.Hypot(float64(gx)-x, float64(gy)-y)
				if d < best {
					best = d
				}
			}
		}
	}
	if math.IsInf(best, 1) {
		return 0
	}
	return best
}

func printRun(s runStats) {
	outcome := "frames exhausted"
	if s.gameOver {
		outcome = fmt.Sprintf("game over at F=%d", s.gameOverAt)
	}
	fmt.Printf("run %d (seed=%d): score=%d level=%d pellets=%d power=%d ghosts=%d fruit=%d lives_lost=%d mode_changes=%d [%s]\n",
		s.runIndex, s.seed, s.score, s.levelReached, s.pelletsEaten,
		s.powerPellets, s.ghostsEaten, s.fruitEaten, s.livesLost, s.modeChanges, outcome)
}

func printAggregate(all []runStats) {
	if len(all) == 0 {
		return
	}
	var score, pellets, ghosts, deaths int
	maxLevel := 0
	overs := 0
	for _, s := range all {
		score += s.score
		pellets += s.pelletsEaten
		ghosts += s.ghostsEaten
		deaths += s.livesLost
		if s.levelReached > maxLevel {
			maxLevel = s.levelReached
		}
		if s.gameOver {
			overs++
		}
	}
	n := len(all)
	fmt.Printf("\n--- aggregate over %d runs ---\n", n)
	fmt.Printf("avg score=%.0f avg pellets=%.0f avg ghosts eaten=%.1f avg lives lost=%.1f\n",
		float64(score)/float64(n), float64(pellets)/float64(n),
		float64(ghosts)/float64(n), float64(deaths)/float64(n))
	fmt.Printf("best level=%d game overs=%d/%d\n", maxLevel, overs, n)
}
