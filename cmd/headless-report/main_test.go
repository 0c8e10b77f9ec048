package main

import (
	"testing"

	"github.com/rvale/chomp/internal/game"
)

func TestAutopilotPicksOpenDirection(t *testing.T) {
	ts := game.NewTestSim(game.WithSeed(7))
	h := autopilot(ts.Sim)
	if h == game.HeadingNone {
		t.Fatal("autopilot returned no heading on a fresh level")
	}
	pl := ts.Sim.PlayerSnapshot()
	dx, dy := h.Vector()
	cell := ts.Sim.Grid().CellAt(int(pl.X+dx), int(pl.Y+dy))
	if cell == game.CellWall {
		t.Fatalf("autopilot chose %s, which leads into a wall", h)
	}
}

func TestRunOnceEatsPellets(t *testing.T) {
	stats := runOnce(1, 42, 1800) // 30 seconds
	if stats.pelletsEaten == 0 {
		t.Fatal("autopilot ate no pellets in 30 seconds")
	}
	if stats.score == 0 {
		t.Fatal("score never changed")
	}
	if stats.frames == 0 {
		t.Fatal("no frames advanced")
	}
}

func TestRunOnceDeterministicPerSeed(t *testing.T) {
	a := runOnce(1, 99, 600)
	b := runOnce(2, 99, 600)
	if a.score != b.score || a.pelletsEaten != b.pelletsEaten {
		t.Fatalf("same seed diverged: score %d vs %d, pellets %d vs %d",
			a.score, b.score, a.pelletsEaten, b.pelletsEaten)
	}
}
