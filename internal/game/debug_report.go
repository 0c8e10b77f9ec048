package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// debugReport builds a plain-text dump of the observable simulation state,
// suitable for pasting into a bug report.
func (g *Game) debugReport() string {
	s := g.sim
	var sb strings.Builder

	sb.WriteString("=== chomp debug report ===\n")
	fmt.Fprintf(&sb, "level=%d score=%d high=%d lives=%d\n",
		s.Level(), s.Score(), s.HighScore(), s.Lives())
	fmt.Fprintf(&sb, "mode=%s entry=%d frightened=%.2fs glitch=%v over=%v\n",
		s.Mode(), s.ModeIndex(), s.FrightenedRemaining(), s.Glitch(), s.Over())
	fmt.Fprintf(&sb, "pellets: eaten=%d remaining=%d\n",
		s.PelletsEaten(), s.PelletsRemaining())

	pl := s.PlayerSnapshot()
	fmt.Fprintf(&sb, "player: (%.2f,%.2f) heading=%s\n", pl.X, pl.Y, pl.Heading)

	for _, gh := range s.GhostSnapshots() {
		waiting := ""
		if gh.Waiting {
			waiting = " waiting"
		}
		fmt.Fprintf(&sb, "%-6s: (%.2f,%.2f) heading=%-5s state=%s%s\n",
			gh.ID, gh.X, gh.Y, gh.Heading, gh.State, waiting)
	}

	fruit := s.FruitSnapshot()
	if fruit.Active {
		fmt.Fprintf(&sb, "fruit: active at (%.1f,%.1f) worth %d\n",
			fruit.X, fruit.Y, fruit.Points)
	} else {
		sb.WriteString("fruit: inactive\n")
	}
	return sb.String()
}

// copyDebugReport puts the report on the system clipboard. Clipboard
// failures are ignored: this is a developer convenience, not a feature.
func (g *Game) copyDebugReport() {
	_ = clipboard.WriteAll(g.debugReport())
}
