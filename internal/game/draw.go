package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Palette. Ghost body colours are indexed by GhostID.
var (
	colBackground = color.RGBA{R: 0, G: 0, B: 30, A: 255}
	colWall       = color.RGBA{R: 20, G: 20, B: 200, A: 255}
	colPellet     = color.RGBA{R: 255, G: 255, B: 200, A: 255}
	colPlayer     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colFrightened = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	colFlash      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colFruit      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	colHUD        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colAccent     = color.RGBA{R: 255, G: 255, B: 0, A: 255}

	ghostColours = [NumGhosts]color.RGBA{
		{R: 255, G: 0, B: 0, A: 255},
		{R: 255, G: 184, B: 255, A: 255},
		{R: 0, G: 255, B: 255, A: 255},
		{R: 255, G: 184, B: 82, A: 255},
	}
)

// frightenedFlashAt reports whether a frightened ghost should render in its
// white warning flash for the given remaining window time.
func frightenedFlashAt(remaining float64) bool {
	return remaining <= 2 && int(remaining*4)%2 == 1
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if g.state == screenTitle {
		g.drawTitle(screen)
		return
	}

	vector.DrawFilledRect(screen, 0, float32(hudHeight),
		float32(g.width), float32(g.height-hudHeight), colBackground, false)
	g.drawMaze(screen)
	g.drawFruit(screen)
	g.drawPlayer(screen)
	for _, gh := range g.sim.GhostSnapshots() {
		g.drawGhost(screen, gh)
	}
	g.drawHUD(screen)

	switch g.state {
	case screenReady:
		g.drawCentred(screen, "READY!", g.height/2+40, colAccent)
	case screenOver:
		g.drawCentred(screen, "GAME OVER", g.height/2-20, color.RGBA{R: 255, G: 64, B: 64, A: 255})
		g.drawCentred(screen, "Press SPACE to restart", g.height/2+10, colHUD)
	case screenPlay:
		if g.paused {
			g.drawCentred(screen, "PAUSED", g.height/2, colHUD)
		}
	}
}

// drawMaze renders walls and pellets. Glitch levels get a one-pixel jitter
// to sell the kill-screen corruption.
func (g *Game) drawMaze(screen *ebiten.Image) {
	grid := g.sim.Grid()
	jitter := 0
	if g.sim.Glitch() {
		jitter = 1
	}
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			var ox, oy int
			if jitter > 0 {
				ox = g.fxRng.Intn(2*jitter+1) - jitter
				oy = g.fxRng.Intn(2*jitter+1) - jitter
			}
			px := float32(x*tileSize + ox)
			py := float32(y*tileSize + hudHeight + oy)
			switch grid.CellAt(x, y) {
			case CellWall:
				vector.DrawFilledRect(screen, px, py, tileSize, tileSize, colWall, false)
			case CellPellet:
				vector.DrawFilledCircle(screen, px+tileSize/2, py+tileSize/2,
					tileSize/5, colPellet, true)
			case CellPowerPellet:
				vector.DrawFilledCircle(screen, px+tileSize/2, py+tileSize/2,
					tileSize/3, colPellet, true)
			}
		}
	}
}

// headingMouthAngles returns the start/end angle of the player's mouth wedge.
func headingMouthAngles(h Heading) (float64, float64) {
	switch h {
	case HeadingUp:
		return math.Pi * 1.25, math.Pi * 1.75
	case HeadingDown:
		return math.Pi * 0.25, math.Pi * 0.75
	case HeadingLeft:
		return math.Pi * 0.75, math.Pi * 1.25
	default:
		return math.Pi * -0.25, math.Pi * 0.25
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	pl := g.sim.PlayerSnapshot()
	cx := pl.X * tileSize
	cy := pl.Y*tileSize + hudHeight
	radius := float64(tileSize/2 - 1)

	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), colPlayer, true)

	// Mouth wedge: a fan of background-coloured lines from the centre.
	a0, a1 := headingMouthAngles(pl.Heading)
	const fanSteps = 8
	for i := 0; i <= fanSteps; i++ {
		a := a0 + (a1-a0)*float64(i)/fanSteps
		ebitenutil.DrawLine(screen, cx, cy,
			cx+radius*math.Cos(a), cy+radius*math.Sin(a), colBackground)
	}
}

func (g *Game) drawGhost(screen *ebiten.Image, gh GhostSnapshot) {
	cx := gh.X * tileSize
	cy := gh.Y*tileSize + hudHeight
	radius := float64(tileSize/2 - 1)
	height := float64(tileSize - 2)

	eyesOnly := gh.State == GhostEaten
	if !eyesOnly {
		body := ghostColours[gh.ID]
		if gh.State == GhostFrightened {
			body = colFrightened
			if frightenedFlashAt(g.sim.FrightenedRemaining()) {
				body = colFlash
			}
		}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), body, true)
		vector.DrawFilledRect(screen, float32(cx-radius), float32(cy),
			float32(radius*2), float32(height-radius), body, false)
		// Skirt scallops.
		for i := 0; i < 4; i++ {
			sx := cx - radius + float64(i)*radius/1.5 + radius/3
			vector.DrawFilledCircle(screen, float32(sx), float32(cy+height-radius),
				float32(radius/3), body, true)
		}
	}

	// Eyes; pupils track the heading except when frightened.
	eyeR := radius / 3
	eyeY := cy - radius/2
	for _, side := range [2]float64{-1, 1} {
		ex := cx + side*radius/2
		vector.DrawFilledCircle(screen, float32(ex), float32(eyeY), float32(eyeR), colFlash, true)
		pupil := color.RGBA{A: 255}
		px, py := ex, eyeY
		if gh.State == GhostFrightened {
			pupil = colFrightened
		} else {
			dx, dy := gh.Heading.Vector()
			px += dx * eyeR / 2
			py += dy * eyeR / 2
		}
		vector.DrawFilledCircle(screen, float32(px), float32(py), float32(eyeR/2), pupil, true)
	}
}

func (g *Game) drawFruit(screen *ebiten.Image) {
	fruit := g.sim.FruitSnapshot()
	if !fruit.Active {
		return
	}
	vector.DrawFilledCircle(screen,
		float32(fruit.X*tileSize), float32(fruit.Y*tileSize+hudHeight),
		float32(tileSize/2-1), colFruit, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("SCORE: %06d", g.sim.Score()), face, 10, 20, colHUD)
	if g.sim.HighScore() > 0 {
		text.Draw(screen, fmt.Sprintf("HIGH: %06d", g.sim.HighScore()), face, 10, 40, colAccent)
	}
	text.Draw(screen, fmt.Sprintf("LEVEL: %d", g.sim.Level()), face, g.width/2-40, 20, colHUD)

	// Lives as small player icons.
	for i := 0; i < g.sim.Lives(); i++ {
		vector.DrawFilledCircle(screen, float32(g.width-24-i*22), 20, 8, colPlayer, true)
	}

	// One dot per completed level, up to seven.
	done := g.sim.Level() - 1
	if done > 7 {
		done = 7
	}
	for i := 0; i < done; i++ {
		vector.DrawFilledCircle(screen, float32(g.width/2+50+i*14), 16, 5, colFruit, true)
	}
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	g.drawCentred(screen, "C H O M P", g.height/2-80, colAccent)
	if g.sim.HighScore() > 0 {
		g.drawCentred(screen, fmt.Sprintf("HIGH SCORE: %06d", g.sim.HighScore()),
			g.height/2-40, colHUD)
	}
	g.drawCentred(screen, "Press SPACE to start", g.height/2+20, colHUD)
	g.drawCentred(screen, "arrows/WASD move - G glitch - C copy report", g.height/2+50,
		color.RGBA{R: 160, G: 200, B: 255, A: 255})

	// Chomper chasing a pellet trail.
	cx := float64(g.width)/2 - 80
	cy := float64(g.height)/2 - 10
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 16, colPlayer, true)
	for i := 0; i < 5; i++ {
		vector.DrawFilledCircle(screen, float32(cx+34+float64(i)*16), float32(cy), 3, colPellet, true)
	}
}

// drawCentred draws a horizontally centred HUD string.
func (g *Game) drawCentred(screen *ebiten.Image, s string, y int, clr color.Color) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, (g.width-w)/2, y, clr)
}
