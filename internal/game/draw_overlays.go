package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// drawGraph renders the waypoint graph: faint edges plus a small square
// per node.
func (g *Game) drawGraph(screen *ebiten.Image) {
	edgeCol := color.RGBA{R: 60, G: 90, B: 110, A: 120}
	nodeCol := color.RGBA{R: 90, G: 140, B: 170, A: 180}

	for _, n := range g.lab.Graph.Nodes() {
		ax, az := g.worldToScreen(n.Pos)
		for _, e := range n.Edges {
			// Each undirected edge exists twice; draw the lower→higher half.
			if e.To <= n.ID {
				continue
			}
			nb := g.lab.Graph.Node(e.To)
			if nb == nil {
				continue
			}
			bx, bz := g.worldToScreen(nb.Pos)
			ebitenutil.DrawLine(screen, float64(ax), float64(az), float64(bx), float64(bz), edgeCol)
		}
		vector.FillRect(screen, ax-2, az-2, 4, 4, nodeCol, false)
	}
}

// drawPathOverlay renders the agent's current path and steering target.
// Pure presentation: the overlay reads the path, never shapes it.
func (g *Game) drawPathOverlay(screen *ebiten.Image) {
	path := g.agent.Path()
	pathCol := color.RGBA{R: 80, G: 200, B: 230, A: 200}
	for i := 0; i+1 < len(path); i++ {
		ax, az := g.worldToScreen(path[i].Pos)
		bx, bz := g.worldToScreen(path[i+1].Pos)
		ebitenutil.DrawLine(screen, float64(ax), float64(az), float64(bx), float64(bz), pathCol)
	}

	// Destination marker.
	if dest, ok := g.agent.Destination(); ok {
		dx, dz := g.worldToScreen(dest)
		vector.StrokeCircle(screen, dx, dz, 4, 1.0, pathCol, true)
	}

	// Steering target: small cross.
	st := g.agent.SteerTarget()
	sx, sz := g.worldToScreen(st)
	cross := color.RGBA{R: 250, G: 250, B: 120, A: 220}
	ebitenutil.DrawLine(screen, float64(sx-3), float64(sz), float64(sx+3), float64(sz), cross)
	ebitenutil.DrawLine(screen, float64(sx), float64(sz-3), float64(sx), float64(sz+3), cross)
}

// drawVisionCone renders the sight arc as boundary rays plus chord
// segments, tinted by mode.
func (g *Game) drawVisionCone(screen *ebiten.Image) {
	cfg := g.agent.cfg
	pos := g.agent.Position()
	heading := g.agent.Heading()
	half := cfg.FOVDegrees * math.Pi / 360.0
	r := cfg.SightRange

	tint := color.RGBA{R: 120, G: 180, B: 120, A: 70}
	if g.agent.CurrentMode() == ModePursue {
		tint = color.RGBA{R: 220, G: 100, B: 80, A: 90}
	}

	ox, oz := g.worldToScreen(pos)
	const arcSteps = 16
	prevX, prevZ := float32(0), float32(0)
	for i := 0; i <= arcSteps; i++ {
		a := heading - half + (2*half)*float64(i)/arcSteps
		px, pz := g.worldToScreen(pos.Add(HeadingDir(a).Scale(r)))
		if i == 0 || i == arcSteps {
			ebitenutil.DrawLine(screen, float64(ox), float64(oz), float64(px), float64(pz), tint)
		}
		if i > 0 {
			ebitenutil.DrawLine(screen, float64(prevX), float64(prevZ), float64(px), float64(pz), tint)
		}
		prevX, prevZ = px, pz
	}

	// Hearing radius: dotted-ish faint circle.
	hx, hz := g.worldToScreen(pos)
	vector.StrokeCircle(screen, hx, hz, float32(cfg.HearingRange*pixelsPerUnit), 1.0,
		color.RGBA{R: 150, G: 150, B: 190, A: 60}, true)
}

// drawHUD renders the status line and key help.
func (g *Game) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13

	mode := g.agent.CurrentMode().String()
	line := fmt.Sprintf("mode:%s  patrol:%d  captures:%d  tick:%d",
		mode, g.agent.PatrolIndex(), g.captures, g.tick)
	if g.agent.CurrentMode() == ModeSearch {
		line += fmt.Sprintf("  search:%.1fs", g.agent.SearchTimer())
	}
	if g.paused {
		line += "  [PAUSED]"
	}
	if !g.agent.Active {
		line += "  [HUNTER SUSPENDED]"
	}
	text.Draw(screen, line, face, g.offX, 16, color.RGBA{R: 230, G: 230, B: 220, A: 255})

	help := "wasd/arrows move  space pause  g graph  p path  v cone  h suspend  c copy report  click inspect"
	text.Draw(screen, help, face, g.offX, g.height-8, color.RGBA{R: 150, G: 150, B: 140, A: 255})

	if g.statusTicks > 0 {
		text.Draw(screen, g.status, face, g.offX, 32, color.RGBA{R: 250, G: 210, B: 120, A: 255})
	}
}
