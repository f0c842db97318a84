package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// borderWidth is the pixel gap between the window edge and the maze.
	borderWidth = 24
	// pixelsPerUnit converts world units to screen pixels.
	pixelsPerUnit = 16.0
	// intruderSpeed is the player-controlled movement speed in units/s.
	intruderSpeed = 4.0
)

// Game is the Ebiten host for the hunter simulation. It owns the world,
// drives the fixed-rate tick, and renders debug views. All agent logic
// lives in Agent; the Game only feeds it ticks and draws the result.
type Game struct {
	width  int
	height int
	offX   int
	offY   int

	lab        *Labyrinth
	agent      *Agent
	intruder   *Intruder
	spawn      Vec3
	thoughtLog *ThoughtLog
	tick       int

	paused    bool
	showGraph bool
	showCone  bool
	showPath  bool
	prevKeys  map[ebiten.Key]bool
	prevClick bool

	inspector Inspector
	inspBuf   *ebiten.Image

	captures int // times the hunter caught the intruder

	// Transient HUD status line (e.g. clipboard feedback).
	status      string
	statusTicks int
}

// New builds the default labyrinth scene: a 14×9 maze, a hunter patrolling
// the four quadrant centres, and a player-controlled intruder.
func New() *Game {
	lab := NewLabyrinth(14, 9, time.Now().UnixNano())

	g := &Game{
		width:      borderWidth*2 + int(lab.Width()*pixelsPerUnit) + logPanelWidth,
		height:     borderWidth*2 + int(lab.Depth()*pixelsPerUnit),
		offX:       borderWidth,
		offY:       borderWidth,
		lab:        lab,
		thoughtLog: NewThoughtLog(),
		showCone:   true,
		showPath:   true,
		prevKeys:   make(map[ebiten.Key]bool),
		inspBuf:    ebiten.NewImage(inspBufW, inspBufH),
	}

	patrol := []Vec3{
		lab.CellCenter(lab.Cols/4, lab.Rows/4),
		lab.CellCenter(3*lab.Cols/4, lab.Rows/4),
		lab.CellCenter(3*lab.Cols/4, 3*lab.Rows/4),
		lab.CellCenter(lab.Cols/4, 3*lab.Rows/4),
	}
	g.agent = NewAgent("H0", patrol[0], DefaultConfig(), lab.Graph, lab.Walls, patrol, g.thoughtLog, &g.tick)

	g.spawn = lab.CellCenter(lab.Cols/2, lab.Rows/2)
	g.intruder = NewIntruder(g.spawn, 0, false)
	g.agent.SetTarget(g.intruder)

	g.agent.OnContact = func() {
		// The core's job ends at the signal; the host restarts the level,
		// which here just means resetting the intruder to spawn.
		g.captures++
		g.intruder.SetPosition(g.spawn)
		g.thoughtLog.Add(g.tick, "--", fmt.Sprintf("intruder caught (capture #%d)", g.captures))
	}

	return g
}

// Update advances the simulation one Ebiten frame (one fixed tick).
func (g *Game) Update() error {
	g.handleInput()
	if !g.paused {
		g.tick++
		g.simTick()
	}
	if g.statusTicks > 0 {
		g.statusTicks--
	}
	return nil
}

// simTick runs one simulation step at the fixed tick rate.
func (g *Game) simTick() {
	g.agent.Update(simTickDT)
}

// handleInput processes keyboard control: intruder movement, pauses, and
// debug view toggles.
func (g *Game) handleInput() {
	// Continuous: intruder movement (player ghost-walks; walls don't stop it).
	var delta Vec3
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		delta.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		delta.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		delta.Z -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		delta.Z += 1
	}
	if (delta.X != 0 || delta.Z != 0) && !g.paused {
		l := delta.Len()
		g.intruder.Move(delta.Scale(intruderSpeed * simTickDT / l))
	}

	// Edge-triggered toggles.
	if g.keyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if g.keyJustPressed(ebiten.KeyG) {
		g.showGraph = !g.showGraph
	}
	if g.keyJustPressed(ebiten.KeyV) {
		g.showCone = !g.showCone
	}
	if g.keyJustPressed(ebiten.KeyP) {
		g.showPath = !g.showPath
	}
	if g.keyJustPressed(ebiten.KeyH) {
		g.agent.Active = !g.agent.Active
	}
	if g.keyJustPressed(ebiten.KeyC) {
		g.copyDebugReport()
	}
	if g.keyJustPressed(ebiten.KeyI) {
		g.inspector.rawView = !g.inspector.rawView
	}

	// Click to inspect an actor.
	click := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if click && !g.prevClick {
		mx, my := ebiten.CursorPosition()
		g.handleInspectorClick(mx, my)
	}
	g.prevClick = click
}

// keyJustPressed returns true on the frame a key transitions to pressed.
func (g *Game) keyJustPressed(k ebiten.Key) bool {
	now := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = now
	return now && !was
}

// worldToScreen converts a world position to screen pixels.
func (g *Game) worldToScreen(p Vec3) (float32, float32) {
	return float32(g.offX) + float32(p.X*pixelsPerUnit),
		float32(g.offY) + float32(p.Z*pixelsPerUnit)
}

// Draw renders the maze, overlays, actors, HUD, and thought log.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 22, B: 20, A: 255})

	// Floor.
	vector.FillRect(screen, float32(g.offX), float32(g.offY),
		float32(g.lab.Width()*pixelsPerUnit), float32(g.lab.Depth()*pixelsPerUnit),
		color.RGBA{R: 38, G: 34, B: 30, A: 255}, false)

	g.drawWalls(screen)
	if g.showGraph {
		g.drawGraph(screen)
	}
	if g.showPath {
		g.drawPathOverlay(screen)
	}
	if g.showCone {
		g.drawVisionCone(screen)
	}
	g.drawActors(screen)
	g.drawHUD(screen)
	g.drawInspector(screen)

	g.thoughtLog.Draw(screen, g.width-logPanelWidth, g.height)
}

// drawWalls renders every wall box as a filled rectangle.
func (g *Game) drawWalls(screen *ebiten.Image) {
	wallCol := color.RGBA{R: 96, G: 84, B: 68, A: 255}
	for _, w := range g.lab.Walls {
		x0, z0 := g.worldToScreen(w.Min)
		x1, z1 := g.worldToScreen(Vec3{X: w.Max.X, Z: w.Max.Z})
		vector.FillRect(screen, x0, z0, x1-x0, z1-z0, wallCol, false)
	}
}

// drawActors renders the hunter and the intruder.
func (g *Game) drawActors(screen *ebiten.Image) {
	// Intruder: pale circle.
	ix, iz := g.worldToScreen(g.intruder.Position())
	vector.DrawFilledCircle(screen, ix, iz, 5, color.RGBA{R: 230, G: 225, B: 210, A: 255}, true)

	// Hunter: mode-coloured circle with a heading line.
	var c color.RGBA
	switch g.agent.CurrentMode() {
	case ModePatrol:
		c = color.RGBA{R: 70, G: 160, B: 80, A: 255}
	case ModePursue:
		c = color.RGBA{R: 220, G: 60, B: 50, A: 255}
	case ModeSearch:
		c = color.RGBA{R: 220, G: 170, B: 40, A: 255}
	}
	ax, az := g.worldToScreen(g.agent.Position())
	vector.DrawFilledCircle(screen, ax, az, 6, c, true)
	if !g.agent.Active {
		vector.StrokeCircle(screen, ax, az, 8, 1.0, color.RGBA{R: 120, G: 120, B: 120, A: 200}, true)
	}

	hd := HeadingDir(g.agent.Heading()).Scale(0.8)
	hx, hz := g.worldToScreen(g.agent.Position().Add(hd))
	ebitenutil.DrawLine(screen, float64(ax), float64(az), float64(hx), float64(hz),
		color.RGBA{R: 255, G: 255, B: 255, A: 180})
}

// Layout reports the fixed window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
