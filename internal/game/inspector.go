package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Inspector panel — rendered into an offscreen buffer at 1× then blitted at inspScale.
const (
	inspScale = 2   // scale factor for inspector text rendering
	inspBufW  = 210 // buffer width in pixels (~35 chars at debug font)
	inspBufH  = 230 // buffer height in pixels
	inspPad   = 4   // padding in buffer-space pixels
	inspLineH = 13  // line height in buffer-space pixels
)

// inspTarget identifies what the inspector is pinned to.
type inspTarget int

const (
	inspNone inspTarget = iota
	inspHunter
	inspIntruder
)

// Inspector holds the selected actor and view toggle state.
type Inspector struct {
	selected inspTarget
	rawView  bool // false = curated, true = raw dump
}

// handleInspectorClick checks if a mouse click hit an actor and selects it.
// Returns true if something was hit.
func (g *Game) handleInspectorClick(mx, my int) bool {
	// Inverse of worldToScreen: world = (screen - offset) / pixelsPerUnit.
	wx := (float64(mx) - float64(g.offX)) / pixelsPerUnit
	wz := (float64(my) - float64(g.offY)) / pixelsPerUnit
	click := Vec3{X: wx, Z: wz}

	// Pick radius: 12 screen pixels expressed in world units.
	clickRadius := 12.0 / pixelsPerUnit

	if HorizDist(click, g.agent.Position()) <= clickRadius {
		g.inspector.selected = inspHunter
		return true
	}
	if HorizDist(click, g.intruder.Position()) <= clickRadius {
		g.inspector.selected = inspIntruder
		return true
	}
	// Click on empty space: deselect.
	g.inspector.selected = inspNone
	return false
}

// drawInspector renders the inspector panel into an offscreen buffer at 1×,
// then blits it onto the screen at inspScale for readability.
func (g *Game) drawInspector(screen *ebiten.Image) {
	if g.inspector.selected == inspNone {
		return
	}

	g.inspBuf.Clear()
	buf := g.inspBuf
	bw := float32(inspBufW)
	bh := float32(inspBufH)

	// Panel background.
	panelBg := color.RGBA{R: 16, G: 14, B: 12, A: 230}
	panelBorder := color.RGBA{R: 90, G: 70, B: 40, A: 255}
	vector.FillRect(buf, 0, 0, bw, bh, panelBg, false)
	vector.StrokeRect(buf, 0, 0, bw, bh, 1.0, panelBorder, false)

	lx := inspPad
	ly := inspPad

	title := "[ HUNTER H0 ]"
	if g.inspector.selected == inspIntruder {
		title = "[ INTRUDER ]"
	}
	ebitenutil.DebugPrintAt(buf, title, lx, ly)
	ly += inspLineH + 2

	viewName := "CURATED"
	if g.inspector.rawView {
		viewName = "RAW"
	}
	ebitenutil.DebugPrintAt(buf, fmt.Sprintf("view: %s  [I] toggle", viewName), lx, ly)
	ly += inspLineH + 4

	vector.StrokeLine(buf, float32(lx), float32(ly), bw-float32(inspPad), float32(ly), 1.0, panelBorder, false)
	ly += 4

	switch {
	case g.inspector.selected == inspIntruder:
		g.drawInspectorIntruder(buf, lx, ly)
	case g.inspector.rawView:
		g.drawInspectorRaw(buf, lx, ly)
	default:
		g.drawInspectorCurated(buf, lx, ly)
	}

	// Blit bottom-right, left of the log panel.
	px := g.width - logPanelWidth - inspBufW*inspScale - 12
	py := g.height - inspBufH*inspScale - 8
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(inspScale), float64(inspScale))
	opts.GeoM.Translate(float64(px), float64(py))
	screen.DrawImage(buf, opts)
}

// drawInspectorCurated draws the organised, human-readable hunter view.
func (g *Game) drawInspectorCurated(buf *ebiten.Image, lx, ly int) {
	a := g.agent

	line := func(text string) {
		ebitenutil.DebugPrintAt(buf, text, lx, ly)
		ly += inspLineH
	}
	section := func(title string) {
		ly += 3
		ebitenutil.DebugPrintAt(buf, "-- "+title+" --", lx, ly)
		ly += inspLineH
	}
	bar := func(label string, v float64) {
		filled := int(v * 14)
		if filled < 0 {
			filled = 0
		}
		if filled > 14 {
			filled = 14
		}
		b := ""
		for i := 0; i < filled; i++ {
			b += "█"
		}
		for i := filled; i < 14; i++ {
			b += "░"
		}
		ebitenutil.DebugPrintAt(buf, fmt.Sprintf("%-8s %s %.1f", label, b, v), lx, ly)
		ly += inspLineH
	}

	section("STATE")
	active := "active"
	if !a.Active {
		active = "SUSPENDED"
	}
	line(fmt.Sprintf("mode: %-8s %s", a.CurrentMode(), active))
	line(fmt.Sprintf("waypoint: %d/%d", a.PatrolIndex()+1, len(g.agent.patrol)))
	if lk, ok := a.LastKnown(); ok {
		line(fmt.Sprintf("last seen:(%.1f,%.1f)", lk.X, lk.Z))
	}
	if a.CurrentMode() == ModeSearch {
		frac := a.SearchTimer() / a.cfg.SearchDuration
		bar("search", frac)
	}

	section("NAVIGATION")
	if dest, ok := a.Destination(); ok {
		line(fmt.Sprintf("dest:(%.1f,%.1f)", dest.X, dest.Z))
	} else {
		line("dest: none")
	}
	if p := a.Path(); p != nil {
		line(fmt.Sprintf("path: %d nodes cost %.1f", len(p), PathCost(p)))
	} else {
		line("path: direct")
	}
	st := a.SteerTarget()
	line(fmt.Sprintf("steer:(%.1f,%.1f)", st.X, st.Z))

	section("MOVEMENT")
	bar("speed", a.Velocity().Len()/a.cfg.MaxSpeed)
	line(fmt.Sprintf("pos:(%.1f,%.1f) hd:%.2f", a.Position().X, a.Position().Z, a.Heading()))

	section("SENSES")
	seen := a.senses.CanSee(a.Position(), a.Heading(), g.intruder.Position(), g.lab.Walls)
	heard := a.senses.CanHear(a.Position(), g.intruder.Position())
	line(fmt.Sprintf("sees:%v hears:%v", seen, heard))
	line(fmt.Sprintf("range:%.0f fov:%.0f° ear:%.0f",
		a.cfg.SightRange, a.cfg.FOVDegrees, a.cfg.HearingRange))
	line(fmt.Sprintf("captures: %d", g.captures))
}

// drawInspectorRaw dumps the hunter state and config verbatim.
func (g *Game) drawInspectorRaw(buf *ebiten.Image, lx, ly int) {
	a := g.agent
	cfg := a.cfg

	line := func(text string) {
		ebitenutil.DebugPrintAt(buf, text, lx, ly)
		ly += inspLineH
	}

	line(fmt.Sprintf("mode=%s active=%v", a.CurrentMode(), a.Active))
	line(fmt.Sprintf("pos=(%.2f,%.2f) hd=%.3f", a.pos.X, a.pos.Z, a.heading))
	line(fmt.Sprintf("vel=(%.2f,%.2f)", a.vel.X, a.vel.Z))
	line(fmt.Sprintf("dest=(%.2f,%.2f) has=%v", a.destination.X, a.destination.Z, a.hasDestination))
	line(fmt.Sprintf("steer=(%.2f,%.2f)", a.steerTarget.X, a.steerTarget.Z))
	line(fmt.Sprintf("path=%d lastKnown=%v", len(a.path), a.hasLastKnown))
	line(fmt.Sprintf("lk=(%.2f,%.2f)", a.lastKnown.X, a.lastKnown.Z))
	line(fmt.Sprintf("patrol=%d/%d loop=%v", a.patrolIndex, len(a.patrol), cfg.PatrolLoop))
	line(fmt.Sprintf("tRepath=%.2f tSearch=%.2f", a.repathTimer, a.searchTimer))
	line(fmt.Sprintf("tStuck=%.2f smp=(%.1f,%.1f)", a.stuckTimer, a.stuckSample.X, a.stuckSample.Z))
	line("-- config --")
	line(fmt.Sprintf("sight=%.1f fov=%.0f eye=%.1f", cfg.SightRange, cfg.FOVDegrees, cfg.EyeHeight))
	line(fmt.Sprintf("hear=%.1f contact=%.2f", cfg.HearingRange, cfg.ContactRadius))
	line(fmt.Sprintf("spd=%.1f turn=%.1f damp=%.1f", cfg.MaxSpeed, cfg.TurnRate, cfg.Damping))
	line(fmt.Sprintf("stop=%.2f leave=%.2f minP=%.1f", cfg.StoppingDistance, cfg.LeavePathDistance, cfg.MinPathDistance))
	line(fmt.Sprintf("rpP=%.1f rpS=%.1f srch=%.1f", cfg.PursueRepathInterval, cfg.SearchRepathInterval, cfg.SearchDuration))
	line(fmt.Sprintf("stkI=%.1f stkE=%.2f", cfg.StuckCheckInterval, cfg.StuckEpsilon))
}

// drawInspectorIntruder shows the small intruder summary.
func (g *Game) drawInspectorIntruder(buf *ebiten.Image, lx, ly int) {
	line := func(text string) {
		ebitenutil.DebugPrintAt(buf, text, lx, ly)
		ly += inspLineH
	}
	p := g.intruder.Position()
	line(fmt.Sprintf("pos:(%.1f,%.1f)", p.X, p.Z))
	line(fmt.Sprintf("dist to hunter: %.1f", HorizDist(p, g.agent.Position())))
	seen := g.agent.senses.CanSee(g.agent.Position(), g.agent.Heading(), p, g.lab.Walls)
	heard := g.agent.senses.CanHear(g.agent.Position(), p)
	line(fmt.Sprintf("seen:%v heard:%v", seen, heard))
	line(fmt.Sprintf("times caught: %d", g.captures))
}
