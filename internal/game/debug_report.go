package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// agentDebugReport builds a plain-text dump of the hunter's full state,
// suitable for pasting into a bug report.
func (g *Game) agentDebugReport() string {
	a := g.agent
	var sb strings.Builder

	fmt.Fprintf(&sb, "=== Hunter Debug Report (tick %d) ===\n", g.tick)
	fmt.Fprintf(&sb, "mode: %s   active: %v\n", a.CurrentMode(), a.Active)
	fmt.Fprintf(&sb, "pos: (%.2f, %.2f)   heading: %.2f rad   speed: %.2f\n",
		a.Position().X, a.Position().Z, a.Heading(), a.Velocity().Len())

	if dest, ok := a.Destination(); ok {
		fmt.Fprintf(&sb, "destination: (%.2f, %.2f)   dist: %.2f\n",
			dest.X, dest.Z, HorizDist(a.Position(), dest))
	} else {
		sb.WriteString("destination: none\n")
	}

	path := a.Path()
	if len(path) > 0 {
		ids := make([]string, len(path))
		for i, n := range path {
			ids[i] = fmt.Sprintf("%d", n.ID)
		}
		fmt.Fprintf(&sb, "path: [%s]   cost: %.1f\n", strings.Join(ids, " "), PathCost(path))
	} else {
		sb.WriteString("path: none (direct steering)\n")
	}
	st := a.SteerTarget()
	fmt.Fprintf(&sb, "steer target: (%.2f, %.2f)\n", st.X, st.Z)

	if lk, ok := a.LastKnown(); ok {
		fmt.Fprintf(&sb, "last-known intruder: (%.2f, %.2f)\n", lk.X, lk.Z)
	} else {
		sb.WriteString("last-known intruder: none\n")
	}
	fmt.Fprintf(&sb, "patrol index: %d of %d\n", a.PatrolIndex(), len(a.patrol))
	if a.CurrentMode() == ModeSearch {
		fmt.Fprintf(&sb, "search timer: %.2fs remaining\n", a.SearchTimer())
	}
	fmt.Fprintf(&sb, "intruder pos: (%.2f, %.2f)   captures: %d\n",
		g.intruder.Position().X, g.intruder.Position().Z, g.captures)

	sb.WriteString("\n--- Recent thoughts ---\n")
	for _, e := range g.thoughtLog.Recent() {
		fmt.Fprintf(&sb, "%4d [%s] %s\n", e.Tick, e.Label, e.Message)
	}
	return sb.String()
}

// copyDebugReport puts the debug report on the system clipboard and flashes
// the result on the HUD. Clipboard failure is cosmetic, never fatal.
func (g *Game) copyDebugReport() {
	if err := clipboard.WriteAll(g.agentDebugReport()); err != nil {
		g.status = fmt.Sprintf("clipboard copy failed: %v", err)
	} else {
		g.status = "debug report copied to clipboard"
	}
	g.statusTicks = 180 // ~3 seconds
}
