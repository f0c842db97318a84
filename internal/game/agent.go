package game

import "fmt"

// Mode is the hunter's high-level behaviour state. Exactly one mode is
// active at a time; transitions happen synchronously inside Update.
type Mode int

const (
	ModePatrol Mode = iota // cycling patrol waypoints
	ModePursue             // intruder in sight, chasing
	ModeSearch             // lost contact, sweeping last-known position
)

func (m Mode) String() string {
	switch m {
	case ModePatrol:
		return "patrol"
	case ModePursue:
		return "pursue"
	case ModeSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Positioner reports the current world position of the entity being
// tracked. The intruder implements it; tests use stubs.
type Positioner interface {
	Position() Vec3
}

// Agent is the autonomous hunter. It owns all of its mutable state; the
// graph and wall set it reads are shared and read-only, so agents never
// need locking. One Update call per simulation tick drives perception,
// the mode decision, path following, and steering.
type Agent struct {
	label string

	pos     Vec3
	heading float64
	vel     Vec3

	// Active gates the whole tick. When false the agent is fully
	// suspended and resumes unchanged.
	Active bool

	mode   Mode
	cfg    Config
	senses Senses

	graph  *Graph
	walls  []Box
	target Positioner

	// Navigation state. The steering target is derived each tick from
	// either the path or the raw destination, never both.
	destination    Vec3
	hasDestination bool
	path           []*Node
	steerTarget    Vec3

	// Perception memory.
	lastKnown    Vec3
	hasLastKnown bool

	// Patrol route.
	patrol      []Vec3
	patrolIndex int

	// Countdown timers, decremented by dt each tick.
	repathTimer float64
	searchTimer float64
	stuckTimer  float64
	stuckSample Vec3

	// Observers. All optional; none affects control flow or timing.
	OnAlert   func()        // fired once on entering pursue
	OnContact func()        // fired when the contact volume overlaps the intruder
	OnPath    func([]*Node) // fired with each freshly computed path (nil = dropped)

	thoughts    *ThoughtLog
	currentTick *int
}

// NewAgent creates a hunter at pos with the given patrol route. The graph
// and walls may be nil/empty; the agent then falls back to direct movement
// everywhere.
func NewAgent(label string, pos Vec3, cfg Config, graph *Graph, walls []Box, patrol []Vec3, tl *ThoughtLog, tick *int) *Agent {
	a := &Agent{
		label:       label,
		pos:         pos,
		Active:      true,
		mode:        ModePatrol,
		cfg:         cfg,
		senses:      NewSenses(cfg),
		graph:       graph,
		walls:       walls,
		patrol:      patrol,
		stuckSample: pos,
		stuckTimer:  cfg.StuckCheckInterval,
		thoughts:    tl,
		currentTick: tick,
	}
	if len(patrol) > 0 {
		a.heading = HeadingTo(pos, patrol[0])
	}
	return a
}

// SetTarget assigns the entity the agent tracks. A nil target disables
// perception and contact checks; the agent keeps patrolling.
func (a *Agent) SetTarget(t Positioner) {
	a.target = t
}

// Accessors used by the renderer, harness, and tests.

func (a *Agent) Label() string     { return a.label }
func (a *Agent) Position() Vec3    { return a.pos }
func (a *Agent) Heading() float64  { return a.heading }
func (a *Agent) Velocity() Vec3    { return a.vel }
func (a *Agent) CurrentMode() Mode { return a.mode }
func (a *Agent) Path() []*Node     { return a.path }
func (a *Agent) SteerTarget() Vec3 { return a.steerTarget }

// Destination returns the current destination point and whether one is set.
func (a *Agent) Destination() (Vec3, bool) { return a.destination, a.hasDestination }

// LastKnown returns the last-known intruder position and whether one exists.
func (a *Agent) LastKnown() (Vec3, bool) { return a.lastKnown, a.hasLastKnown }

// PatrolIndex returns the index of the active patrol waypoint.
func (a *Agent) PatrolIndex() int { return a.patrolIndex }

// SearchTimer returns the remaining search countdown in seconds.
func (a *Agent) SearchTimer() float64 { return a.searchTimer }

// Teleport places the agent without touching navigation state. Test and
// editor use only.
func (a *Agent) Teleport(p Vec3) {
	a.pos = p
	a.stuckSample = p
}

// Update runs one full decision-and-steering pass. dt is the tick duration
// in seconds. Nothing in here blocks; path requests are synchronous and a
// new request simply replaces any previous path.
func (a *Agent) Update(dt float64) {
	if !a.Active || dt <= 0 {
		return
	}

	a.repathTimer -= dt
	a.stuckTimer -= dt

	seen, heard := a.sense()
	a.transition(seen, heard)

	switch a.mode {
	case ModePatrol:
		a.tickPatrol()
	case ModePursue:
		a.tickPursue()
	case ModeSearch:
		a.tickSearch(dt)
	}

	a.tickSteering(dt)
	a.tickStuckCheck()
	a.tickContact()
}

// sense runs the sight and hearing checks against the target. A positive
// sight result records the last-seen position.
func (a *Agent) sense() (seen, heard bool) {
	if a.target == nil {
		return false, false
	}
	tp := a.target.Position()
	seen = a.senses.CanSee(a.pos, a.heading, tp, a.walls)
	heard = a.senses.CanHear(a.pos, tp)
	if seen {
		a.lastKnown = tp
		a.hasLastKnown = true
	}
	return seen, heard
}

// transition applies the mode table. Sight is checked before hearing;
// keep that ordering.
func (a *Agent) transition(seen, heard bool) {
	if seen {
		if a.mode != ModePursue {
			a.think(fmt.Sprintf("spotted intruder at (%.1f,%.1f), pursuing", a.lastKnown.X, a.lastKnown.Z))
			a.mode = ModePursue
			a.repathTimer = 0 // force an immediate replan
			if a.OnAlert != nil {
				a.OnAlert()
			}
		}
		return
	}

	switch a.mode {
	case ModePatrol:
		if heard && a.target != nil {
			a.lastKnown = a.target.Position()
			a.hasLastKnown = true
			a.mode = ModeSearch
			a.searchTimer = a.cfg.SearchDuration / 2
			a.repathTimer = 0
			a.think("heard something, moving to investigate")
		}
	case ModePursue:
		a.mode = ModeSearch
		a.searchTimer = a.cfg.SearchDuration
		a.repathTimer = 0
		if a.hasLastKnown {
			a.SetDestination(a.lastKnown)
		}
		a.think("lost sight, searching last-known position")
	}
}

// tickPatrol cycles the patrol route: keep a path to the active waypoint,
// and advance the route index on arrival.
func (a *Agent) tickPatrol() {
	if len(a.patrol) == 0 {
		return
	}
	wp := a.patrol[a.patrolIndex]

	if a.path == nil && (!a.hasDestination || a.destination != wp) {
		a.SetDestination(wp)
	}

	if HorizDist(a.pos, wp) <= a.cfg.StoppingDistance {
		a.advancePatrol()
		a.SetDestination(a.patrol[a.patrolIndex])
	}
}

// advancePatrol steps the waypoint index, wrapping when the route loops
// and clamping at the last waypoint otherwise.
func (a *Agent) advancePatrol() {
	if a.patrolIndex+1 < len(a.patrol) {
		a.patrolIndex++
		return
	}
	if a.cfg.PatrolLoop {
		a.patrolIndex = 0
	}
}

// tickPursue replans toward the intruder's current position on a fixed
// interval so a moving target keeps being tracked.
func (a *Agent) tickPursue() {
	if a.target == nil {
		return
	}
	if a.repathTimer <= 0 {
		a.repathTimer = a.cfg.PursueRepathInterval
		a.SetDestination(a.target.Position())
	}
}

// tickSearch sweeps toward the last-known position on a slower replan
// cadence and counts down the search timer. The exit back to patrol needs
// both the timer expired and the agent arrived.
func (a *Agent) tickSearch(dt float64) {
	a.searchTimer -= dt

	if a.repathTimer <= 0 && a.hasLastKnown {
		a.repathTimer = a.cfg.SearchRepathInterval
		a.SetDestination(a.lastKnown)
	}

	if a.searchTimer <= 0 && a.hasLastKnown &&
		HorizDist(a.pos, a.lastKnown) <= a.cfg.StoppingDistance {
		a.mode = ModePatrol
		a.think("area clear, resuming patrol")
		if len(a.patrol) > 0 {
			a.SetDestination(a.patrol[a.patrolIndex])
		}
	}
}

// SetDestination is the public entry point to (re)target the agent. Short
// hops inside MinPathDistance skip the graph entirely and steer directly.
// Longer moves resolve both endpoints to graph nodes and run A*; if either
// endpoint has no node, or no path exists, the agent falls back to direct
// steering toward the raw point. Any previous path is invalidated first.
func (a *Agent) SetDestination(p Vec3) {
	a.destination = p
	a.hasDestination = true
	a.dropPath()

	if HorizDist(a.pos, p) <= a.cfg.MinPathDistance {
		return
	}

	start, ok := a.graph.NearestNode(a.pos)
	if !ok {
		a.think("no node near me, moving directly")
		return
	}
	goal, ok := a.graph.NearestNode(p)
	if !ok {
		a.think("no node near destination, moving directly")
		return
	}

	path := FindPath(a.graph, start, goal)
	if len(path) == 0 {
		a.think(fmt.Sprintf("no path %d→%d, moving directly", start.ID, goal.ID))
		return
	}
	a.path = path
	if a.OnPath != nil {
		a.OnPath(path)
	}
}

// dropPath discards the current path, if any.
func (a *Agent) dropPath() {
	if a.path == nil {
		return
	}
	a.path = nil
	if a.OnPath != nil {
		a.OnPath(nil)
	}
}

// tickStuckCheck compares the position against the previous sample on a
// fixed interval. A stalled agent that is still meaningfully far from its
// steering target reissues the destination request for a fresh route.
func (a *Agent) tickStuckCheck() {
	if a.stuckTimer > 0 {
		return
	}
	a.stuckTimer = a.cfg.StuckCheckInterval

	moved := Dist(a.pos, a.stuckSample)
	a.stuckSample = a.pos

	if !a.hasDestination {
		return
	}
	if moved >= a.cfg.StuckEpsilon {
		return
	}
	if HorizDist(a.pos, a.steerTarget) <= 1.5*a.cfg.StoppingDistance {
		return
	}
	a.think("stuck, recomputing route")
	a.SetDestination(a.destination)
}

// tickContact raises the on-contact event when the agent's collision
// volume overlaps the intruder. What happens next (level restart) is the
// host's business.
func (a *Agent) tickContact() {
	if a.target == nil || a.OnContact == nil {
		return
	}
	if HorizDist(a.pos, a.target.Position()) <= a.cfg.ContactRadius {
		a.OnContact()
	}
}

// think records a decision in the thought log, if one is attached.
func (a *Agent) think(msg string) {
	if a.thoughts == nil {
		return
	}
	tick := 0
	if a.currentTick != nil {
		tick = *a.currentTick
	}
	a.thoughts.Add(tick, a.label, msg)
}
