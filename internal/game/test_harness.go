package game

import "fmt"

// simTickDT is the fixed tick duration shared by the harness and the
// visual runner (60 ticks per second).
const simTickDT = 1.0 / 60.0

// TestSim is a headless simulation harness used by tests and the
// headless-report command. It mirrors the visual runner's tick but has no
// Ebiten dependency and supports deterministic worlds and structured
// logging.
type TestSim struct {
	Graph  *Graph
	Walls  []Box
	Agent  *Agent
	Target *Intruder
	SimLog *SimLog

	Contacts int // how many times the agent touched the intruder
	Alerts   int // how many times the alert cue fired

	cfg       Config
	agentPos  Vec3
	patrol    []Vec3
	hasAgent  bool
	tick      int
	teleportOnContact bool
	contactSpawn      Vec3
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // world, config, verbose — applied first
	simOptActor                      // agent and intruder — applied after the world exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithLabyrinth generates a maze world (walls + graph) from a seed.
func WithLabyrinth(cols, rows int, seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		lab := NewLabyrinth(cols, rows, seed)
		ts.Graph = lab.Graph
		ts.Walls = lab.Walls
	}}
}

// WithGraph installs a hand-built waypoint graph.
func WithGraph(g *Graph) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Graph = g
	}}
}

// WithWall adds a single occluding wall box.
func WithWall(b Box) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Walls = append(ts.Walls, b)
	}}
}

// WithWalls installs a full wall set, e.g. a Labyrinth's.
func WithWalls(walls []Box) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Walls = append(ts.Walls, walls...)
	}}
}

// WithConfig overrides the default agent config.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg = cfg
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithAgent places the hunter at pos with a patrol route.
func WithAgent(pos Vec3, patrol ...Vec3) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.hasAgent = true
		ts.agentPos = pos
		ts.patrol = patrol
	}}
}

// WithIntruder places a scripted intruder walking the route at speed,
// looping forever.
func WithIntruder(pos Vec3, speed float64, route ...Vec3) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.Target = NewIntruder(pos, speed, true, route...)
	}}
}

// WithStaticIntruder places an intruder that never moves.
func WithStaticIntruder(pos Vec3) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.Target = NewIntruder(pos, 0, false)
	}}
}

// WithContactRespawn teleports the intruder back to spawn whenever the
// agent touches it, standing in for the host's level restart.
func WithContactRespawn(spawn Vec3) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.teleportOnContact = true
		ts.contactSpawn = spawn
	}}
}

// NewTestSim constructs a TestSim from the given options in two ordered
// passes: world infrastructure first, then actors.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		SimLog: NewSimLog(false),
		cfg:    DefaultConfig(),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	for _, o := range opts {
		if o.kind == simOptActor {
			o.fn(ts)
		}
	}

	if ts.hasAgent {
		ts.Agent = NewAgent("H0", ts.agentPos, ts.cfg, ts.Graph, ts.Walls, ts.patrol, nil, &ts.tick)
		if ts.Target != nil {
			ts.Agent.SetTarget(ts.Target)
		}
		ts.Agent.OnAlert = func() {
			ts.Alerts++
			ts.SimLog.Add(ts.tick, ts.Agent.Label(), "sense", "alert", "alert cue started", 0)
		}
		ts.Agent.OnContact = func() {
			ts.Contacts++
			ts.SimLog.Add(ts.tick, ts.Agent.Label(), "contact", "intruder", "contact volume overlap", 0)
			if ts.teleportOnContact && ts.Target != nil {
				ts.Target.SetPosition(ts.contactSpawn)
			}
		}
		ts.Agent.OnPath = func(path []*Node) {
			if path == nil {
				ts.SimLog.AddVerbose(ts.tick, ts.Agent.Label(), "path", "dropped", "", 0)
				return
			}
			ts.SimLog.Add(ts.tick, ts.Agent.Label(), "path", "computed",
				fmt.Sprintf("%d nodes, cost %.1f", len(path), PathCost(path)), PathCost(path))
		}
	}
	return ts
}

// RunTicks advances the simulation n ticks, logging events to SimLog.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.tick++
		ts.runOneTick()
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if
// predicate returns true. Returns the tick at which the predicate was
// satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.tick++
		ts.runOneTick()
		if predicate(ts) {
			return ts.tick
		}
	}
	return -1
}

// runOneTick mirrors the visual runner's simTick.
func (ts *TestSim) runOneTick() {
	var prevMode Mode
	var prevLastKnown Vec3
	var prevHadLastKnown bool
	if ts.Agent != nil {
		prevMode = ts.Agent.CurrentMode()
		prevLastKnown, prevHadLastKnown = ts.Agent.LastKnown()
	}

	if ts.Target != nil {
		ts.Target.Update(simTickDT)
	}
	if ts.Agent != nil {
		ts.Agent.Update(simTickDT)
	}

	// --- Post-tick logging ---
	if ts.Agent == nil {
		return
	}
	a := ts.Agent

	if a.CurrentMode() != prevMode {
		ts.SimLog.Add(ts.tick, a.Label(), "mode", "change",
			fmt.Sprintf("%s → %s", prevMode, a.CurrentMode()), 0)
	}
	if lk, ok := a.LastKnown(); ok && (!prevHadLastKnown || lk != prevLastKnown) {
		ts.SimLog.AddVerbose(ts.tick, a.Label(), "sense", "last_known",
			fmt.Sprintf("(%.1f,%.1f)", lk.X, lk.Z), 0)
	}
	ts.SimLog.AddVerbose(ts.tick, a.Label(), "move", "position",
		fmt.Sprintf("(%.1f,%.1f)", a.Position().X, a.Position().Z), 0)
}

// CurrentTick returns the current simulation tick.
func (ts *TestSim) CurrentTick() int {
	return ts.tick
}

// SimSnapshot captures a lightweight state summary at a tick.
type SimSnapshot struct {
	Tick        int
	Mode        Mode
	Pos         Vec3
	PatrolIndex int
	PathLen     int
	Contacts    int
}

// Snapshot returns the current agent state.
func (ts *TestSim) Snapshot() SimSnapshot {
	snap := SimSnapshot{Tick: ts.tick, Contacts: ts.Contacts}
	if ts.Agent != nil {
		snap.Mode = ts.Agent.CurrentMode()
		snap.Pos = ts.Agent.Position()
		snap.PatrolIndex = ts.Agent.PatrolIndex()
		snap.PathLen = len(ts.Agent.Path())
	}
	return snap
}
