package game

import "testing"

// dumpLog prints the full SimLog to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, ts *TestSim) {
	t.Helper()
	entries := ts.SimLog.Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

// --- Scenario: Quiet Patrol ---

func TestScenario_QuietPatrol(t *testing.T) {
	t.Log("=== TestScenario_QuietPatrol ===")
	t.Log("--- Setup: 6x5 maze, 4-corner patrol, no intruder ---")

	lab := NewLabyrinth(6, 5, 42)
	ts := NewTestSim(
		WithGraph(lab.Graph),
		WithWalls(lab.Walls),
		WithAgent(lab.CellCenter(0, 0),
			lab.CellCenter(0, 0),
			lab.CellCenter(5, 0),
			lab.CellCenter(5, 4),
			lab.CellCenter(0, 4),
		),
	)

	ts.RunTicks(3600)
	dumpLog(t, ts)

	// Invariant: with no intruder the agent never leaves patrol.
	if n := ts.SimLog.CountCategory("mode", "change"); n != 0 {
		t.Errorf("expected no mode changes on a quiet patrol, got %d", n)
	}
	if ts.Alerts != 0 || ts.Contacts != 0 {
		t.Errorf("quiet patrol produced alerts=%d contacts=%d", ts.Alerts, ts.Contacts)
	}
	// The route must actually be walked: arriving at a waypoint requests a
	// fresh path to the next one.
	if n := ts.SimLog.CountCategory("path", "computed"); n < 2 {
		t.Errorf("expected multiple path computations over a full patrol loop, got %d", n)
	}
}

// --- Scenario: Pursuit, Contact, Search, Resume ---

func TestScenario_PursuitContactSearchCycle(t *testing.T) {
	t.Log("=== TestScenario_PursuitContactSearchCycle ===")
	t.Log("--- Setup: open ground, intruder ahead in plain sight, respawn on contact ---")

	cfg := DefaultConfig()
	cfg.SearchDuration = 1.0 // keep the post-contact sweep short
	ts := NewTestSim(
		WithConfig(cfg),
		WithAgent(Vec3{}, Vec3{X: 60}),
		WithStaticIntruder(Vec3{X: 8}),
		WithContactRespawn(Vec3{X: 200, Z: 200}), // far outside every sense
	)

	contactTick := ts.RunUntil(func(s *TestSim) bool { return s.Contacts >= 1 }, 600)
	if contactTick < 0 {
		dumpLog(t, ts)
		t.Fatal("agent never reached the intruder")
	}
	t.Logf("contact at tick %d", contactTick)

	resumeTick := ts.RunUntil(func(s *TestSim) bool {
		return s.Agent.CurrentMode() == ModePatrol
	}, 600)
	dumpLog(t, ts)
	if resumeTick < 0 {
		t.Fatal("agent never resumed patrol after the search sweep")
	}
	t.Logf("patrol resumed at tick %d", resumeTick)

	if ts.Alerts != 1 {
		t.Errorf("expected exactly one alert for one pursuit, got %d", ts.Alerts)
	}
	for _, want := range []string{"patrol → pursue", "pursue → search", "search → patrol"} {
		if !ts.SimLog.HasEntry("mode", "change", want) {
			t.Errorf("missing mode transition %q", want)
		}
	}
}

// --- Scenario: Heard, Not Seen ---

func TestScenario_HearingTurnsIntoSighting(t *testing.T) {
	t.Log("=== TestScenario_HearingTurnsIntoSighting ===")
	t.Log("--- Setup: intruder directly behind, inside hearing range ---")

	ts := NewTestSim(
		WithAgent(Vec3{}, Vec3{X: 60}),
		WithStaticIntruder(Vec3{X: -4}),
	)

	ts.RunTicks(300)
	dumpLog(t, ts)

	// The noise sends the agent investigating; turning toward the source
	// brings the intruder into the vision cone and escalates to pursuit.
	if !ts.SimLog.HasEntry("mode", "change", "patrol → search") {
		t.Error("expected hearing to trigger the search sweep")
	}
	if !ts.SimLog.HasEntry("mode", "change", "search → pursue") {
		t.Error("expected the sweep to escalate to pursuit on sight")
	}
	if ts.Contacts == 0 {
		t.Error("expected the pursuit to end in contact")
	}
}

// --- Scenario: Occlusion ---

func TestScenario_WallBlocksSight(t *testing.T) {
	t.Log("=== TestScenario_WallBlocksSight ===")
	t.Log("--- Setup: intruder ahead but behind a full-height wall, outside hearing ---")

	post := Vec3{} // single-waypoint route keeps the agent standing guard
	ts := NewTestSim(
		WithWall(NewWall(3.85, -4, 0.3, 8, 3)),
		WithAgent(post, post),
		WithStaticIntruder(Vec3{X: 8}),
	)

	ts.RunTicks(300)
	dumpLog(t, ts)

	if n := ts.SimLog.CountCategory("mode", "change"); n != 0 {
		t.Errorf("occluded intruder must go unnoticed, got %d mode changes", n)
	}
	if ts.Alerts != 0 {
		t.Errorf("expected no alerts through the wall, got %d", ts.Alerts)
	}

	// Same layout without the wall: the intruder is spotted immediately.
	open := NewTestSim(
		WithAgent(post, post),
		WithStaticIntruder(Vec3{X: 8}),
	)
	spotted := open.RunUntil(func(s *TestSim) bool { return s.Alerts >= 1 }, 60)
	if spotted < 0 {
		t.Error("without the wall the intruder should be spotted within a second")
	}
}

// --- Scenario: Labyrinth Hunt ---

func TestScenario_LabyrinthHunt(t *testing.T) {
	t.Log("=== TestScenario_LabyrinthHunt ===")
	t.Log("--- Setup: 10x8 maze, corner patrol, intruder looping the south row ---")

	lab := NewLabyrinth(10, 8, 42)
	spawn := lab.CellCenter(5, 6)
	ts := NewTestSim(
		WithGraph(lab.Graph),
		WithWalls(lab.Walls),
		WithAgent(lab.CellCenter(1, 1),
			lab.CellCenter(1, 1),
			lab.CellCenter(8, 1),
			lab.CellCenter(8, 6),
			lab.CellCenter(1, 6),
		),
		WithIntruder(spawn, 2.0,
			lab.CellCenter(2, 6),
			lab.CellCenter(8, 6),
		),
		WithContactRespawn(spawn),
	)

	// Hearing carries through walls, and the intruder's loop crosses two
	// patrol waypoints, so the hunter reacts sooner or later.
	reacted := ts.RunUntil(func(s *TestSim) bool {
		return s.SimLog.CountCategory("mode", "change") > 0
	}, 10800)
	ts.RunTicks(1200)

	t.Logf("first reaction tick: %d", reacted)
	t.Logf("mode changes: %d", ts.SimLog.CountCategory("mode", "change"))
	t.Logf("paths computed: %d", ts.SimLog.CountCategory("path", "computed"))
	t.Logf("alerts: %d, contacts: %d", ts.Alerts, ts.Contacts)

	if reacted < 0 {
		dumpLog(t, ts)
		t.Fatal("hunter never noticed the intruder over the whole run")
	}
	if ts.SimLog.CountCategory("path", "computed") == 0 {
		t.Error("expected graph paths while hunting in a maze")
	}
}
