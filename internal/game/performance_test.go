package game

import "testing"

func TestGradeHunt_ScoresAndTraits(t *testing.T) {
	ht := &HuntTracker{
		Label:            "H0",
		Ticks:            7200,
		TicksPatrol:      5000,
		TicksPursue:      1400,
		TicksSearch:      800,
		Pursuits:         4,
		Searches:         4,
		Reacquires:       2,
		SearchesResolved: 2,
		ModeChanges:      10,
		Contacts:         3,
		Alerts:           4,
		DistanceTraveled: 300,
		DistancePursue:   70,
		FirstReactTick:   90,
	}

	g := GradeHunt(ht, 3.5)

	if g.ChaseScore < 0 || g.SearchScore < 0 || g.CoverageScore < 0 {
		t.Fatalf("expected all situation scores graded, got chase=%.0f search=%.0f coverage=%.0f",
			g.ChaseScore, g.SearchScore, g.CoverageScore)
	}
	if g.Score < 60 || g.Score > 100 {
		t.Fatalf("strong run should score well, got %.1f", g.Score)
	}
	wantGood := map[string]bool{"relentless_chaser": true, "picks_up_the_trail": true, "quick_to_react": true}
	for _, tr := range g.GoodTraits {
		delete(wantGood, tr)
	}
	if len(wantGood) != 0 {
		t.Fatalf("missing good traits %v, got %v", wantGood, g.GoodTraits)
	}
	if len(g.BadTraits) != 0 {
		t.Fatalf("unexpected bad traits %v", g.BadTraits)
	}
}

func TestGradeHunt_NeverClosesIsFlagged(t *testing.T) {
	ht := &HuntTracker{
		Label:       "H0",
		Ticks:       7200,
		TicksPursue: 2000,
		Pursuits:    5,
		Contacts:    0,
	}
	g := GradeHunt(ht, 3.5)

	found := false
	for _, tr := range g.BadTraits {
		if tr == "never_closes" {
			found = true
		}
	}
	if !found {
		t.Fatalf("five fruitless pursuits should flag never_closes, got %v", g.BadTraits)
	}
}

func TestGradeHunt_QuietRunFallsBackToCoverage(t *testing.T) {
	ht := &HuntTracker{
		Label:            "H0",
		Ticks:            3600,
		TicksPatrol:      3600,
		DistanceTraveled: 150,
	}
	g := GradeHunt(ht, 3.5)

	if g.ChaseScore >= 0 || g.SearchScore >= 0 {
		t.Fatal("a quiet run has nothing to grade chasing or searching on")
	}
	if g.CoverageScore < 0 {
		t.Fatal("coverage must still be graded on a quiet run")
	}
	if g.Score != g.CoverageScore {
		t.Fatalf("quiet run score should be the coverage score, got %.1f vs %.1f",
			g.Score, g.CoverageScore)
	}
}

func TestHuntTracker_TracksAPursuit(t *testing.T) {
	ts := NewTestSim(
		WithAgent(Vec3{}, Vec3{X: 60}),
		WithStaticIntruder(Vec3{X: 8}),
		WithContactRespawn(Vec3{X: 200, Z: 200}),
	)
	ht := NewHuntTracker(ts.Agent)

	prevContacts := 0
	for i := 0; i < 900; i++ {
		ts.RunTicks(1)
		ht.Update(ts.Agent)
		for ; prevContacts < ts.Contacts; prevContacts++ {
			ht.NoteContact()
		}
	}

	if ht.Pursuits < 1 {
		t.Fatalf("expected a pursuit, got %d", ht.Pursuits)
	}
	if ht.Contacts < 1 {
		t.Fatal("expected the pursuit to end in contact")
	}
	if ht.FirstReactTick < 0 {
		t.Fatal("expected a first-reaction tick")
	}
	if got := ht.TicksPatrol + ht.TicksPursue + ht.TicksSearch; got != ht.Ticks {
		t.Fatalf("mode tick counters must partition the run: %d vs %d", got, ht.Ticks)
	}
	if ht.DistanceTraveled <= 0 {
		t.Fatal("expected distance accumulated")
	}
}
