package game

import (
	"math"
	"testing"
)

func TestSelectSteerTarget_NextAfterClosest(t *testing.T) {
	g, _, b, c := lineGraph()
	a := NewAgent("H0", Vec3{X: 4.8}, DefaultConfig(), g, nil, nil, nil, nil)
	a.path = []*Node{g.Node(0), b, c}
	a.hasDestination = true
	a.destination = c.Pos

	st := a.selectSteerTarget()
	if st != c.Pos {
		t.Fatalf("closest node is B, steering target must be the next node C, got %+v", st)
	}
}

func TestSelectSteerTarget_LastNodeTargetsItself(t *testing.T) {
	g, _, _, c := lineGraph()
	a := NewAgent("H0", Vec3{X: 9.9}, DefaultConfig(), g, nil, nil, nil, nil)
	a.path = []*Node{g.Node(0), g.Node(1), c}
	a.hasDestination = true
	a.destination = c.Pos

	if st := a.selectSteerTarget(); st != c.Pos {
		t.Fatalf("at the last node the target is the node itself, got %+v", st)
	}
}

func TestSelectSteerTarget_NoPathUsesDestination(t *testing.T) {
	a := newTestAgent(DefaultConfig())
	a.hasDestination = true
	a.destination = Vec3{X: 7}
	if st := a.selectSteerTarget(); st != a.destination {
		t.Fatalf("without a path the raw destination steers, got %+v", st)
	}
}

func TestSteering_LeavePathDropsNearDestination(t *testing.T) {
	g, _, _, c := lineGraph()
	cfg := DefaultConfig()
	a := NewAgent("H0", Vec3{X: 9}, cfg, g, nil, nil, nil, nil)
	a.path = []*Node{g.Node(1), c}
	a.hasDestination = true
	a.destination = Vec3{X: 10}

	a.tickSteering(simTickDT)

	if a.Path() != nil {
		t.Fatal("within leave-path distance the path must be dropped")
	}
	if a.SteerTarget() != a.destination {
		t.Fatal("after dropping the path, steering goes straight at the destination")
	}
}

func TestSteering_MovesTowardTargetAtMaxSpeed(t *testing.T) {
	a := newTestAgent(DefaultConfig())
	a.hasDestination = true
	a.destination = Vec3{X: 10}

	a.tickSteering(simTickDT)

	if a.Velocity().Len() < a.cfg.MaxSpeed-1e-9 {
		t.Fatalf("expected full-speed velocity, got %.2f", a.Velocity().Len())
	}
	if a.Position().X <= 0 {
		t.Fatal("agent should have advanced toward +X")
	}
}

func TestSteering_DampsVelocityInsideStoppingDistance(t *testing.T) {
	a := newTestAgent(DefaultConfig())
	a.hasDestination = true
	a.destination = Vec3{X: 0.1} // already arrived
	a.vel = Vec3{X: 3.5}

	before := a.vel.Len()
	a.tickSteering(simTickDT)
	after := a.Velocity().Len()

	if after >= before {
		t.Fatalf("velocity must decay inside stopping distance: %.3f → %.3f", before, after)
	}
	if after == 0 {
		t.Fatal("decay is exponential, not an instant stop")
	}
}

func TestSteering_HeadingTurnRateCapped(t *testing.T) {
	cfg := DefaultConfig()
	a := newTestAgent(cfg)
	a.heading = 0
	a.hasDestination = true
	a.destination = Vec3{X: -10} // directly behind

	a.tickSteering(simTickDT)

	maxStep := cfg.TurnRate * simTickDT
	if math.Abs(normalizeAngle(a.Heading())) > maxStep+1e-9 {
		t.Fatalf("heading turned more than the capped rate: %.4f > %.4f",
			math.Abs(a.Heading()), maxStep)
	}
}

func TestRotateToward_SnapsWhenClose(t *testing.T) {
	if got := rotateToward(0, 0.05, 0.1); got != 0.05 {
		t.Fatalf("small diff should snap to the target, got %.4f", got)
	}
}

func TestRotateToward_ShorterWayAround(t *testing.T) {
	// From just below +pi toward just above -pi: the short way crosses
	// the wrap boundary.
	got := rotateToward(3.0, -3.0, 0.1)
	if got < 3.0 && got > -3.0 {
		t.Fatalf("expected rotation across the ±pi boundary, got %.4f", got)
	}
}
