package game

import (
	"math"
	"testing"
)

func testSenses() Senses {
	return NewSenses(DefaultConfig())
}

func TestCanSee_DirectlyAhead(t *testing.T) {
	s := testSenses()
	if !s.CanSee(Vec3{}, 0, Vec3{X: 5}, nil) {
		t.Fatal("target directly ahead in open ground should be seen")
	}
}

func TestCanSee_BeyondRange(t *testing.T) {
	s := testSenses()
	if s.CanSee(Vec3{}, 0, Vec3{X: s.SightRange + 1}, nil) {
		t.Fatal("target past sight range should not be seen")
	}
}

func TestCanSee_BehindObserver(t *testing.T) {
	s := testSenses()
	if s.CanSee(Vec3{}, 0, Vec3{X: -5}, nil) {
		t.Fatal("target directly behind should not be seen")
	}
}

func TestCanSee_FOVEdge(t *testing.T) {
	s := testSenses()
	half := s.FOV / 2

	inside := Vec3{X: math.Cos(half-0.01) * 5, Z: math.Sin(half-0.01) * 5}
	if !s.CanSee(Vec3{}, 0, inside, nil) {
		t.Fatal("target just inside the FOV edge should be seen")
	}
	outside := Vec3{X: math.Cos(half+0.01) * 5, Z: math.Sin(half+0.01) * 5}
	if s.CanSee(Vec3{}, 0, outside, nil) {
		t.Fatal("target just outside the FOV edge should not be seen")
	}
}

func TestCanSee_OccludedByWall(t *testing.T) {
	s := testSenses()
	walls := []Box{NewWall(2, -3, 0.3, 6, 3)}
	if s.CanSee(Vec3{}, 0, Vec3{X: 5}, walls) {
		t.Fatal("wall between observer and target should block sight")
	}
}

func TestCanSee_ProbeClearsLowWall(t *testing.T) {
	// The sight probe leaves from eye height; a knee-high wall under the
	// sight line does not occlude a target point at eye level.
	s := testSenses()
	walls := []Box{NewWall(2, -3, 0.3, 6, 0.4)}
	if !s.CanSee(Vec3{}, 0, Vec3{X: 5, Y: s.EyeHeight}, walls) {
		t.Fatal("low wall under the probe should not block sight")
	}
}

func TestCanHear_GroundPlaneOnly(t *testing.T) {
	s := testSenses()
	// 3D distance is huge but the ground-plane distance is 3.
	target := Vec3{X: 3, Y: 50}
	if !s.CanHear(Vec3{}, target) {
		t.Fatal("hearing must ignore height")
	}
}

func TestCanHear_BeyondRange(t *testing.T) {
	s := testSenses()
	if s.CanHear(Vec3{}, Vec3{X: s.HearingRange + 0.1}) {
		t.Fatal("target past hearing range should not be heard")
	}
}

func TestCanHear_IgnoresFacing(t *testing.T) {
	s := testSenses()
	if !s.CanHear(Vec3{}, Vec3{X: -3}) {
		t.Fatal("hearing has no direction; target behind should be heard")
	}
}
