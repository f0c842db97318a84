package game

import "math"

// Senses evaluates sight and hearing for an agent. Both checks are
// side-effect free; the agent records last-seen positions itself.
type Senses struct {
	SightRange   float64 // max sight distance
	FOV          float64 // radians, total arc width
	EyeHeight    float64 // height of the sight probe origin above the floor
	HearingRange float64 // ground-plane hearing radius
}

// NewSenses creates a Senses from the agent config.
func NewSenses(cfg Config) Senses {
	return Senses{
		SightRange:   cfg.SightRange,
		FOV:          cfg.FOVDegrees * math.Pi / 180.0,
		EyeHeight:    cfg.EyeHeight,
		HearingRange: cfg.HearingRange,
	}
}

// CanSee returns true when the target point is within sight range, inside
// the horizontal vision cone around heading, and not occluded by a wall
// between the observer's eye and the target.
func (s Senses) CanSee(pos Vec3, heading float64, target Vec3, walls []Box) bool {
	if Dist(pos, target) > s.SightRange {
		return false
	}
	if !s.inCone(pos, heading, target) {
		return false
	}
	eye := pos.Add(Vec3{Y: s.EyeHeight})
	return HasLineOfSight(eye, target, walls)
}

// inCone checks the horizontal angle between the observer's heading and
// the direction to the target against half the field of view.
func (s Senses) inCone(pos Vec3, heading float64, target Vec3) bool {
	if HorizDist(pos, target) < 1e-6 {
		// Standing on top of the target counts as seeing it.
		return true
	}
	diff := normalizeAngle(HeadingTo(pos, target) - heading)
	half := s.FOV / 2.0
	return diff >= -half && diff <= half
}

// CanHear returns true when the target is within hearing range on the
// ground plane. Height is ignored: footsteps carry up and down stairwells.
func (s Senses) CanHear(pos, target Vec3) bool {
	return HorizDist(pos, target) <= s.HearingRange
}
