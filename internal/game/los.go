package game

import "math"

// Box is an axis-aligned occluder, typically a labyrinth wall segment.
type Box struct {
	Min, Max Vec3
}

// NewWall builds a wall box on the floor plane from a ground-plane
// rectangle and a height.
func NewWall(x, z, w, d, h float64) Box {
	return Box{
		Min: Vec3{X: x, Y: 0, Z: z},
		Max: Vec3{X: x + w, Y: h, Z: z + d},
	}
}

// HasLineOfSight returns true if the straight segment from a to b is not
// intercepted by any wall box. Uses slab tests per axis.
func HasLineOfSight(a, b Vec3, walls []Box) bool {
	for _, w := range walls {
		if segmentHitsBox(a, b, w) {
			return false
		}
	}
	return true
}

// segmentHitsBox reports whether the segment a→b passes through box.
func segmentHitsBox(a, b Vec3, box Box) bool {
	_, hit := segmentBoxHitT(a, b, box)
	return hit
}

// segmentBoxHitT returns the first segment parameter t in [0,1] where the
// segment a→b enters the box. The bool is false when no hit exists.
func segmentBoxHitT(a, b Vec3, box Box) (float64, bool) {
	tMin := 0.0
	tMax := 1.0

	axes := [3][4]float64{
		{a.X, b.X - a.X, box.Min.X, box.Max.X},
		{a.Y, b.Y - a.Y, box.Min.Y, box.Max.Y},
		{a.Z, b.Z - a.Z, box.Min.Z, box.Max.Z},
	}
	for _, ax := range axes {
		origin, delta, lo, hi := ax[0], ax[1], ax[2], ax[3]
		if math.Abs(delta) < 1e-12 {
			if origin < lo || origin > hi {
				return 0, false
			}
			continue
		}
		invD := 1.0 / delta
		t1 := (lo - origin) * invD
		t2 := (hi - origin) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 || tMin > 1 {
		return 0, false
	}
	if tMin < 0 {
		tMin = 0
	}
	return tMin, true
}
