package game

import "math"

// Vec3 is a world-space point or direction. Y is up; the labyrinth floor
// lies on the XZ plane.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Len returns the full 3D length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dist returns the full 3D distance between a and b.
func Dist(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// HorizDist returns the ground-plane (XZ) distance between a and b.
// Height is ignored.
func HorizDist(a, b Vec3) float64 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// HeadingTo returns the ground-plane angle in radians from a toward b.
// 0 = +X, pi/2 = +Z.
func HeadingTo(a, b Vec3) float64 {
	return math.Atan2(b.Z-a.Z, b.X-a.X)
}

// HeadingDir returns the unit ground-plane direction for a heading angle.
func HeadingDir(h float64) Vec3 {
	return Vec3{X: math.Cos(h), Z: math.Sin(h)}
}

// normalizeAngle wraps an angle to [-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// rotateToward steps the heading cur toward target by at most maxStep
// radians, taking the shorter way around.
func rotateToward(cur, target, maxStep float64) float64 {
	diff := normalizeAngle(target - cur)
	if math.Abs(diff) <= maxStep {
		return target
	}
	if diff > 0 {
		return normalizeAngle(cur + maxStep)
	}
	return normalizeAngle(cur - maxStep)
}
