package game

// Intruder is the entity the hunter tracks. In the visual runner the
// player drives it directly; headless runs give it a scripted route.
type Intruder struct {
	pos   Vec3
	speed float64

	route    []Vec3
	routeIdx int
	loop     bool
}

// NewIntruder creates an intruder at pos. With a route it walks the
// waypoints at speed; without one it stands still until moved.
func NewIntruder(pos Vec3, speed float64, loop bool, route ...Vec3) *Intruder {
	return &Intruder{
		pos:   pos,
		speed: speed,
		route: route,
		loop:  loop,
	}
}

// Position returns the intruder's current world position.
func (in *Intruder) Position() Vec3 {
	return in.pos
}

// SetPosition moves the intruder directly. Used by the visual runner's
// keyboard control and by the host on level restart.
func (in *Intruder) SetPosition(p Vec3) {
	in.pos = p
}

// Move translates the intruder by delta, clamped nowhere — walls are the
// hunter's problem, not the ghost-walking player's.
func (in *Intruder) Move(delta Vec3) {
	in.pos = in.pos.Add(delta)
}

// Update advances the intruder along its scripted route. A routeless
// intruder does nothing.
func (in *Intruder) Update(dt float64) {
	if len(in.route) == 0 || in.routeIdx >= len(in.route) {
		return
	}
	wp := in.route[in.routeIdx]
	d := HorizDist(in.pos, wp)
	step := in.speed * dt
	if d <= step {
		in.pos = wp
		in.routeIdx++
		if in.routeIdx >= len(in.route) && in.loop {
			in.routeIdx = 0
		}
		return
	}
	dir := wp.Sub(in.pos)
	dir.Y = 0
	in.pos = in.pos.Add(dir.Scale(step / d))
}
