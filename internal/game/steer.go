package game

import "math"

// tickSteering converts the current path or raw destination into one
// near-term steering target, then moves the agent toward it: desired
// velocity at max speed, heading rotated at a capped angular rate, and
// exponential velocity decay once inside stopping distance.
func (a *Agent) tickSteering(dt float64) {
	if !a.hasDestination {
		a.decayVelocity(dt)
		a.integrate(dt)
		return
	}

	// The path has done its job once the agent is close to the
	// destination; drop it and steer straight in.
	if a.path != nil && HorizDist(a.pos, a.destination) <= a.cfg.LeavePathDistance {
		a.dropPath()
	}

	a.steerTarget = a.selectSteerTarget()

	if HorizDist(a.pos, a.steerTarget) > a.cfg.StoppingDistance {
		dir := a.steerTarget.Sub(a.pos)
		dir.Y = 0
		length := dir.Len()
		if length > 1e-9 {
			dir = dir.Scale(1 / length)
			a.vel = dir.Scale(a.cfg.MaxSpeed)
			a.heading = rotateToward(a.heading, HeadingTo(a.pos, a.steerTarget), a.cfg.TurnRate*dt)
		}
	} else {
		a.decayVelocity(dt)
	}

	a.integrate(dt)
}

// selectSteerTarget picks the near-term point to move toward: the node
// after the closest path node (so progress keeps rolling forward without
// exact arrival at each node), the closest node itself when it is the
// last, or the raw destination when no path is held.
func (a *Agent) selectSteerTarget() Vec3 {
	if len(a.path) == 0 {
		return a.destination
	}
	ci := 0
	bestDist := HorizDist(a.pos, a.path[0].Pos)
	for i, n := range a.path[1:] {
		if d := HorizDist(a.pos, n.Pos); d < bestDist {
			ci = i + 1
			bestDist = d
		}
	}
	if ci+1 < len(a.path) {
		return a.path[ci+1].Pos
	}
	return a.path[ci].Pos
}

// decayVelocity damps the velocity exponentially instead of stopping dead.
func (a *Agent) decayVelocity(dt float64) {
	a.vel = a.vel.Scale(math.Exp(-a.cfg.Damping * dt))
}

// integrate applies the velocity for this tick.
func (a *Agent) integrate(dt float64) {
	a.pos = a.pos.Add(a.vel.Scale(dt))
}
