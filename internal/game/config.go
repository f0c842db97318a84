package game

// Config holds all agent tunables. Distances are in world units (one unit
// is roughly one metre), times in seconds, angles in degrees unless noted.
type Config struct {
	// Perception.
	SightRange   float64
	FOVDegrees   float64
	EyeHeight    float64
	HearingRange float64

	// Movement.
	MaxSpeed         float64
	TurnRate         float64 // radians per second
	StoppingDistance float64 // target counts as reached inside this
	Damping          float64 // exponential velocity decay rate when arrived

	// Navigation policy.
	LeavePathDistance float64 // drop the path this close to the destination
	MinPathDistance   float64 // skip the graph search for hops shorter than this

	// Behaviour timers.
	PursueRepathInterval float64 // replan cadence while tracking the intruder
	SearchRepathInterval float64 // replan cadence while sweeping last-known
	SearchDuration       float64 // how long a full search lasts

	// Stuck recovery.
	StuckCheckInterval float64
	StuckEpsilon       float64 // displacement below this counts as stalled

	// Contact.
	ContactRadius float64 // collision volume overlap with the intruder

	// Patrol route wraps back to the first waypoint when true, otherwise
	// the agent holds at the last one.
	PatrolLoop bool
}

// DefaultConfig returns the baseline hunter tuning.
func DefaultConfig() Config {
	return Config{
		SightRange:   12.0,
		FOVDegrees:   110.0,
		EyeHeight:    1.6,
		HearingRange: 6.0,

		MaxSpeed:         3.5,
		TurnRate:         4.0,
		StoppingDistance: 0.5,
		Damping:          8.0,

		LeavePathDistance: 1.5,
		MinPathDistance:   2.0,

		PursueRepathInterval: 0.5,
		SearchRepathInterval: 2.0,
		SearchDuration:       10.0,

		StuckCheckInterval: 1.5,
		StuckEpsilon:       0.05,

		ContactRadius: 0.75,

		PatrolLoop: true,
	}
}
