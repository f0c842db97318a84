package game

import (
	"fmt"
	"math"
	"strings"
)

// Performance grading thresholds.
const (
	perfMinChaseTicks  = 30
	perfMinSearchTicks = 30
	perfMinRunTicks    = 120
)

// HuntTracker accumulates per-tick performance metrics for one hunter over
// one headless run. Feed it the agent after every tick, raise the event
// notes from the harness callbacks, and call Finalize when the run ends.
type HuntTracker struct {
	Label string

	// Lifecycle.
	Ticks int

	// Mode time (ticks).
	TicksPatrol int
	TicksPursue int
	TicksSearch int

	// Transitions.
	Pursuits         int // entries into pursue
	Searches         int // entries into search
	Reacquires       int // search → pursue (picked the trail back up)
	SearchesResolved int // search → patrol (area cleared)
	ModeChanges      int

	// Events, raised by the host.
	Contacts int
	Alerts   int

	// Aggregates.
	DistanceTraveled float64
	DistancePursue   float64
	FirstReactTick   int // first tick off patrol; -1 if never

	// Internal — change detection.
	prevMode Mode
	prevPos  Vec3
	seeded   bool
}

// NewHuntTracker creates a tracker for the given hunter.
func NewHuntTracker(a *Agent) *HuntTracker {
	return &HuntTracker{
		Label:          a.Label(),
		FirstReactTick: -1,
		prevMode:       a.CurrentMode(),
		prevPos:        a.Position(),
		seeded:         true,
	}
}

// NoteContact records one contact-volume overlap event.
func (ht *HuntTracker) NoteContact() { ht.Contacts++ }

// NoteAlert records one alert cue.
func (ht *HuntTracker) NoteAlert() { ht.Alerts++ }

// Update accumulates one tick of data from the hunter's current state.
func (ht *HuntTracker) Update(a *Agent) {
	if !ht.seeded {
		ht.prevMode = a.CurrentMode()
		ht.prevPos = a.Position()
		ht.seeded = true
	}
	ht.Ticks++

	dist := HorizDist(a.Position(), ht.prevPos)
	ht.DistanceTraveled += dist
	ht.prevPos = a.Position()

	mode := a.CurrentMode()
	switch mode {
	case ModePatrol:
		ht.TicksPatrol++
	case ModePursue:
		ht.TicksPursue++
		ht.DistancePursue += dist
	case ModeSearch:
		ht.TicksSearch++
	}

	if mode != ht.prevMode {
		ht.ModeChanges++
		if ht.FirstReactTick < 0 && mode != ModePatrol {
			ht.FirstReactTick = ht.Ticks
		}
		switch {
		case mode == ModePursue:
			ht.Pursuits++
			if ht.prevMode == ModeSearch {
				ht.Reacquires++
			}
		case mode == ModeSearch:
			ht.Searches++
		case mode == ModePatrol && ht.prevMode == ModeSearch:
			ht.SearchesResolved++
		}
		ht.prevMode = mode
	}
}

// HuntGrade is the computed performance grade for one hunter run.
type HuntGrade struct {
	Label string
	Grade string  // A+, A, B+, B, C+, C, D, F
	Score float64 // 0-100

	// Situation scores (0-100; -1 = not enough data to grade).
	ChaseScore    float64
	SearchScore   float64
	CoverageScore float64

	// Observed traits.
	GoodTraits []string
	BadTraits  []string

	// Key stats.
	Contacts       int
	Pursuits       int
	HuntTimePct    float64
	FirstReactTick int
}

// GradeHunt computes a grade from the accumulated tracker data. maxSpeed is
// the hunter's configured top speed, used to normalise distance metrics.
func GradeHunt(ht *HuntTracker, maxSpeed float64) HuntGrade {
	g := HuntGrade{
		Label:          ht.Label,
		Contacts:       ht.Contacts,
		Pursuits:       ht.Pursuits,
		FirstReactTick: ht.FirstReactTick,
		ChaseScore:     -1,
		SearchScore:    -1,
		CoverageScore:  -1,
	}
	if ht.Ticks > 0 {
		g.HuntTimePct = float64(ht.TicksPursue+ht.TicksSearch) / float64(ht.Ticks) * 100
	}

	// --- Chase: how well pursuits convert into contact ---
	if ht.TicksPursue >= perfMinChaseTicks && ht.Pursuits > 0 {
		s := 40.0
		s += 40.0 * perfFrac(ht.Contacts, ht.Pursuits)
		// Closing speed: full marks when pursuing at top speed.
		pursueSecs := float64(ht.TicksPursue) * simTickDT
		if maxSpeed > 0 && pursueSecs > 0 {
			s += 20.0 * math.Min(1, ht.DistancePursue/(maxSpeed*pursueSecs))
		}
		g.ChaseScore = perfClamp(s)
	}

	// --- Search: how sweeps end — reacquired trail or area cleared ---
	if ht.TicksSearch >= perfMinSearchTicks && ht.Searches > 0 {
		s := 40.0
		s += 35.0 * perfFrac(ht.Reacquires, ht.Searches)
		s += 25.0 * perfFrac(ht.Reacquires+ht.SearchesResolved, ht.Searches)
		g.SearchScore = perfClamp(s)
	}

	// --- Coverage: ground covered while patrolling ---
	if ht.Ticks >= perfMinRunTicks && maxSpeed > 0 {
		secs := float64(ht.Ticks) * simTickDT
		g.CoverageScore = perfClamp(100.0 * ht.DistanceTraveled / (maxSpeed * secs))
	}

	// --- Overall weighted average ---
	type scoredWeight struct {
		score  float64
		weight float64
	}
	var items []scoredWeight
	if g.ChaseScore >= 0 {
		items = append(items, scoredWeight{g.ChaseScore, 0.45})
	}
	if g.SearchScore >= 0 {
		items = append(items, scoredWeight{g.SearchScore, 0.30})
	}
	if g.CoverageScore >= 0 {
		items = append(items, scoredWeight{g.CoverageScore, 0.25})
	}

	if len(items) > 0 {
		totalW := 0.0
		totalS := 0.0
		for _, it := range items {
			totalW += it.weight
			totalS += it.score * it.weight
		}
		g.Score = totalS / totalW
	} else {
		// Too quiet a run to grade hunting; score the legwork alone.
		g.Score = 50.0
		if g.CoverageScore >= 0 {
			g.Score = g.CoverageScore
		}
	}
	if ht.Contacts > 0 {
		g.Score = math.Min(100, g.Score+5)
	}

	g.Grade = perfLetterGrade(g.Score)
	g.GoodTraits, g.BadTraits = perfDetectTraits(ht)
	return g
}

// perfDetectTraits names notable behaviours observed during the run.
func perfDetectTraits(ht *HuntTracker) (good, bad []string) {
	if ht.Pursuits > 0 && perfFrac(ht.Contacts, ht.Pursuits) >= 0.5 {
		good = append(good, "relentless_chaser")
	}
	if ht.Searches > 0 && perfFrac(ht.Reacquires, ht.Searches) >= 0.4 {
		good = append(good, "picks_up_the_trail")
	}
	if ht.FirstReactTick >= 0 && ht.FirstReactTick < 120 {
		good = append(good, "quick_to_react")
	}
	if ht.Searches > 0 && ht.SearchesResolved == ht.Searches && ht.Reacquires == 0 {
		bad = append(bad, "lost_the_trail")
	}
	if ht.Pursuits >= 3 && ht.Contacts == 0 {
		bad = append(bad, "never_closes")
	}
	if ht.Ticks >= perfMinRunTicks {
		changesPerMin := float64(ht.ModeChanges) / (float64(ht.Ticks) * simTickDT / 60.0)
		if changesPerMin > 20 {
			bad = append(bad, "twitchy")
		}
	}
	return
}

// FormatHuntGrade returns a human-readable performance block.
func FormatHuntGrade(g HuntGrade) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  %-3s %-4s  score=%.1f  hunt_time=%.0f%%  contacts=%d/%d pursuits\n",
		g.Grade, g.Label, g.Score, g.HuntTimePct, g.Contacts, g.Pursuits)

	var scores []string
	if g.ChaseScore >= 0 {
		scores = append(scores, fmt.Sprintf("Chase=%.0f", g.ChaseScore))
	}
	if g.SearchScore >= 0 {
		scores = append(scores, fmt.Sprintf("Search=%.0f", g.SearchScore))
	}
	if g.CoverageScore >= 0 {
		scores = append(scores, fmt.Sprintf("Coverage=%.0f", g.CoverageScore))
	}
	if len(scores) > 0 {
		fmt.Fprintf(&sb, "       Scores: %s\n", strings.Join(scores, "  "))
	}
	if len(g.GoodTraits) > 0 {
		fmt.Fprintf(&sb, "       Good: %s\n", strings.Join(g.GoodTraits, ", "))
	}
	if len(g.BadTraits) > 0 {
		fmt.Fprintf(&sb, "       Bad:  %s\n", strings.Join(g.BadTraits, ", "))
	}
	return sb.String()
}

func perfFrac(num, denom int) float64 {
	if denom <= 0 {
		return 0
	}
	return float64(num) / float64(denom)
}

func perfClamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// perfLetterGrade maps a 0-100 score to a letter grade.
func perfLetterGrade(score float64) string {
	switch {
	case score >= 93:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 78:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 62:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "F"
	}
}
