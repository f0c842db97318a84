package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Ksunday76/GDD-3400-TheLabyrinth/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	firstPursueTick int
	firstSearchTick int
	firstReturnTick int
	firstContact    int

	modeChanges   int
	pathsComputed int
	alerts        int
	contacts      int

	grade game.HuntGrade
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 7200, "ticks per run (60 = 1s)")
	flag.Int64Var(&seedBase, "seed-base", 42, "maze seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "labyrinth-hunt", "scenario name")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if scenario != "labyrinth-hunt" {
		fmt.Printf("error: unsupported scenario %q (supported: labyrinth-hunt)\n", scenario)
		return
	}

	fmt.Printf("=== Headless Hunt Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", scenario, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runScenarioLabyrinthHunt(i+1, seed, ticks)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runScenarioLabyrinthHunt puts a patrolling hunter and a looping intruder
// into the same seeded maze and counts what happens.
func runScenarioLabyrinthHunt(runIndex int, seed int64, ticks int) runStats {
	lab := game.NewLabyrinth(12, 8, seed)
	patrol := []game.Vec3{
		lab.CellCenter(2, 2),
		lab.CellCenter(9, 2),
		lab.CellCenter(9, 5),
		lab.CellCenter(2, 5),
	}
	route := []game.Vec3{
		lab.CellCenter(5, 1),
		lab.CellCenter(6, 6),
		lab.CellCenter(1, 4),
		lab.CellCenter(10, 3),
	}
	spawn := lab.CellCenter(6, 4)

	ts := game.NewTestSim(
		game.WithGraph(lab.Graph),
		game.WithWalls(lab.Walls),
		game.WithAgent(patrol[0], patrol...),
		game.WithIntruder(spawn, 2.2, route...),
		game.WithContactRespawn(spawn),
	)

	tracker := game.NewHuntTracker(ts.Agent)
	prevContacts, prevAlerts := 0, 0
	for t := 0; t < ticks; t++ {
		ts.RunTicks(1)
		tracker.Update(ts.Agent)
		for ; prevContacts < ts.Contacts; prevContacts++ {
			tracker.NoteContact()
		}
		for ; prevAlerts < ts.Alerts; prevAlerts++ {
			tracker.NoteAlert()
		}
	}

	return runStats{
		runIndex:        runIndex,
		seed:            seed,
		firstPursueTick: firstTick(ts.SimLog.Entries(), "mode", "change", "→ pursue"),
		firstSearchTick: firstTick(ts.SimLog.Entries(), "mode", "change", "→ search"),
		firstReturnTick: firstTick(ts.SimLog.Entries(), "mode", "change", "→ patrol"),
		firstContact:    firstTick(ts.SimLog.Entries(), "contact", "intruder", ""),
		modeChanges:     ts.SimLog.CountCategory("mode", "change"),
		pathsComputed:   ts.SimLog.CountCategory("path", "computed"),
		alerts:          ts.Alerts,
		contacts:        ts.Contacts,
		grade:           game.GradeHunt(tracker, game.DefaultConfig().MaxSpeed),
	}
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("phase_markers: first_pursue=%d first_search=%d first_return=%d first_contact=%d\n",
		rs.firstPursueTick, rs.firstSearchTick, rs.firstReturnTick, rs.firstContact)
	fmt.Printf("event_totals: mode_changes=%d paths_computed=%d alerts=%d contacts=%d\n",
		rs.modeChanges, rs.pathsComputed, rs.alerts, rs.contacts)
	fmt.Print(game.FormatHuntGrade(rs.grade))
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalModes := 0
	totalPaths := 0
	totalAlerts := 0
	totalContacts := 0
	scoreSum := 0.0
	pursueTicks := make([]int, 0, len(all))

	for _, rs := range all {
		totalModes += rs.modeChanges
		totalPaths += rs.pathsComputed
		totalAlerts += rs.alerts
		totalContacts += rs.contacts
		scoreSum += rs.grade.Score
		if rs.firstPursueTick >= 0 {
			pursueTicks = append(pursueTicks, rs.firstPursueTick)
		}
	}

	fmt.Printf("=== Aggregate over %d runs ===\n", len(all))
	fmt.Printf("totals: mode_changes=%d paths_computed=%d alerts=%d contacts=%d\n",
		totalModes, totalPaths, totalAlerts, totalContacts)
	if len(all) > 0 {
		fmt.Printf("mean_hunt_score: %.1f\n", scoreSum/float64(len(all)))
	}
	if len(pursueTicks) > 0 {
		lo, hi, sum := pursueTicks[0], pursueTicks[0], 0
		for _, t := range pursueTicks {
			if t < lo {
				lo = t
			}
			if t > hi {
				hi = t
			}
			sum += t
		}
		fmt.Printf("first_pursue_tick: min=%d mean=%.0f max=%d (%d/%d runs had a pursuit)\n",
			lo, float64(sum)/float64(len(pursueTicks)), hi, len(pursueTicks), len(all))
	} else {
		fmt.Println("first_pursue_tick: no run produced a pursuit")
	}
}
