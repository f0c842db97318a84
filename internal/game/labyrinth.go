package game

import "math/rand"

// labyrinthConfig holds tuneable parameters for labyrinth generation.
type labyrinthConfig struct {
	CellSize    float64 // world units per maze cell
	WallHeight  float64
	WallThick   float64
	BraidChance float64 // probability of knocking an extra hole in a dead end
	RoughChance float64 // probability a corridor is rough going (higher edge cost)
	RoughFactor float64 // cost multiplier for rough corridors
}

var defaultLabyrinthConfig = labyrinthConfig{
	CellSize:    4.0,
	WallHeight:  3.0,
	WallThick:   0.3,
	BraidChance: 0.2,
	RoughChance: 0.15,
	RoughFactor: 2.5,
}

// Labyrinth is a generated maze: wall boxes for movement/LOS occlusion and
// a waypoint graph with one node per cell. Edge costs are the centre-to-
// centre distance, scaled up for rough corridors, so they never drop below
// the straight-line distance and the A* heuristic stays admissible.
type Labyrinth struct {
	Cols, Rows int
	CellSize   float64
	Walls      []Box
	Graph      *Graph

	// open[dir][cell] records carved passages; kept for tests.
	openEast  []bool
	openSouth []bool
}

// NewLabyrinth generates a cols×rows maze with the default parameters.
// The same seed always yields the same maze.
func NewLabyrinth(cols, rows int, seed int64) *Labyrinth {
	return generateLabyrinth(cols, rows, rand.New(rand.NewSource(seed)), defaultLabyrinthConfig) // #nosec G404 -- world gen
}

// generateLabyrinth carves a perfect maze with an iterative backtracker,
// braids a few dead ends open, then emits walls and the waypoint graph.
func generateLabyrinth(cols, rows int, rng *rand.Rand, cfg labyrinthConfig) *Labyrinth {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	lab := &Labyrinth{
		Cols:      cols,
		Rows:      rows,
		CellSize:  cfg.CellSize,
		openEast:  make([]bool, cols*rows),
		openSouth: make([]bool, cols*rows),
	}

	lab.carve(rng)
	lab.braid(rng, cfg.BraidChance)
	lab.buildWalls(cfg)
	lab.buildGraph(rng, cfg)
	return lab
}

// carve runs an iterative backtracker over the cell grid.
func (lab *Labyrinth) carve(rng *rand.Rand) {
	visited := make([]bool, lab.Cols*lab.Rows)
	stack := []int{0}
	visited[0] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		cx, cy := cur%lab.Cols, cur/lab.Cols

		// Unvisited neighbours in random order.
		type move struct{ dx, dy int }
		moves := []move{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
		rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

		carved := false
		for _, m := range moves {
			nx, ny := cx+m.dx, cy+m.dy
			if nx < 0 || ny < 0 || nx >= lab.Cols || ny >= lab.Rows {
				continue
			}
			ni := ny*lab.Cols + nx
			if visited[ni] {
				continue
			}
			lab.openPassage(cx, cy, m.dx, m.dy)
			visited[ni] = true
			stack = append(stack, ni)
			carved = true
			break
		}
		if !carved {
			stack = stack[:len(stack)-1]
		}
	}
}

// braid knocks extra holes into some dead ends so the maze has loops;
// loops give the pathfinder genuinely different routes to weigh.
func (lab *Labyrinth) braid(rng *rand.Rand, chance float64) {
	for cy := 0; cy < lab.Rows; cy++ {
		for cx := 0; cx < lab.Cols; cx++ {
			if lab.passageCount(cx, cy) != 1 || rng.Float64() >= chance {
				continue
			}
			// Open toward a random closed in-bounds neighbour.
			type move struct{ dx, dy int }
			moves := []move{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
			rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })
			for _, m := range moves {
				nx, ny := cx+m.dx, cy+m.dy
				if nx < 0 || ny < 0 || nx >= lab.Cols || ny >= lab.Rows {
					continue
				}
				if !lab.isOpen(cx, cy, m.dx, m.dy) {
					lab.openPassage(cx, cy, m.dx, m.dy)
					break
				}
			}
		}
	}
}

func (lab *Labyrinth) idx(cx, cy int) int { return cy*lab.Cols + cx }

// openPassage records a carved passage from (cx,cy) in direction (dx,dy).
func (lab *Labyrinth) openPassage(cx, cy, dx, dy int) {
	switch {
	case dx == 1:
		lab.openEast[lab.idx(cx, cy)] = true
	case dx == -1:
		lab.openEast[lab.idx(cx-1, cy)] = true
	case dy == 1:
		lab.openSouth[lab.idx(cx, cy)] = true
	case dy == -1:
		lab.openSouth[lab.idx(cx, cy-1)] = true
	}
}

// isOpen reports whether the passage from (cx,cy) toward (dx,dy) is carved.
func (lab *Labyrinth) isOpen(cx, cy, dx, dy int) bool {
	switch {
	case dx == 1:
		return lab.openEast[lab.idx(cx, cy)]
	case dx == -1:
		return cx > 0 && lab.openEast[lab.idx(cx-1, cy)]
	case dy == 1:
		return lab.openSouth[lab.idx(cx, cy)]
	case dy == -1:
		return cy > 0 && lab.openSouth[lab.idx(cx, cy-1)]
	}
	return false
}

// passageCount returns how many passages leave cell (cx,cy).
func (lab *Labyrinth) passageCount(cx, cy int) int {
	n := 0
	for _, m := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		nx, ny := cx+m[0], cy+m[1]
		if nx < 0 || ny < 0 || nx >= lab.Cols || ny >= lab.Rows {
			continue
		}
		if lab.isOpen(cx, cy, m[0], m[1]) {
			n++
		}
	}
	return n
}

// buildWalls emits the outer boundary plus one wall box per closed
// interior passage.
func (lab *Labyrinth) buildWalls(cfg labyrinthConfig) {
	cs := cfg.CellSize
	t := cfg.WallThick
	h := cfg.WallHeight
	w := float64(lab.Cols) * cs
	d := float64(lab.Rows) * cs

	// Boundary.
	lab.Walls = append(lab.Walls,
		NewWall(-t, -t, w+2*t, t, h),  // north
		NewWall(-t, d, w+2*t, t, h),   // south
		NewWall(-t, 0, t, d, h),       // west
		NewWall(w, 0, t, d, h),        // east
	)

	// Interior walls sit centred on cell borders.
	for cy := 0; cy < lab.Rows; cy++ {
		for cx := 0; cx < lab.Cols; cx++ {
			if cx+1 < lab.Cols && !lab.isOpen(cx, cy, 1, 0) {
				x := float64(cx+1) * cs
				lab.Walls = append(lab.Walls, NewWall(x-t/2, float64(cy)*cs, t, cs, h))
			}
			if cy+1 < lab.Rows && !lab.isOpen(cx, cy, 0, 1) {
				z := float64(cy+1) * cs
				lab.Walls = append(lab.Walls, NewWall(float64(cx)*cs, z-t/2, cs, t, h))
			}
		}
	}
}

// buildGraph places one node at each cell centre and connects carved
// passages. Edge cost is the centre distance, multiplied for rough
// corridors; the multiplier is always >= 1.
func (lab *Labyrinth) buildGraph(rng *rand.Rand, cfg labyrinthConfig) {
	lab.Graph = NewGraph()
	for cy := 0; cy < lab.Rows; cy++ {
		for cx := 0; cx < lab.Cols; cx++ {
			lab.Graph.AddNode(lab.CellCenter(cx, cy))
		}
	}
	for cy := 0; cy < lab.Rows; cy++ {
		for cx := 0; cx < lab.Cols; cx++ {
			a := NodeID(lab.idx(cx, cy))
			if cx+1 < lab.Cols && lab.isOpen(cx, cy, 1, 0) {
				lab.Graph.Connect(a, NodeID(lab.idx(cx+1, cy)), lab.edgeCost(rng, cfg))
			}
			if cy+1 < lab.Rows && lab.isOpen(cx, cy, 0, 1) {
				lab.Graph.Connect(a, NodeID(lab.idx(cx, cy+1)), lab.edgeCost(rng, cfg))
			}
		}
	}
}

func (lab *Labyrinth) edgeCost(rng *rand.Rand, cfg labyrinthConfig) float64 {
	cost := cfg.CellSize
	if rng.Float64() < cfg.RoughChance {
		cost *= cfg.RoughFactor
	}
	return cost
}

// CellCenter returns the world position of a cell's centre on the floor.
func (lab *Labyrinth) CellCenter(cx, cy int) Vec3 {
	return Vec3{
		X: (float64(cx) + 0.5) * lab.CellSize,
		Z: (float64(cy) + 0.5) * lab.CellSize,
	}
}

// Width returns the world-space extent along X.
func (lab *Labyrinth) Width() float64 { return float64(lab.Cols) * lab.CellSize }

// Depth returns the world-space extent along Z.
func (lab *Labyrinth) Depth() float64 { return float64(lab.Rows) * lab.CellSize }
