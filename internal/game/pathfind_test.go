package game

import (
	"math"
	"testing"
)

// lineGraph builds A(0,0)-B(5,0)-C(10,0) with cost-5 edges and no direct
// A-C connection.
func lineGraph() (*Graph, *Node, *Node, *Node) {
	g := NewGraph()
	a := g.AddNode(Vec3{X: 0})
	b := g.AddNode(Vec3{X: 5})
	c := g.AddNode(Vec3{X: 10})
	g.Connect(a.ID, b.ID, 5)
	g.Connect(b.ID, c.ID, 5)
	return g, a, b, c
}

func TestFindPath_LineGraph(t *testing.T) {
	g, a, b, c := lineGraph()
	path := FindPath(g, a, c)
	if len(path) != 3 {
		t.Fatalf("expected 3-node path, got %d", len(path))
	}
	if path[0] != a || path[1] != b || path[2] != c {
		t.Fatalf("expected [A B C], got [%d %d %d]", path[0].ID, path[1].ID, path[2].ID)
	}
	if cost := PathCost(path); math.Abs(cost-10) > 1e-9 {
		t.Fatalf("expected total cost 10, got %.2f", cost)
	}
}

func TestFindPath_StartEqualsGoal(t *testing.T) {
	g, a, _, _ := lineGraph()
	path := FindPath(g, a, a)
	if len(path) != 1 || path[0] != a {
		t.Fatalf("expected exactly [start], got %v", path)
	}
}

func TestFindPath_NilArguments(t *testing.T) {
	g, a, _, _ := lineGraph()
	if p := FindPath(g, nil, a); p != nil {
		t.Fatalf("nil start should return empty, got %d nodes", len(p))
	}
	if p := FindPath(g, a, nil); p != nil {
		t.Fatalf("nil goal should return empty, got %d nodes", len(p))
	}
	if p := FindPath(nil, a, a); p != nil {
		t.Fatalf("nil graph should return empty, got %d nodes", len(p))
	}
}

func TestFindPath_DisconnectedComponents(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(Vec3{X: 0})
	b := g.AddNode(Vec3{X: 1})
	c := g.AddNode(Vec3{X: 100})
	d := g.AddNode(Vec3{X: 101})
	g.Connect(a.ID, b.ID, 1)
	g.Connect(c.ID, d.ID, 1)

	if p := FindPath(g, a, c); p != nil {
		t.Fatalf("expected no path across components, got %d nodes", len(p))
	}
}

func TestFindPath_PicksCheaperRoute(t *testing.T) {
	// Diamond: S→A→G costs 2, S→B→G costs 6. All edge costs are at least
	// the straight-line distance, so the heuristic is admissible and the
	// cheap route must win.
	g := NewGraph()
	s := g.AddNode(Vec3{X: 0, Z: 0})
	a := g.AddNode(Vec3{X: 0, Z: 1})
	b := g.AddNode(Vec3{X: 1, Z: 0})
	goal := g.AddNode(Vec3{X: 1, Z: 1})
	g.Connect(s.ID, a.ID, 1)
	g.Connect(a.ID, goal.ID, 1)
	g.Connect(s.ID, b.ID, 1)
	g.Connect(b.ID, goal.ID, 5)

	path := FindPath(g, s, goal)
	if len(path) != 3 || path[1] != a {
		t.Fatalf("expected route via A, got %v", pathIDs(path))
	}
	if cost := PathCost(path); math.Abs(cost-2) > 1e-9 {
		t.Fatalf("expected minimal cost 2, got %.2f", cost)
	}
}

func TestFindPath_WeightedDetourBeatsShortHops(t *testing.T) {
	// A straight two-hop route with heavy edges loses to a three-hop
	// detour with light ones.
	g := NewGraph()
	s := g.AddNode(Vec3{X: 0, Z: 0})
	m := g.AddNode(Vec3{X: 5, Z: 0})
	goal := g.AddNode(Vec3{X: 10, Z: 0})
	d1 := g.AddNode(Vec3{X: 3, Z: 4})
	d2 := g.AddNode(Vec3{X: 7, Z: 4})
	g.Connect(s.ID, m.ID, 20)
	g.Connect(m.ID, goal.ID, 20)
	g.Connect(s.ID, d1.ID, 5)
	g.Connect(d1.ID, d2.ID, 4)
	g.Connect(d2.ID, goal.ID, 5)

	path := FindPath(g, s, goal)
	if cost := PathCost(path); math.Abs(cost-14) > 1e-9 {
		t.Fatalf("expected detour cost 14, got %.2f (path %v)", cost, pathIDs(path))
	}
}

func TestFindPath_NoCyclesInReconstruction(t *testing.T) {
	lab := NewLabyrinth(10, 10, 3)
	g := lab.Graph
	start := g.Node(0)
	goal := g.Node(NodeID(g.Len() - 1))

	path := FindPath(g, start, goal)
	if len(path) == 0 {
		t.Fatal("expected a path across a connected maze")
	}
	seen := map[NodeID]bool{}
	for _, n := range path {
		if seen[n.ID] {
			t.Fatalf("node %d appears twice in path %v", n.ID, pathIDs(path))
		}
		seen[n.ID] = true
	}
	if path[0] != start || path[len(path)-1] != goal {
		t.Fatal("path must run start→goal inclusive")
	}
}

func TestFindPath_Deterministic(t *testing.T) {
	lab := NewLabyrinth(8, 8, 99)
	g := lab.Graph
	start := g.Node(0)
	goal := g.Node(NodeID(g.Len() - 1))

	p1 := FindPath(g, start, goal)
	p2 := FindPath(g, start, goal)
	if len(p1) != len(p2) {
		t.Fatalf("path lengths differ between identical calls: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("paths diverge at index %d", i)
		}
	}
}

func TestFindPath_TieBreakFirstEncountered(t *testing.T) {
	// Two symmetric routes with identical costs; the tie must resolve to
	// the neighbour relaxed first (lower edge insertion order), every run.
	g := NewGraph()
	s := g.AddNode(Vec3{X: 0, Z: 0})
	up := g.AddNode(Vec3{X: 1, Z: 1})
	down := g.AddNode(Vec3{X: 1, Z: -1})
	goal := g.AddNode(Vec3{X: 2, Z: 0})
	g.Connect(s.ID, up.ID, 2)
	g.Connect(up.ID, goal.ID, 2)
	g.Connect(s.ID, down.ID, 2)
	g.Connect(down.ID, goal.ID, 2)

	for i := 0; i < 10; i++ {
		path := FindPath(g, s, goal)
		if len(path) != 3 || path[1] != up {
			t.Fatalf("run %d: expected the first-connected route via node %d, got %v",
				i, up.ID, pathIDs(path))
		}
	}
}

func pathIDs(path []*Node) []NodeID {
	ids := make([]NodeID, len(path))
	for i, n := range path {
		ids[i] = n.ID
	}
	return ids
}
