package game

import "testing"

func TestGraph_NearestNode(t *testing.T) {
	g := NewGraph()
	g.AddNode(Vec3{X: 0, Z: 0})
	b := g.AddNode(Vec3{X: 10, Z: 0})
	g.AddNode(Vec3{X: 0, Z: 10})

	n, ok := g.NearestNode(Vec3{X: 8, Z: 1})
	if !ok {
		t.Fatal("expected a node on a populated graph")
	}
	if n != b {
		t.Fatalf("expected node %d nearest, got %d", b.ID, n.ID)
	}
}

func TestGraph_NearestNode_EmptyAndNil(t *testing.T) {
	g := NewGraph()
	if _, ok := g.NearestNode(Vec3{}); ok {
		t.Fatal("empty graph must report absent")
	}
	var nilGraph *Graph
	if _, ok := nilGraph.NearestNode(Vec3{}); ok {
		t.Fatal("nil graph must report absent")
	}
}

func TestGraph_ConnectClampsNegativeCost(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(Vec3{})
	b := g.AddNode(Vec3{X: 1})
	g.Connect(a.ID, b.ID, -3)

	if len(a.Edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(a.Edges))
	}
	if a.Edges[0].Cost != 0 {
		t.Fatalf("negative cost should clamp to 0, got %.2f", a.Edges[0].Cost)
	}
}

func TestGraph_ConnectIgnoresInvalidIDs(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(Vec3{})
	g.Connect(a.ID, 99, 1)
	if len(a.Edges) != 0 {
		t.Fatal("edge to nonexistent node should be ignored")
	}
}

func TestGraph_NodeOutOfRange(t *testing.T) {
	g := NewGraph()
	g.AddNode(Vec3{})
	if g.Node(-1) != nil || g.Node(5) != nil {
		t.Fatal("out-of-range IDs should return nil")
	}
}
