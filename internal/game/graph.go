package game

// NodeID is a stable index into a Graph's node slice.
type NodeID int

// Edge is an outgoing weighted connection from one node to another.
// Cost is author-supplied and need not equal the straight-line distance
// between the endpoints.
type Edge struct {
	To   NodeID
	Cost float64
}

// Node is a discrete navigable location in the labyrinth. Nodes reference
// neighbours by stable ID, never by live pointer; the Graph owns all nodes.
type Node struct {
	ID    NodeID
	Pos   Vec3
	Edges []Edge
}

// Graph is a weighted waypoint graph. It is built once before the
// simulation starts and read-only afterwards, so agents may share it
// across ticks without locking.
type Graph struct {
	nodes []*Node
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode appends a node at pos and returns it.
func (g *Graph) AddNode(pos Vec3) *Node {
	n := &Node{ID: NodeID(len(g.nodes)), Pos: pos}
	g.nodes = append(g.nodes, n)
	return n
}

// Node returns the node with the given ID, or nil if out of range.
func (g *Graph) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil
	}
	return g.nodes[id]
}

// Nodes returns the backing node slice. Callers must not mutate it
// during a search.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Connect adds a bidirectional edge between a and b with the given cost.
// Negative costs are clamped to zero; A* requires non-negative weights.
func (g *Graph) Connect(a, b NodeID, cost float64) {
	g.ConnectOneWay(a, b, cost)
	g.ConnectOneWay(b, a, cost)
}

// ConnectOneWay adds a directed edge from a to b with the given cost.
// Negative costs are clamped to zero. Invalid IDs are ignored.
func (g *Graph) ConnectOneWay(a, b NodeID, cost float64) {
	if g.Node(a) == nil || g.Node(b) == nil {
		return
	}
	if cost < 0 {
		cost = 0
	}
	g.nodes[a].Edges = append(g.nodes[a].Edges, Edge{To: b, Cost: cost})
}

// NearestNode maps a world position to the closest node, the nearest-node
// lookup agents use to anchor a search. The second return is false when
// the graph is nil or empty — callers must treat that as a first-class
// miss and fall back to direct movement, not as an error.
func (g *Graph) NearestNode(p Vec3) (*Node, bool) {
	if g == nil || len(g.nodes) == 0 {
		return nil, false
	}
	best := g.nodes[0]
	bestDist := Dist(p, best.Pos)
	for _, n := range g.nodes[1:] {
		if d := Dist(p, n.Pos); d < bestDist {
			best = n
			bestDist = d
		}
	}
	return best, true
}
