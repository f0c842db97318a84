package game

// FindPath runs weighted A* over the graph and returns the node sequence
// from start to goal inclusive. It returns nil when either endpoint is nil,
// and []*Node{start} when start and goal are the same node. An exhausted
// frontier (disconnected goal) also returns nil; no condition panics.
//
// The heuristic is straight-line distance between node positions. Edge
// costs are author-supplied and not validated against that distance, so a
// graph containing shortcut edges cheaper than the straight line loses the
// optimality guarantee. Costs like those the labyrinth generator emits
// (>= Euclidean) keep the heuristic admissible.
//
// The open frontier keeps insertion order and ties on fScore resolve to the
// first-encountered node. That makes results reproducible across runs; the
// linear minimum scan is O(V^2) overall, which is fine for the graph sizes
// the labyrinth produces (tens to low hundreds of nodes). Swapping in a
// heap would change tie-breaking, so don't.
func FindPath(g *Graph, start, goal *Node) []*Node {
	if g == nil || start == nil || goal == nil {
		return nil
	}
	if start.ID == goal.ID {
		return []*Node{start}
	}

	heuristic := func(n *Node) float64 {
		return Dist(n.Pos, goal.Pos)
	}

	open := []*Node{start}
	inOpen := map[NodeID]bool{start.ID: true}
	closed := map[NodeID]bool{}
	gScore := map[NodeID]float64{start.ID: 0}
	fScore := map[NodeID]float64{start.ID: heuristic(start)}
	cameFrom := map[NodeID]NodeID{}

	for len(open) > 0 {
		// Lowest fScore wins; strict less-than keeps the earliest-inserted
		// node on ties.
		bi := 0
		for i := 1; i < len(open); i++ {
			if fScore[open[i].ID] < fScore[open[bi].ID] {
				bi = i
			}
		}
		cur := open[bi]

		if cur.ID == goal.ID {
			return reconstructPath(g, cameFrom, start.ID, goal.ID)
		}

		open = append(open[:bi], open[bi+1:]...)
		delete(inOpen, cur.ID)
		closed[cur.ID] = true

		for _, e := range cur.Edges {
			if closed[e.To] {
				continue
			}
			nb := g.Node(e.To)
			if nb == nil {
				continue
			}
			tentative := gScore[cur.ID] + e.Cost
			if old, ok := gScore[e.To]; ok && tentative >= old {
				continue
			}
			cameFrom[e.To] = cur.ID
			gScore[e.To] = tentative
			fScore[e.To] = tentative + heuristic(nb)
			if !inOpen[e.To] {
				open = append(open, nb)
				inOpen[e.To] = true
			}
		}
	}
	return nil
}

// reconstructPath walks the predecessor map from goal back to start and
// reverses the result into start→goal order.
func reconstructPath(g *Graph, cameFrom map[NodeID]NodeID, start, goal NodeID) []*Node {
	var ids []NodeID
	for id := goal; ; {
		ids = append(ids, id)
		if id == start {
			break
		}
		prev, ok := cameFrom[id]
		if !ok {
			return nil
		}
		id = prev
	}
	path := make([]*Node, len(ids))
	for i, id := range ids {
		path[len(ids)-1-i] = g.Node(id)
	}
	return path
}

// PathCost sums the edge costs along a path, following each node's edge to
// its successor. Used by tests and the headless report.
func PathCost(path []*Node) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		for _, e := range path[i].Edges {
			if e.To == path[i+1].ID {
				total += e.Cost
				break
			}
		}
	}
	return total
}
