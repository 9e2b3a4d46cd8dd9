package pathmap

// linkToNorth, linkToEast, linkToSouth, and linkToWest each take a node n
// with an empty slot in the named direction and connect it to the nearest
// crossable edge "in front of" it in that direction, creating a helper
// node by splitting that edge unless one of its endpoints already aligns
// (spec.md §4.2). If the new connection is rejected by an obstacle, the
// helper node is rolled back via mergeNode; if it succeeds and a fresh
// helper was created, linking recurses outward from the helper, since the
// helper may itself need to reach further before the chain is done.
//
// Each of the four only scans the perpendicular family of edges it needs:
// linkToNorth/linkToSouth look at East-neighbour edges (horizontal edges,
// since a horizontal edge is what a vertical search ray can cross),
// linkToEast/linkToWest look at South-neighbour edges (vertical edges).
// This halves the scan compared to looking at all four neighbour slots,
// since every edge already appears from exactly one of its two endpoints'
// East/South slots (Invariant I1).

// linkToNorth connects n to the nearest horizontal edge above it that its
// x coordinate crosses, preferring the one closest to n (largest y below
// n.y).
func (m *Map) linkToNorth(n int) {
	x, y := m.nodes[n].x, m.nodes[n].y
	left, right := noIndex, noIndex
	bestY := negInf
	for i := range m.nodes {
		neighbour := m.nodes[i].neighbours[East]
		if neighbour == noIndex {
			continue
		}
		if m.nodes[i].x <= x && m.nodes[neighbour].x >= x && m.nodes[i].y < y && m.nodes[i].y > bestY {
			left, right, bestY = i, neighbour, m.nodes[i].y
		}
	}
	if left == noIndex {
		return
	}

	switch {
	case m.nodes[left].x == x:
		m.connectV(left, n)
	case m.nodes[right].x == x:
		m.connectV(right, n)
	default:
		newIdx := m.splitEdge(left, East, x)
		if m.connectV(newIdx, n) {
			m.linkToNorth(newIdx)
		} else {
			m.mergeNode(newIdx)
		}
	}
}

// linkToEast connects n to the nearest vertical edge to its right that its
// y coordinate crosses, preferring the closest one (smallest x above n.x).
func (m *Map) linkToEast(n int) {
	x, y := m.nodes[n].x, m.nodes[n].y
	top, bot := noIndex, noIndex
	bestX := posInf
	for i := range m.nodes {
		neighbour := m.nodes[i].neighbours[South]
		if neighbour == noIndex {
			continue
		}
		if m.nodes[i].y <= y && m.nodes[neighbour].y >= y && m.nodes[i].x > x && m.nodes[i].x < bestX {
			top, bot, bestX = i, neighbour, m.nodes[i].x
		}
	}
	if top == noIndex {
		return
	}

	switch {
	case m.nodes[top].y == y:
		m.connectH(n, top)
	case m.nodes[bot].y == y:
		m.connectH(n, bot)
	default:
		newIdx := m.splitEdge(top, South, y)
		if m.connectH(n, newIdx) {
			m.linkToEast(newIdx)
		} else {
			m.mergeNode(newIdx)
		}
	}
}

// linkToSouth connects n to the nearest horizontal edge below it that its
// x coordinate crosses, preferring the closest one (smallest y above n.y).
func (m *Map) linkToSouth(n int) {
	x, y := m.nodes[n].x, m.nodes[n].y
	left, right := noIndex, noIndex
	bestY := posInf
	for i := range m.nodes {
		neighbour := m.nodes[i].neighbours[East]
		if neighbour == noIndex {
			continue
		}
		if m.nodes[i].x <= x && m.nodes[neighbour].x >= x && m.nodes[i].y > y && m.nodes[i].y < bestY {
			left, right, bestY = i, neighbour, m.nodes[i].y
		}
	}
	if left == noIndex {
		return
	}

	switch {
	case m.nodes[left].x == x:
		m.connectV(n, left)
	case m.nodes[right].x == x:
		m.connectV(n, right)
	default:
		newIdx := m.splitEdge(left, East, x)
		if m.connectV(n, newIdx) {
			m.linkToSouth(newIdx)
		} else {
			m.mergeNode(newIdx)
		}
	}
}

// linkToWest connects n to the nearest vertical edge to its left that its
// y coordinate crosses, preferring the closest one (largest x below n.x).
func (m *Map) linkToWest(n int) {
	x, y := m.nodes[n].x, m.nodes[n].y
	top, bot := noIndex, noIndex
	bestX := negInf
	for i := range m.nodes {
		neighbour := m.nodes[i].neighbours[South]
		if neighbour == noIndex {
			continue
		}
		if m.nodes[i].y <= y && m.nodes[neighbour].y >= y && m.nodes[i].x < x && m.nodes[i].x > bestX {
			top, bot, bestX = i, neighbour, m.nodes[i].x
		}
	}
	if top == noIndex {
		return
	}

	switch {
	case m.nodes[top].y == y:
		m.connectH(top, n)
	case m.nodes[bot].y == y:
		m.connectH(bot, n)
	default:
		newIdx := m.splitEdge(top, South, y)
		if m.connectH(newIdx, n) {
			m.linkToWest(newIdx)
		} else {
			m.mergeNode(newIdx)
		}
	}
}
