package pathmap

import (
	"container/heap"
	"fmt"
)

// pushNode appends a fresh node to the arena and returns its index. New
// nodes are always appended; dead slots are reclaimed later in bulk by
// swapOutDeadNodes rather than being reused one at a time, which keeps the
// "index of the newest node" simple arithmetic during InsertObstacle's
// corner-circuit construction (spec.md §4.4 Phase 4 relies on new nodes
// occupying a contiguous index range at the end of the arena).
func (m *Map) pushNode(x, y float64) int {
	idx := len(m.nodes)
	m.nodes = append(m.nodes, newNode(x, y))
	return idx
}

// splitEdge inserts a fresh node on the edge leaving n in direction d, at
// the given coordinate along that edge's axis, and rewires the four
// neighbour pointers so the edge becomes two. coordinate must lie strictly
// between n and its direction-d neighbour (spec.md §4.2); violating that
// is a caller contract violation and panics.
func (m *Map) splitEdge(n int, d Direction, coordinate float64) int {
	other := m.nodes[n].neighbours[d]
	if other == noIndex {
		panic(fmt.Errorf("%w: node %d has no neighbour in direction %s", ErrInvalidSplitCoordinate, n, d))
	}

	var an, ao float64
	if d == North || d == South {
		an, ao = m.nodes[n].y, m.nodes[other].y
	} else {
		an, ao = m.nodes[n].x, m.nodes[other].x
	}
	lo, hi := an, ao
	if lo > hi {
		lo, hi = hi, lo
	}
	if !(coordinate > lo && coordinate < hi) {
		panic(fmt.Errorf("%w: %v is not strictly between %v and %v", ErrInvalidSplitCoordinate, coordinate, an, ao))
	}

	opp := d.Opposite()
	var x, y float64
	if d == North || d == South {
		x, y = m.nodes[n].x, coordinate
	} else {
		x, y = coordinate, m.nodes[n].y
	}

	newIdx := m.pushNode(x, y)
	m.nodes[newIdx].neighbours[opp] = n
	m.nodes[n].neighbours[d] = newIdx
	m.nodes[newIdx].neighbours[d] = other
	m.nodes[other].neighbours[opp] = newIdx
	m.updateNode(newIdx)

	return newIdx
}

// mergeNode short-circuits a degree-2 collinear node (exactly North+South,
// or exactly East+West) and erases it. Any other neighbour configuration
// is a caller contract violation (spec.md §4.2) and panics.
func (m *Map) mergeNode(n int) {
	north := m.nodes[n].neighbours[North]
	south := m.nodes[n].neighbours[South]
	east := m.nodes[n].neighbours[East]
	west := m.nodes[n].neighbours[West]

	switch {
	case north != noIndex && south != noIndex && east == noIndex && west == noIndex:
		m.nodes[south].neighbours[North] = north
		m.nodes[north].neighbours[South] = south
	case east != noIndex && west != noIndex && north == noIndex && south == noIndex:
		m.nodes[east].neighbours[West] = west
		m.nodes[west].neighbours[East] = east
	default:
		panic(fmt.Errorf("%w: node %d", ErrMergeNotDegreeTwo, n))
	}

	m.nodes[n].neighbours = [4]int{noIndex, noIndex, noIndex, noIndex}
	m.eraseNode(n)
	m.cleanup()
}

// eraseNode detaches n from the graph entirely: any shortest path routed
// through n is invalidated first (while n's neighbour links are still
// intact, so the invalidation can walk outward correctly), then every
// neighbour's back-pointer to n is cleared, and finally n itself becomes a
// sentinel dead slot (Invariant I7) queued for reclamation.
func (m *Map) eraseNode(n int) {
	m.nodes[n].x = negInf
	m.nodes[n].y = negInf
	m.invalidatePathsThroughNode(n)

	for d := Direction(0); d < 4; d++ {
		neighbour := m.nodes[n].neighbours[d]
		if neighbour != noIndex {
			m.nodes[neighbour].neighbours[d.Opposite()] = noIndex
		}
	}

	m.nodes[n] = newNode(negInf, negInf)
	heap.Push(&m.deadSlots, n)
}

// connectH links left and right with a horizontal edge (left.x < right.x,
// same y) unless that edge would overlap an obstacle's interior. On
// success it also tightens whichever endpoint's cost improves by routing
// through the other, relaxing outward from there.
func (m *Map) connectH(left, right int) bool {
	if !m.hLineOverlapsNoObstacle(m.nodes[left].x, m.nodes[left].y, m.nodes[right].x) {
		return false
	}

	cost := m.nodes[right].x - m.nodes[left].x
	m.nodes[left].neighbours[East] = right
	m.nodes[right].neighbours[West] = left

	switch {
	case m.nodes[left].cost+cost < m.nodes[right].cost:
		m.nodes[right].shortestPath = West
		m.nodes[right].cost = m.nodes[left].cost + cost
		m.relaxFrom(right)
	case m.nodes[right].cost+cost < m.nodes[left].cost:
		m.nodes[left].shortestPath = East
		m.nodes[left].cost = m.nodes[right].cost + cost
		m.relaxFrom(left)
	}

	return true
}

// connectV links top and bot with a vertical edge (top.y < bot.y, same x)
// unless that edge would overlap an obstacle's interior. See connectH.
func (m *Map) connectV(top, bot int) bool {
	if !m.vLineOverlapsNoObstacle(m.nodes[top].x, m.nodes[top].y, m.nodes[bot].y) {
		return false
	}

	cost := m.nodes[bot].y - m.nodes[top].y
	m.nodes[top].neighbours[South] = bot
	m.nodes[bot].neighbours[North] = top

	switch {
	case m.nodes[top].cost+cost < m.nodes[bot].cost:
		m.nodes[bot].shortestPath = North
		m.nodes[bot].cost = m.nodes[top].cost + cost
		m.relaxFrom(bot)
	case m.nodes[bot].cost+cost < m.nodes[top].cost:
		m.nodes[top].shortestPath = South
		m.nodes[top].cost = m.nodes[bot].cost + cost
		m.relaxFrom(top)
	}

	return true
}

// eraseLonelyNodes marks every currently degree-0 node as dead. A node
// erased earlier in the same pass is degree-0 by construction and will be
// queued again here; swapOutDeadNodes tolerates the resulting duplicate
// dead-slot entries.
func (m *Map) eraseLonelyNodes() {
	for i := range m.nodes {
		n := &m.nodes[i]
		if n.neighbours[North] == noIndex && n.neighbours[East] == noIndex &&
			n.neighbours[South] == noIndex && n.neighbours[West] == noIndex {
			n.x = negInf
			n.y = negInf
			heap.Push(&m.deadSlots, i)
		}
	}
}

// swapOutDeadNodes physically shrinks the arena: the dead-slot heap is
// drained largest-first, and each dead slot is filled by moving the
// physically last live node into it (or, if the dead slot already is the
// last node, simply truncated). Every neighbour of the moved node has its
// back-pointer corrected to the node's new index.
//
// Unlike the original this also fixes up startIndex/endIndex when the
// node relocated by a swap happens to be the start or end point - see
// DESIGN.md for why that correction is necessary.
func (m *Map) swapOutDeadNodes() {
	last := noIndex
	for m.deadSlots.Len() > 0 {
		deadSlot := heap.Pop(&m.deadSlots).(int)
		if deadSlot == last {
			continue
		}
		last = deadSlot

		lastIdx := len(m.nodes) - 1
		if deadSlot == lastIdx {
			m.nodes = m.nodes[:lastIdx]
			continue
		}

		moved := m.nodes[lastIdx]
		m.nodes = m.nodes[:lastIdx]
		for d := Direction(0); d < 4; d++ {
			neighbour := moved.neighbours[d]
			if neighbour != noIndex {
				m.nodes[neighbour].neighbours[d.Opposite()] = deadSlot
			}
		}
		m.nodes[deadSlot] = moved

		if m.startIndex == lastIdx {
			m.startIndex = deadSlot
		}
		if m.endIndex == lastIdx {
			m.endIndex = deadSlot
		}
	}
}

// cleanup repairs any lingering back-pointer a live neighbour still holds
// toward a node that has since become a dead slot, then re-threads that
// neighbour to the nearest aligned node in the corresponding direction.
func (m *Map) cleanup() {
	toConsider := append([]int(nil), m.deadSlots...)
	for _, n := range toConsider {
		for d := Direction(0); d < 4; d++ {
			neighbour := m.nodes[n].neighbours[d]
			if neighbour == noIndex {
				continue
			}
			m.nodes[n].neighbours[d] = noIndex
			m.nodes[neighbour].neighbours[d.Opposite()] = noIndex

			switch d {
			case North:
				m.reconnectToSouth(neighbour)
			case East:
				m.reconnectToWest(neighbour)
			case South:
				m.reconnectToNorth(neighbour)
			case West:
				m.reconnectToEast(neighbour)
			}
			m.nodes[n].shortestPath = noDirection
		}
	}
}

// reconnectToNorth links n to the nearest node sharing its x coordinate
// strictly above it (smaller y), if the connecting edge overlaps no
// obstacle's interior.
func (m *Map) reconnectToNorth(n int) {
	x, y := m.nodes[n].x, m.nodes[n].y
	closest := noIndex
	closestY := negInf
	for i := range m.nodes {
		if m.nodes[i].x == x && m.nodes[i].y < y && m.nodes[i].y > closestY {
			closest, closestY = i, m.nodes[i].y
		}
	}
	if closest == noIndex {
		return
	}
	if m.vLineOverlapsNoObstacle(x, closestY, y) {
		m.nodes[closest].neighbours[South] = n
		m.nodes[n].neighbours[North] = closest
	}
}

// reconnectToSouth links n to the nearest node sharing its x coordinate
// strictly below it (larger y).
func (m *Map) reconnectToSouth(n int) {
	x, y := m.nodes[n].x, m.nodes[n].y
	closest := noIndex
	closestY := posInf
	for i := range m.nodes {
		if m.nodes[i].x == x && m.nodes[i].y > y && m.nodes[i].y < closestY {
			closest, closestY = i, m.nodes[i].y
		}
	}
	if closest == noIndex {
		return
	}
	if m.vLineOverlapsNoObstacle(x, y, closestY) {
		m.nodes[closest].neighbours[North] = n
		m.nodes[n].neighbours[South] = closest
	}
}

// reconnectToEast links n to the nearest node sharing its y coordinate
// strictly to its right (larger x).
func (m *Map) reconnectToEast(n int) {
	x, y := m.nodes[n].x, m.nodes[n].y
	closest := noIndex
	closestX := posInf
	for i := range m.nodes {
		if m.nodes[i].y == y && m.nodes[i].x > x && m.nodes[i].x < closestX {
			closest, closestX = i, m.nodes[i].x
		}
	}
	if closest == noIndex {
		return
	}
	if m.hLineOverlapsNoObstacle(x, y, closestX) {
		m.nodes[closest].neighbours[West] = n
		m.nodes[n].neighbours[East] = closest
	}
}

// reconnectToWest links n to the nearest node sharing its y coordinate
// strictly to its left (smaller x).
func (m *Map) reconnectToWest(n int) {
	x, y := m.nodes[n].x, m.nodes[n].y
	closest := noIndex
	closestX := negInf
	for i := range m.nodes {
		if m.nodes[i].y == y && m.nodes[i].x < x && m.nodes[i].x > closestX {
			closest, closestX = i, m.nodes[i].x
		}
	}
	if closest == noIndex {
		return
	}
	if m.hLineOverlapsNoObstacle(closestX, y, x) {
		m.nodes[closest].neighbours[East] = n
		m.nodes[n].neighbours[West] = closest
	}
}
