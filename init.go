package pathmap

// New builds a map over bounds with a single obstacle-free corridor from
// start to end, and wires start/end into the initial four-corner frame
// (spec.md §4.6). It panics with ErrStartEqualsEnd if start and end share
// identical coordinates.
//
// The frame always starts as the four corners of bounds connected in a
// rectangle; how start and end attach to it falls into one of five cases,
// tried in order:
//
//  1. start sits on the top border and end on the bottom border at the same
//     x: split the top and bottom edges and connect the two new nodes
//     directly.
//  2. the same, but with start on the left border and end on the right
//     border at the same y.
//  3. start and end share an x coordinate (vertically aligned): add them as
//     two free-floating nodes and link each outward in all four directions.
//  4. start and end share a y coordinate (horizontally aligned): symmetric
//     to case 3.
//  5. neither: insert a pseudo-obstacle spanning the rectangle between
//     start and end (this carves the exact corridor InsertObstacle would
//     carve around a real obstacle there), then discard it from the
//     obstacle list, since it was never a real obstacle.
func New(start, end Point, bounds Rect) *Map {
	m := &Map{bounds: bounds}
	m.nodes = []node{
		newNode(bounds.X, bounds.Y),
		newNode(bounds.X+bounds.W, bounds.Y),
		newNode(bounds.X+bounds.W, bounds.Y+bounds.H),
		newNode(bounds.X, bounds.Y+bounds.H),
	}
	m.nodes[0].neighbours[East] = 1
	m.nodes[1].neighbours[West] = 0
	m.nodes[1].neighbours[South] = 2
	m.nodes[2].neighbours[North] = 1
	m.nodes[2].neighbours[West] = 3
	m.nodes[3].neighbours[East] = 2
	m.nodes[3].neighbours[North] = 0
	m.nodes[0].neighbours[South] = 3

	switch {
	case start.Y == bounds.Y && end.Y == bounds.Y+bounds.H && end.X == start.X:
		si := m.splitEdge(0, East, start.X)
		ei := m.splitEdge(3, East, start.X)
		m.nodes[si].cost = end.Y - start.Y
		m.nodes[si].neighbours[South] = ei
		m.nodes[ei].neighbours[North] = si
		m.startIndex, m.endIndex = si, ei
		m.invalidatePathsThroughNode(0)
		m.nodes[si].shortestPath = South
		m.nodes[ei].cost = 0
		m.nodes[ei].shortestPath = noDirection
		m.relaxFrom(ei)

	case start.X == bounds.X && end.X == bounds.X+bounds.W && end.Y == start.Y:
		si := m.splitEdge(0, South, start.Y)
		ei := m.splitEdge(1, South, start.Y)
		m.nodes[si].cost = end.X - start.X
		m.nodes[si].neighbours[East] = ei
		m.nodes[ei].neighbours[West] = si
		m.startIndex, m.endIndex = si, ei
		m.invalidatePathsThroughNode(0)
		m.nodes[si].shortestPath = East
		m.nodes[ei].cost = 0
		m.nodes[ei].shortestPath = noDirection
		m.relaxFrom(ei)

	case start.X == end.X:
		si := m.pushNode(start.X, start.Y)
		m.startIndex = si
		ei := m.pushNode(end.X, end.Y)
		m.endIndex = ei
		m.nodes[ei].cost = 0

		switch {
		case start.Y < end.Y:
			m.nodes[si].cost = end.Y - start.Y
			m.nodes[si].neighbours[South] = ei
			m.nodes[ei].neighbours[North] = si
			m.nodes[si].shortestPath = South
			m.linkToNorth(si)
			m.linkToSouth(ei)
		case end.Y < start.Y:
			m.nodes[si].cost = start.Y - end.Y
			m.nodes[si].neighbours[North] = ei
			m.nodes[ei].neighbours[South] = si
			m.nodes[si].shortestPath = North
			m.linkToSouth(si)
			m.linkToNorth(ei)
		default:
			panic(ErrStartEqualsEnd)
		}
		m.linkToEast(si)
		m.linkToWest(si)
		m.linkToWest(ei)
		m.linkToEast(ei)

	case start.Y == end.Y:
		si := m.pushNode(start.X, start.Y)
		m.startIndex = si
		ei := m.pushNode(end.X, end.Y)
		m.endIndex = ei
		m.nodes[ei].cost = 0

		switch {
		case start.X < end.X:
			m.nodes[si].cost = end.X - start.X
			m.nodes[si].neighbours[East] = ei
			m.nodes[ei].neighbours[West] = si
			m.nodes[si].shortestPath = East
			m.linkToWest(si)
			m.linkToEast(ei)
		case end.X < start.X:
			m.nodes[si].cost = start.X - end.X
			m.nodes[si].neighbours[West] = ei
			m.nodes[ei].neighbours[East] = si
			m.nodes[si].shortestPath = West
			m.linkToEast(si)
			m.linkToWest(ei)
		default:
			panic(ErrStartEqualsEnd)
		}
		m.linkToSouth(si)
		m.linkToSouth(ei)
		m.linkToNorth(si)
		m.linkToNorth(ei)

	default:
		var x, y, w, h float64
		if start.X < end.X {
			x, w = start.X, end.X-start.X
		} else {
			x, w = end.X, start.X-end.X
		}
		if start.Y < end.Y {
			y, h = start.Y, end.Y-start.Y
		} else {
			y, h = end.Y, start.Y-end.Y
		}
		m.InsertObstacle(x, y, w, h)
		m.obstacles = nil // the obstacle only existed to carve the corridor

		startIdx, endIdx := 0, 0
		for i := range m.nodes {
			if m.nodes[i].x == start.X && m.nodes[i].y == start.Y {
				startIdx = i
			}
			if m.nodes[i].x == end.X && m.nodes[i].y == end.Y {
				endIdx = i
			}
		}
		m.startIndex, m.endIndex = startIdx, endIdx
		m.invalidatePathsThroughNode(0)
		m.nodes[endIdx].cost = 0
		m.nodes[endIdx].shortestPath = noDirection
		m.relaxFrom(endIdx)
	}

	return m
}
