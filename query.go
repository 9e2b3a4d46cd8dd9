package pathmap

// GetDestinationCoordinates returns the coordinates of the destination the
// map was built to route everything toward.
func (m *Map) GetDestinationCoordinates() Point {
	return Point{X: m.nodes[m.endIndex].x, Y: m.nodes[m.endIndex].y}
}

// AddMapBorder registers the four strips just outside the map's bounds as
// obstacles, making the border itself blocking. These are recorded
// directly in the obstacle list rather than run through InsertObstacle:
// nothing in the graph extends past bounds in the first place (New's
// initial frame sits exactly on the boundary), so there is no edge for a
// border strip to sever - it only needs to be on record so that a future
// InsertObstacle call near the edge sees it as a neighbouring obstacle.
func (m *Map) AddMapBorder() {
	d := borderThickness
	b := m.bounds
	m.obstacles = append(m.obstacles,
		Obstacle{X: b.X - d, Y: b.Y, W: d, H: b.H},
		Obstacle{X: b.X + b.W, Y: b.Y, W: d, H: b.H},
		Obstacle{X: b.X, Y: b.Y - d, W: b.W, H: d},
		Obstacle{X: b.X, Y: b.Y + b.H, W: b.W, H: d},
	)
}

// NextCheckpoint returns the next point along the shortest path from
// (x, y) to the destination, assuming (x, y) is itself already a node in
// the graph (e.g. a checkpoint this method or NearestCheckpoint returned
// earlier). If no node matches exactly, it falls back to
// NearestCheckpoint, which is correct but does a full edge scan; callers
// expecting to walk an already-discovered path should prefer this method
// for that reason, not because it behaves differently.
//
// Returns false if there is no known path to the destination from here.
func (m *Map) NextCheckpoint(x, y float64) (Point, bool) {
	if absF(m.nodes[m.endIndex].x-x) < coordinateEqTol && absF(m.nodes[m.endIndex].y-y) < coordinateEqTol {
		return Point{X: x, Y: y}, true
	}

	for i := range m.nodes {
		if absF(m.nodes[i].x-x) < coordinateEqTol && absF(m.nodes[i].y-y) < coordinateEqTol {
			sp := m.nodes[i].shortestPath
			if sp == noDirection {
				return Point{}, false
			}
			neighbour := m.nodes[i].neighbours[sp]
			if neighbour == noIndex {
				return Point{}, false
			}
			return Point{X: m.nodes[neighbour].x, Y: m.nodes[neighbour].y}, true
		}
	}

	return m.NearestCheckpoint(x, y)
}

// NearestCheckpoint returns the point on the shortest path from (x, y) to
// the destination that is reached first, without assuming (x, y) is
// itself a node: every edge is scanned for the closest point on it to
// (x, y) that lies strictly between (x, y) and the destination. Prefer
// NextCheckpoint when (x, y) is already known to be a node.
//
// Returns false if there is no known path to the destination from here.
func (m *Map) NearestCheckpoint(x, y float64) (Point, bool) {
	destination := m.nodes[m.endIndex]
	if destination.x == x && destination.y == y {
		return Point{X: x, Y: y}, true
	}

	found := false
	var best Point
	bestTotal := posInf
	bestOnEdge := posInf

	for i := range m.nodes {
		if right := m.nodes[i].neighbours[East]; right != noIndex {
			node, rightNode := m.nodes[i], m.nodes[right]
			if node.x <= x && rightNode.x >= x {
				newY := node.y
				costToEdge := absF(y - newY)
				var total, onEdge float64
				if node.cost+x-node.x < rightNode.cost+rightNode.x-x {
					total = node.cost + x - node.x + costToEdge
					onEdge = x - node.x
				} else {
					total = rightNode.cost + rightNode.x - x + costToEdge
					onEdge = rightNode.x - x
				}
				if total <= bestTotal && onEdge+costToEdge > epsilon &&
					(total < bestTotal || (onEdge+costToEdge < bestOnEdge && total < posInf)) {
					if (y < newY && m.vLineOverlapsNoObstacle(x, y, newY)) ||
						(y > newY && m.vLineOverlapsNoObstacle(x, newY, y)) {
						best = Point{X: x, Y: newY}
						bestTotal, bestOnEdge, found = total, onEdge+costToEdge, true
					}
				}
			}
		}
		if bot := m.nodes[i].neighbours[South]; bot != noIndex {
			node, botNode := m.nodes[i], m.nodes[bot]
			if node.y <= y && botNode.y >= y {
				newX := node.x
				costToEdge := absF(x - newX)
				var total, onEdge float64
				if node.cost+y-node.y < botNode.cost+botNode.y-y {
					total = node.cost + y - node.y + costToEdge
					onEdge = y - node.y
				} else {
					total = botNode.cost + botNode.y - y + costToEdge
					onEdge = botNode.y - y
				}
				if total <= bestTotal && onEdge+costToEdge > epsilon &&
					(total < bestTotal || (onEdge+costToEdge < bestOnEdge && total < posInf)) {
					if (x < newX && m.hLineOverlapsNoObstacle(x, y, newX)) ||
						(x > newX && m.hLineOverlapsNoObstacle(newX, y, x)) {
						best = Point{X: newX, Y: y}
						bestTotal, bestOnEdge, found = total, onEdge+costToEdge, true
					}
				}
			}
		}
	}

	return best, found
}
