package pathmap

// RemoveObstacle removes an obstacle previously added with InsertObstacle,
// identified by an exact match on (x, y, w, h), and re-links whatever nodes
// sit along its former perimeter and lost a neighbour to it. It does
// nothing if no such obstacle is currently registered (spec.md §4.5):
// removing an obstacle twice, or one that was never inserted, is a no-op
// rather than an error.
//
// Unlike InsertObstacle this never needs to erase or create circuit nodes:
// every node that could be affected already exists (InsertObstacle never
// erases a node it didn't have to), so repair is a matter of offering each
// perimeter node a chance to reach back out in whichever direction the
// obstacle used to block.
func (m *Map) RemoveObstacle(x, y, w, h float64) {
	obstacleIndex := -1
	for idx, o := range m.obstacles {
		if o.X == x && o.Y == y && o.W == w && o.H == h {
			obstacleIndex = idx
			break
		}
	}
	if obstacleIndex == -1 {
		return
	}

	last := len(m.obstacles) - 1
	m.obstacles[obstacleIndex] = m.obstacles[last]
	m.obstacles = m.obstacles[:last]

	for i := range m.nodes {
		nx, ny := m.nodes[i].x, m.nodes[i].y
		if nx > x && nx < x+w {
			if ny == y && m.nodes[i].neighbours[South] == noIndex {
				m.linkToSouth(i)
				m.updateNode(i)
				m.relaxFrom(i)
			}
			if ny == y+h && m.nodes[i].neighbours[North] == noIndex {
				m.linkToNorth(i)
				m.updateNode(i)
				m.relaxFrom(i)
			}
		}
		if ny > y && ny < y+h {
			if nx == x && m.nodes[i].neighbours[East] == noIndex {
				m.linkToEast(i)
				m.updateNode(i)
				m.relaxFrom(i)
			}
			if nx == x+w && m.nodes[i].neighbours[West] == noIndex {
				m.linkToWest(i)
				m.updateNode(i)
				m.relaxFrom(i)
			}
		}
	}
}
