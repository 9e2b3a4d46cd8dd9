package pathmap

import "container/heap"

// InsertObstacle adds a rectangular obstacle to the map and repairs the
// reduced visibility graph incrementally so every node's cost and
// shortestPath arrow again reflect the true shortest path to the
// destination (spec.md §4.4). It never recomputes the graph from scratch.
//
// The obstacle is recorded exactly as given, even if it lies partly or
// entirely outside the map's bounds; only the portion that can affect the
// graph is clipped for the purposes of this call (spec.md §4.3's border
// clipping, grounded on the original's "shadow the width/height with a
// clipped copy, keep the original for the obstacle list" idiom).
func (m *Map) InsertObstacle(x, y, w, h float64) {
	m.obstacles = append(m.obstacles, Obstacle{X: x, Y: y, W: w, H: h})

	if x > m.bounds.X+m.bounds.W || y > m.bounds.Y+m.bounds.H {
		return
	}
	if x+w > m.bounds.X+m.bounds.W {
		w = m.bounds.X + m.bounds.W - x + obstacleClipPad
	}
	if y+h > m.bounds.Y+m.bounds.H {
		h = m.bounds.Y + m.bounds.H - y + obstacleClipPad
	}
	obs := Obstacle{X: x, Y: y, W: w, H: h}

	// Phase 1: find every edge the new obstacle crosses. An edge that
	// merely touches the boundary is severed immediately (its nodes are
	// scheduled for erasure if they end up enclosed); an edge that runs
	// through the strict interior is queued, ordered by its orthogonal
	// coordinate, for Phase 4 to rebuild around.
	var hBlocked, vBlocked edgeHeap
	var nodesToErase []int

	n := len(m.nodes)
	for v0 := 0; v0 < n; v0++ {
		if up := m.nodes[v0].neighbours[North]; up != noIndex {
			lo, hi := m.nodes[up].y, m.nodes[v0].y
			if vLineTouchesObstacle(m.nodes[v0].x, lo, hi, obs) {
				if vLineOverlapsObstacle(m.nodes[v0].x, lo, hi, obs) {
					heap.Push(&vBlocked, blockedEdge{from: v0, to: up, key: m.nodes[v0].x})
				} else {
					m.nodes[v0].deleteNeighbour(up)
					m.nodes[up].deleteNeighbour(v0)
					if m.nodes[v0].shortestPath == North {
						m.invalidatePathsThroughNode(v0)
					}
					if m.nodes[up].shortestPath == South {
						m.invalidatePathsThroughNode(up)
					}
					if m.nodes[v0].y <= y+h {
						nodesToErase = append(nodesToErase, v0)
					}
					if m.nodes[up].y >= y {
						nodesToErase = append(nodesToErase, up)
					}
				}
			}
		}
		if right := m.nodes[v0].neighbours[East]; right != noIndex {
			if hLineTouchesObstacle(m.nodes[v0].x, m.nodes[v0].y, m.nodes[right].x, obs) {
				if hLineOverlapsObstacle(m.nodes[v0].x, m.nodes[v0].y, m.nodes[right].x, obs) {
					heap.Push(&hBlocked, blockedEdge{from: v0, to: right, key: m.nodes[v0].y})
				} else {
					m.nodes[v0].deleteNeighbour(right)
					m.nodes[right].deleteNeighbour(v0)
					if m.nodes[v0].shortestPath == East {
						m.invalidatePathsThroughNode(v0)
					}
					if m.nodes[right].shortestPath == West {
						m.invalidatePathsThroughNode(right)
					}
					if m.nodes[v0].x >= x {
						nodesToErase = append(nodesToErase, v0)
					}
					if m.nodes[right].x <= x+w {
						nodesToErase = append(nodesToErase, right)
					}
				}
			}
		}
	}

	// Phase 2: sever every overlap edge and invalidate whatever routed
	// through it; the nodes themselves survive this pass, since Phase 4
	// may still reuse them as the circuit's attachment points.
	for _, e := range hBlocked {
		left, right := e.from, e.to
		m.nodes[left].deleteNeighbour(right)
		m.nodes[right].deleteNeighbour(left)
		if m.nodes[left].shortestPath == East {
			m.invalidatePathsThroughNode(left)
		}
		if m.nodes[right].shortestPath == West {
			m.invalidatePathsThroughNode(right)
		}
	}
	for _, e := range vBlocked {
		bot, top := e.from, e.to
		m.nodes[bot].deleteNeighbour(top)
		m.nodes[top].deleteNeighbour(bot)
		if m.nodes[bot].shortestPath == North {
			m.invalidatePathsThroughNode(bot)
		}
		if m.nodes[top].shortestPath == South {
			m.invalidatePathsThroughNode(top)
		}
	}

	// Phase 3: erase the nodes scheduled by Phase 1.
	for _, node := range nodesToErase {
		m.eraseNode(node)
	}

	// Phase 4: walk the obstacle's perimeter clockwise from its top-left
	// corner, creating one node per corner and per blocked edge crossing
	// that corner's side, wiring each to its circuit-neighbour and, at
	// the corners, out to the rest of the graph via linkTo*. A corner or
	// pierce-point that itself lands in another obstacle's interior is
	// skipped (coordinateIsBlocked) and simply breaks the predecessor
	// chain at that point.
	i := len(m.nodes)
	v := vBlocked.Len()
	ho := hBlocked.Len()

	var vBlockedBuf, hBlockedBuf []blockedEdge
	predecessor := noIndex

	luExists := false
	if !m.coordinateIsBlocked(x, y) {
		m.pushNode(x, y) // occupies index i
		m.linkToNorth(i)
		m.linkToWest(i)
		predecessor = i
		luExists = true
	}

	// upper line: left-to-right, ascending x.
	for j := 0; j < v; j++ {
		index := len(m.nodes)
		edge := popMin(&vBlocked)
		top := edge.to
		crossX := edge.key
		if !m.coordinateIsBlocked(crossX, y) {
			if m.nodes[top].y < y {
				m.pushNode(crossX, y)
				m.nodes[index].neighbours[North] = top
				m.nodes[top].neighbours[South] = index
				if predecessor != noIndex && m.hLineOverlapsNoObstacle(m.nodes[predecessor].x, m.nodes[predecessor].y, crossX) {
					m.nodes[predecessor].neighbours[East] = index
					m.nodes[index].neighbours[West] = predecessor
				}
				m.relaxFrom(index)
				predecessor = index
			}
			// else: top no longer lies above the new top edge; keep predecessor as is.
		} else {
			predecessor = noIndex
		}
		vBlockedBuf = append(vBlockedBuf, edge)
	}

	// top-right corner.
	index := len(m.nodes)
	if !m.coordinateIsBlocked(x+w, y) {
		m.pushNode(x+w, y)
		if predecessor != noIndex && m.hLineOverlapsNoObstacle(m.nodes[predecessor].x, m.nodes[predecessor].y, x+w) {
			m.nodes[index].neighbours[West] = predecessor
			m.nodes[predecessor].neighbours[East] = index
		}
		m.linkToNorth(index)
		m.linkToEast(index)
		predecessor = index
	} else {
		predecessor = noIndex
	}

	// right line: top-to-bottom, ascending y.
	for j := 0; j < ho; j++ {
		index := len(m.nodes)
		edge := popMin(&hBlocked)
		right := edge.to
		crossY := edge.key
		if !m.coordinateIsBlocked(x+w, crossY) {
			if m.nodes[right].x > x+w {
				m.pushNode(x+w, crossY)
				m.nodes[index].neighbours[East] = right
				m.nodes[right].neighbours[West] = index
				if predecessor != noIndex && m.vLineOverlapsNoObstacle(m.nodes[predecessor].x, m.nodes[predecessor].y, crossY) {
					m.nodes[index].neighbours[North] = predecessor
					m.nodes[predecessor].neighbours[South] = index
				}
				m.relaxFrom(index)
				predecessor = index
			}
		} else {
			predecessor = noIndex
		}
		hBlockedBuf = append(hBlockedBuf, edge)
	}

	// bottom-right corner.
	index = len(m.nodes)
	if !m.coordinateIsBlocked(x+w, y+h) {
		m.pushNode(x+w, y+h)
		if predecessor != noIndex && m.vLineOverlapsNoObstacle(m.nodes[predecessor].x, m.nodes[predecessor].y, y+h) {
			m.nodes[index].neighbours[North] = predecessor
			m.nodes[predecessor].neighbours[South] = index
		}
		m.linkToEast(index)
		m.linkToSouth(index)
		predecessor = index
	} else {
		predecessor = noIndex
	}

	// bottom line: right-to-left, descending x (drains vBlockedBuf LIFO).
	for j := 0; j < v; j++ {
		index := len(m.nodes)
		edge := vBlockedBuf[len(vBlockedBuf)-1]
		vBlockedBuf = vBlockedBuf[:len(vBlockedBuf)-1]
		bot := edge.from
		crossX := edge.key
		if !m.coordinateIsBlocked(crossX, y+h) {
			if m.nodes[bot].y > y+h {
				m.pushNode(crossX, y+h)
				m.nodes[index].neighbours[South] = bot
				m.nodes[bot].neighbours[North] = index
				if predecessor != noIndex && m.hLineOverlapsNoObstacle(crossX, m.nodes[predecessor].y, m.nodes[predecessor].x) {
					m.nodes[index].neighbours[East] = predecessor
					m.nodes[predecessor].neighbours[West] = index
				}
				m.relaxFrom(index)
				predecessor = index
			}
		} else {
			predecessor = noIndex
		}
	}

	// bottom-left corner.
	index = len(m.nodes)
	if !m.coordinateIsBlocked(x, y+h) {
		m.pushNode(x, y+h)
		if predecessor != noIndex && m.hLineOverlapsNoObstacle(x, m.nodes[predecessor].y, m.nodes[predecessor].x) {
			m.nodes[index].neighbours[East] = predecessor
			m.nodes[predecessor].neighbours[West] = index
		}
		m.linkToSouth(index)
		m.linkToWest(index)
		predecessor = index
	} else {
		predecessor = noIndex
	}

	// left line: bottom-to-top, descending y (drains hBlockedBuf LIFO).
	for j := 0; j < ho; j++ {
		index := len(m.nodes)
		edge := hBlockedBuf[len(hBlockedBuf)-1]
		hBlockedBuf = hBlockedBuf[:len(hBlockedBuf)-1]
		left := edge.from
		crossY := edge.key
		if !m.coordinateIsBlocked(x, crossY) {
			if m.nodes[left].x < x {
				m.pushNode(x, crossY)
				m.nodes[index].neighbours[West] = left
				m.nodes[left].neighbours[East] = index
				if predecessor != noIndex && m.vLineOverlapsNoObstacle(m.nodes[predecessor].x, crossY, m.nodes[predecessor].y) {
					m.nodes[index].neighbours[South] = predecessor
					m.nodes[predecessor].neighbours[North] = index
				}
				m.relaxFrom(index)
				predecessor = index
			}
		} else {
			predecessor = noIndex
		}
	}

	// close the circuit back to the top-left corner, if it exists.
	if len(m.nodes) > i && luExists {
		if predecessor != noIndex && m.vLineOverlapsNoObstacle(m.nodes[i].x, m.nodes[i].y, m.nodes[predecessor].y) {
			m.nodes[predecessor].neighbours[North] = i
			m.nodes[i].neighbours[South] = predecessor
		}
	}

	// Phase 5: repair stale dead-node back-pointers left behind by Phase
	// 2/3's erasures, then re-relax outward from every update root
	// accumulated along the way, then drop any node left with no
	// neighbours at all.
	m.cleanup()
	m.update()
	m.eraseLonelyNodes()

	// Phase 6: seed a full, non-recursive recomputation of every new
	// node from the one closest (by already-known cost) to the
	// destination, walking outward in alternating offsets so that a
	// node's recomputation can see a neighbour that was already
	// refreshed this pass before that neighbour sees it back.
	closest := noIndex
	closestCost := posInf
	for j := i; j < len(m.nodes); j++ {
		if m.nodes[j].cost < closestCost {
			closest, closestCost = j, m.nodes[j].cost
		}
	}
	if closest != noIndex {
		addedNodes := len(m.nodes) - i
		for k := 0; k < addedNodes; k++ {
			var toUpdate int
			if k%2 == 0 {
				toUpdate = closest + (k+1)/2
			} else {
				toUpdate = closest - (k+1)/2
			}
			for toUpdate >= i+addedNodes || toUpdate < i {
				if toUpdate >= i+addedNodes {
					toUpdate -= addedNodes
				} else {
					toUpdate += addedNodes
				}
			}
			m.updateNode(toUpdate)
			m.relaxFrom(toUpdate)
		}
	}
	// else: the new circuit is not connected to anything, nothing to seed.

	// Phase 7: shrink the arena now that the new nodes no longer need to
	// occupy a contiguous range at its end.
	m.swapOutDeadNodes()
}
