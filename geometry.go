package pathmap

// Geometry predicates for rectilinear segments against axis-aligned
// obstacles (spec.md §4.1). Every predicate here comes in two forms per
// orientation:
//
//   - overlaps: the segment crosses the obstacle's *open* interior.
//   - touches:  the segment crosses the obstacle's *closed* boundary, i.e.
//     it is also considered a crossing when it merely runs along an edge
//     of the rectangle.
//
// The distinction is load-bearing (spec.md §9): an edge that only touches
// an obstacle's boundary may still be traversed, so insertion severs edges
// that overlap and treats edges that merely touch differently (they are
// deleted at once and their endpoints inside the rectangle's span are
// erased, while overlapping edges are queued so the new corner circuit can
// re-attach their endpoints; in both cases a shortest path routed along
// the severed edge is invalidated).
//
// All four "line" predicates below take already-ordered coordinates
// (x0 <= x1, or y0 <= y1); callers normalize first. This mirrors
// h_line_touches_obstacle / v_line_touches_obstacle / h_line_overlaps_obstacle
// / v_line_overlaps_obstacle in the original implementation, including the
// canonical contract spelled out in spec.md §9(c): each predicate returns
// true iff the segment crosses the obstacle under the stated rule - never
// inverted.

// hLineOverlapsObstacle reports whether the horizontal segment from
// (x0, y) to (x1, y), x0 <= x1, runs through the strict interior of o.
func hLineOverlapsObstacle(x0, y, x1 float64, o Obstacle) bool {
	return x0 < o.X+o.W && x1 > o.X && y > o.Y && y < o.Y+o.H
}

// hLineTouchesObstacle reports whether the horizontal segment from
// (x0, y) to (x1, y), x0 <= x1, crosses o's closed boundary (interior or
// edge).
func hLineTouchesObstacle(x0, y, x1 float64, o Obstacle) bool {
	return x0 < o.X+o.W && x1 > o.X && y >= o.Y && y <= o.Y+o.H
}

// vLineOverlapsObstacle reports whether the vertical segment from
// (x, y0) to (x, y1), y0 <= y1, runs through the strict interior of o.
func vLineOverlapsObstacle(x, y0, y1 float64, o Obstacle) bool {
	return y0 < o.Y+o.H && y1 > o.Y && x > o.X && x < o.X+o.W
}

// vLineTouchesObstacle reports whether the vertical segment from
// (x, y0) to (x, y1), y0 <= y1, crosses o's closed boundary.
func vLineTouchesObstacle(x, y0, y1 float64, o Obstacle) bool {
	return y0 < o.Y+o.H && y1 > o.Y && x >= o.X && x <= o.X+o.W
}

// manhattan returns the taxicab distance between two points.
func manhattan(x0, y0, x1, y1 float64) float64 {
	return absF(x0-x1) + absF(y0-y1)
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// hLineOverlapsNoObstacle reports whether the horizontal segment between
// x0 and x1 at height y overlaps no registered obstacle's interior. An
// admissible new edge must satisfy this (spec.md §4.1): touching an
// obstacle's boundary is fine, crossing its interior is not.
func (m *Map) hLineOverlapsNoObstacle(x0, y, x1 float64) bool {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for _, o := range m.obstacles {
		if hLineOverlapsObstacle(x0, y, x1, o) {
			return false
		}
	}
	return true
}

// vLineOverlapsNoObstacle is the vertical analogue of hLineOverlapsNoObstacle.
func (m *Map) vLineOverlapsNoObstacle(x, y0, y1 float64) bool {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for _, o := range m.obstacles {
		if vLineOverlapsObstacle(x, y0, y1, o) {
			return false
		}
	}
	return true
}

// coordinateIsBlocked reports whether (x, y) lies in the strict interior of
// any registered obstacle. Corners and pierce-points that land here are
// unusable and are skipped while building a new corner circuit.
func (m *Map) coordinateIsBlocked(x, y float64) bool {
	for _, o := range m.obstacles {
		if o.X < x && o.X+o.W > x && o.Y < y && o.Y+o.H > y {
			return true
		}
	}
	return false
}
