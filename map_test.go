package pathmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The end-to-end tests below reproduce fixed scenarios with exact expected
// node counts, costs and checkpoints.

func TestNew_CollinearOnOppositeBorders(t *testing.T) {
	m := New(Point{100, 0}, Point{100, 100}, Rect{0, 0, 200, 100})
	assertInvariants(t, m)

	require.Len(t, m.nodes, 6)
	require.InDelta(t, 100.0, m.nodes[m.startIndex].cost, 1e-9)
	require.Equal(t, South, m.nodes[m.startIndex].shortestPath)
	require.Equal(t, m.endIndex, m.nodes[m.startIndex].neighbours[South])
}

func TestNew_GeneralPseudoObstacle(t *testing.T) {
	m := New(Point{50, 50}, Point{20, 90}, Rect{0, 0, 100, 200})
	assertInvariants(t, m)

	require.Len(t, m.nodes, 16)
	require.InDelta(t, 70.0, m.nodes[m.startIndex].cost, 1e-9)

	// Two L-shaped paths: one via the south-then-west helper, one via the
	// west-then-south helper.
	viaSouth := m.nodes[m.startIndex].neighbours[South]
	require.NotEqual(t, noIndex, viaSouth)
	require.InDelta(t, 30.0, m.nodes[viaSouth].cost, 1e-9)
	require.Equal(t, m.endIndex, m.nodes[viaSouth].neighbours[West])

	viaWest := m.nodes[m.startIndex].neighbours[West]
	require.NotEqual(t, noIndex, viaWest)
	require.InDelta(t, 40.0, m.nodes[viaWest].cost, 1e-9)
	require.Equal(t, m.endIndex, m.nodes[viaWest].neighbours[South])
}

func TestInsertObstacle_WindingCorridor(t *testing.T) {
	m := New(Point{100, 0}, Point{100, 300}, Rect{0, 0, 200, 300})
	assertInvariants(t, m)

	for _, o := range []Obstacle{
		{80, 20, 40, 20},
		{140, 40, 50, 110},
		{50, 170, 20, 80},
		{150, 170, 10, 10},
		{150, 200, 10, 40},
	} {
		m.InsertObstacle(o.X, o.Y, o.W, o.H)
		assertInvariants(t, m)
	}
	require.InDelta(t, 340.0, m.nodes[m.startIndex].cost, 1e-9)

	m.InsertObstacle(20, 265, 230, 20)
	assertInvariants(t, m)
	require.InDelta(t, 460.0, m.nodes[m.startIndex].cost, 1e-9)
}

func TestInsertObstacle_BorderedWindingCorridor(t *testing.T) {
	m := New(Point{0, 200}, Point{300, 200}, Rect{0, 0, 300, 350})
	m.AddMapBorder()
	assertInvariants(t, m)

	for _, o := range []Obstacle{
		{30, -1, 40, 301},
		{100, 50, 50, 301},
		{200, -1, 50, 51},
		{200, 49, 50, 51},
		{200, 99, 50, 51},
		{200, 149, 50, 51},
		{200, 199, 50, 51},
	} {
		m.InsertObstacle(o.X, o.Y, o.W, o.H)
		assertInvariants(t, m)
	}

	require.InDelta(t, 900.0, m.nodes[m.startIndex].cost, 1e-9)
}

func TestInsertObstacle_SealsOffDestination(t *testing.T) {
	m := New(Point{0, 0}, Point{0, 300}, Rect{-100, 0, 200, 300})
	m.AddMapBorder()
	assertInvariants(t, m)

	for _, o := range []Obstacle{
		{-110, 150, 70, 50},
		{-60, 145, 70, 50},
		{0, 150, 70, 50},
		{50, 130, 70, 50},
	} {
		m.InsertObstacle(o.X, o.Y, o.W, o.H)
	}
	assertInvariants(t, m)

	require.Equal(t, noDirection, m.nodes[m.startIndex].shortestPath)
	require.Zero(t, m.nodes[m.endIndex].cost)
}

func TestCheckpoints_EmptyMap(t *testing.T) {
	m := New(Point{0, 0}, Point{100, 100}, Rect{0, 0, 100, 200})
	assertInvariants(t, m)

	near, ok := m.NearestCheckpoint(50, 50)
	require.True(t, ok)
	require.Contains(t, []Point{{100, 50}, {50, 100}}, near)

	next, ok := m.NextCheckpoint(0, 0)
	require.True(t, ok)
	require.Contains(t, []Point{{0, 100}, {100, 0}}, next)
}

// The redundant-obstacle law: an obstacle strictly contained in an
// already-present obstacle does not change graph size.
func TestInsertObstacle_RedundantObstacleLaw(t *testing.T) {
	m := New(Point{0, 100}, Point{200, 100}, Rect{0, 0, 200, 200})
	m.InsertObstacle(50, 50, 100, 100)
	assertInvariants(t, m)
	size := len(m.nodes)

	m.InsertObstacle(60, 60, 50, 50)
	assertInvariants(t, m)
	require.Equal(t, size, len(m.nodes))
}

// Remove-undoes-insert: inserting then removing an obstacle returns every
// pre-existing node's cost to its pre-insertion value.
func TestRemoveObstacle_UndoesInsert(t *testing.T) {
	m := New(Point{0, 100}, Point{200, 100}, Rect{0, 0, 200, 200})
	assertInvariants(t, m)

	type coord struct{ x, y float64 }
	before := make(map[coord]float64, len(m.nodes))
	for i := range m.nodes {
		if !m.nodes[i].isDead() {
			before[coord{m.nodes[i].x, m.nodes[i].y}] = m.nodes[i].cost
		}
	}

	m.InsertObstacle(50, 50, 60, 60)
	assertInvariants(t, m)

	m.RemoveObstacle(50, 50, 60, 60)
	assertInvariants(t, m)

	for i := range m.nodes {
		if m.nodes[i].isDead() {
			continue
		}
		want, tracked := before[coord{m.nodes[i].x, m.nodes[i].y}]
		if !tracked {
			continue // a helper node introduced by the insert/remove cycle
		}
		require.InDelta(t, want, m.nodes[i].cost, 1e-9, "node at (%v,%v) cost not restored", m.nodes[i].x, m.nodes[i].y)
	}
}

// RemoveObstacle is a no-op when the obstacle was never inserted.
func TestRemoveObstacle_UnknownIsNoop(t *testing.T) {
	m := New(Point{0, 100}, Point{200, 100}, Rect{0, 0, 200, 200})
	before := len(m.nodes)
	m.RemoveObstacle(10, 10, 5, 5)
	require.Equal(t, before, len(m.nodes))
}

func TestNew_PanicsOnIdenticalStartEnd(t *testing.T) {
	require.PanicsWithValue(t, ErrStartEqualsEnd, func() {
		New(Point{5, 5}, Point{5, 5}, Rect{0, 0, 10, 10})
	})
}
