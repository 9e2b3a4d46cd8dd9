package pathmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Split-merge identity: merge_node(split_edge(n, d, c)) leaves the graph
// structurally and numerically identical for any admissible (n, d, c).
func TestSplitMergeIdentity(t *testing.T) {
	m := New(Point{100, 0}, Point{100, 100}, Rect{0, 0, 200, 100})
	assertInvariants(t, m)

	before := make([]node, len(m.nodes))
	copy(before, m.nodes)

	newIdx := m.splitEdge(0, East, 50)
	require.NotEqual(t, before[0].neighbours[East], m.nodes[0].neighbours[East])

	m.mergeNode(newIdx)

	// The merged node's slot stays in the arena as a dead slot until
	// compaction, so the live nodes are what must match.
	live := 0
	for i := range m.nodes {
		if !m.nodes[i].isDead() {
			live++
		}
	}
	require.Equal(t, len(before), live)
	for i := range before {
		require.Equal(t, before[i].x, m.nodes[i].x, "node %d x changed", i)
		require.Equal(t, before[i].y, m.nodes[i].y, "node %d y changed", i)
		require.Equal(t, before[i].neighbours, m.nodes[i].neighbours, "node %d neighbours changed", i)
		require.InDelta(t, before[i].cost, m.nodes[i].cost, 1e-9, "node %d cost changed", i)
	}
	assertInvariants(t, m)
}

func TestMergeNode_PanicsWhenNotDegreeTwo(t *testing.T) {
	m := New(Point{100, 0}, Point{100, 100}, Rect{0, 0, 200, 100})

	require.Panics(t, func() {
		m.mergeNode(0) // a map corner has two perpendicular neighbours, not two opposite ones
	})
}

func TestSplitEdge_PanicsOnCoordinateNotStrictlyBetween(t *testing.T) {
	m := New(Point{100, 0}, Point{100, 100}, Rect{0, 0, 200, 100})

	require.Panics(t, func() {
		m.splitEdge(0, East, 0) // 0 is not strictly between node 0 and its east neighbour
	})
}

func TestEraseNode_ProducesDeadSlot(t *testing.T) {
	m := New(Point{100, 0}, Point{100, 100}, Rect{0, 0, 200, 100})
	idx := m.splitEdge(0, East, 50)

	m.mergeNode(idx) // erases idx via the merge path
	require.Positive(t, m.deadSlots.Len())
}

func TestSwapOutDeadNodes_ShrinksArena(t *testing.T) {
	m := New(Point{100, 0}, Point{100, 100}, Rect{0, 0, 200, 100})
	idx := m.splitEdge(0, East, 50)
	sizeBeforeErase := len(m.nodes)

	m.mergeNode(idx)
	require.Equal(t, sizeBeforeErase, len(m.nodes), "mergeNode does not shrink the arena by itself")

	m.swapOutDeadNodes()
	require.Equal(t, sizeBeforeErase-1, len(m.nodes))
	require.Zero(t, m.deadSlots.Len())
}
