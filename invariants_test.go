package pathmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// assertInvariants checks I1 (neighbour symmetry), I2 (neighbour alignment),
// I3 (every shortest-path chain terminates at the destination), I4 (cost
// consistency), I5 (destination frozen at cost 0) and I6 (no edge overlaps
// an obstacle's interior), mirroring the original's check_module_invariants.
func assertInvariants(t *testing.T, m *Map) {
	t.Helper()

	for i := range m.nodes {
		n := &m.nodes[i]
		if n.isDead() {
			require.Equal(t, [4]int{noIndex, noIndex, noIndex, noIndex}, n.neighbours, "dead slot %d has a neighbour", i)
			continue
		}

		for d := Direction(0); d < 4; d++ {
			neighbour := n.neighbours[d]
			if neighbour == noIndex {
				continue
			}
			other := &m.nodes[neighbour]
			require.Equal(t, i, other.neighbours[d.Opposite()], "neighbour symmetry broken between %d and %d", i, neighbour)

			switch d {
			case North:
				require.Equal(t, n.x, other.x, "node %d/%d not x-aligned", i, neighbour)
				require.Less(t, other.y, n.y, "node %d's north neighbour %d is not strictly above", i, neighbour)
			case South:
				require.Equal(t, n.x, other.x, "node %d/%d not x-aligned", i, neighbour)
				require.Greater(t, other.y, n.y, "node %d's south neighbour %d is not strictly below", i, neighbour)
			case East:
				require.Equal(t, n.y, other.y, "node %d/%d not y-aligned", i, neighbour)
				require.Greater(t, other.x, n.x, "node %d's east neighbour %d is not strictly right", i, neighbour)
			case West:
				require.Equal(t, n.y, other.y, "node %d/%d not y-aligned", i, neighbour)
				require.Less(t, other.x, n.x, "node %d's west neighbour %d is not strictly left", i, neighbour)
			}
		}

		if n.shortestPath != noDirection {
			neighbour := n.neighbours[n.shortestPath]
			require.NotEqual(t, noIndex, neighbour, "node %d has a shortestPath arrow with no matching neighbour", i)
			expectedCost := m.nodes[neighbour].cost + manhattan(n.x, n.y, m.nodes[neighbour].x, m.nodes[neighbour].y)
			require.InDelta(t, expectedCost, n.cost, 1e-9, "cost consistency broken at node %d", i)
		}
	}

	require.Equal(t, noDirection, m.nodes[m.endIndex].shortestPath, "destination must have no shortestPath")
	require.Zero(t, m.nodes[m.endIndex].cost, "destination must have cost 0")

	for i := range m.nodes {
		if m.nodes[i].shortestPath == noDirection {
			continue // no claim to check: unreachable, dead, or the destination itself
		}
		seen := map[int]bool{i: true}
		cur := i
		steps := 0
		for m.nodes[cur].shortestPath != noDirection {
			cur = m.nodes[cur].neighbours[m.nodes[cur].shortestPath]
			require.False(t, seen[cur], "shortestPath chain from %d cycles back to %d", i, cur)
			seen[cur] = true
			steps++
			require.LessOrEqual(t, steps, len(m.nodes), "shortestPath chain from %d does not terminate within |V| steps", i)
		}
		require.Equal(t, m.endIndex, cur, "shortestPath chain from %d does not terminate at the destination", i)
	}

	for i := range m.nodes {
		if right := m.nodes[i].neighbours[East]; right != noIndex {
			for _, o := range m.obstacles {
				require.False(t, hLineOverlapsObstacle(m.nodes[i].x, m.nodes[i].y, m.nodes[right].x, o),
					"edge %d->%d overlaps obstacle %+v", i, right, o)
			}
		}
		if down := m.nodes[i].neighbours[South]; down != noIndex {
			for _, o := range m.obstacles {
				require.False(t, vLineOverlapsObstacle(m.nodes[i].x, m.nodes[i].y, m.nodes[down].y, o),
					"edge %d->%d overlaps obstacle %+v", i, down, o)
			}
		}
	}
}
