package pathmap

import (
	"fmt"
	"io"
	"strconv"
)

// Dump writes a line-based diagnostic record of the map to w: one line per
// node (x|y|N|E|S|W|shortestPath|cost, "-" for an absent neighbour or
// shortestPath), then a "#" separator line, then one line per obstacle
// (x|y|w|h). This is test/debugging tooling, not part of the stable
// contract (spec.md §6).
func (m *Map) Dump(w io.Writer) error {
	for i := range m.nodes {
		n := &m.nodes[i]
		if _, err := fmt.Fprintf(w, "%s|%s|%s|%s|%s|%s|%s|%s\n",
			formatFloat(n.x), formatFloat(n.y),
			formatNeighbour(n.neighbours[North]), formatNeighbour(n.neighbours[East]),
			formatNeighbour(n.neighbours[South]), formatNeighbour(n.neighbours[West]),
			formatDirection(n.shortestPath), formatFloat(n.cost),
		); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "#\n"); err != nil {
		return err
	}
	for _, o := range m.obstacles {
		if _, err := fmt.Fprintf(w, "%s|%s|%s|%s\n",
			formatFloat(o.X), formatFloat(o.Y), formatFloat(o.W), formatFloat(o.H)); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatNeighbour(idx int) string {
	if idx == noIndex {
		return "-"
	}
	return strconv.Itoa(idx)
}

func formatDirection(d Direction) string {
	if d == noDirection {
		return "-"
	}
	return strconv.Itoa(int(d))
}
