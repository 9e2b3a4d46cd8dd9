package pathmap

import (
	"errors"
	"math"
)

// Numeric tolerances, grounded on spec.md §6: "Numeric tolerance ε = 2⁻²⁰;
// map-border thickness = 2⁻⁴; pad beyond map when obstacle protrudes = 4·ε."
const (
	epsilon          = 1.0 / 1048576.0 // 2^-20
	borderThickness  = 1.0 / 16.0      // 2^-4
	obstacleClipPad  = 4 * epsilon
	coordinateEqTol  = epsilon
)

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// Sentinel errors for caller contract violations (spec.md §7). These are
// never returned from a public method: per the teacher's functional-option
// idiom (dijkstra.WithMaxDistance, dijkstra.WithInfEdgeThreshold), a
// contract violation is a programmer error and is surfaced by panicking
// with one of these (ErrStartEqualsEnd as is, the others wrapped with
// context via fmt.Errorf's %w) as the payload, not by an error return that invites a
// retry loop the spec says does not exist.
var (
	// ErrStartEqualsEnd indicates New was called with identical start and
	// end coordinates.
	ErrStartEqualsEnd = errors.New("pathmap: start and end point must not have identical coordinates")

	// ErrInvalidSplitCoordinate indicates splitEdge was asked to cut an
	// edge at a coordinate that does not lie strictly between its
	// endpoints along the split direction's axis.
	ErrInvalidSplitCoordinate = errors.New("pathmap: split coordinate does not lie strictly between the edge's endpoints")

	// ErrMergeNotDegreeTwo indicates mergeNode was called on a node that
	// does not have exactly two neighbours in opposite, collinear
	// directions (North+South or East+West).
	ErrMergeNotDegreeTwo = errors.New("pathmap: node cannot be merged: it does not have exactly two collinear opposite neighbours")

	// ErrNaNSortKey indicates a NaN value reached the blocked-edge min-heap
	// ordering, which the edge comparator refuses to compare.
	ErrNaNSortKey = errors.New("pathmap: NaN encountered as an edge sort key")

	// ErrCornerCircuitMismatch indicates the corner-circuit construction
	// in InsertObstacle tried to pop a blocked edge from an empty heap,
	// i.e. expected more blocked edges than Phase 1 recorded.
	// This signals a bug in the obstacle engine itself, not a caller
	// error (spec.md §7, "internal structural panics").
	ErrCornerCircuitMismatch = errors.New("pathmap: corner circuit construction produced an unexpected node count")
)
