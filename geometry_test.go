package pathmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHLineOverlapsObstacle(t *testing.T) {
	o := Obstacle{X: 10, Y: 10, W: 10, H: 10} // 10..20, 10..20

	require.True(t, hLineOverlapsObstacle(0, 15, 30, o), "segment crossing the interior should overlap")
	require.False(t, hLineOverlapsObstacle(0, 10, 30, o), "segment running along the top edge should not overlap")
	require.False(t, hLineOverlapsObstacle(0, 20, 30, o), "segment running along the bottom edge should not overlap")
	require.False(t, hLineOverlapsObstacle(0, 15, 10, o), "segment only touching the left edge should not overlap")
}

func TestHLineTouchesObstacle(t *testing.T) {
	o := Obstacle{X: 10, Y: 10, W: 10, H: 10}

	require.True(t, hLineTouchesObstacle(0, 10, 30, o), "segment along the top edge touches")
	require.True(t, hLineTouchesObstacle(0, 20, 30, o), "segment along the bottom edge touches")
	require.False(t, hLineTouchesObstacle(0, 9.999, 30, o), "segment just above the top edge does not touch")
}

func TestVLineOverlapsObstacle(t *testing.T) {
	o := Obstacle{X: 10, Y: 10, W: 10, H: 10}

	require.True(t, vLineOverlapsObstacle(15, 0, 30, o))
	require.False(t, vLineOverlapsObstacle(10, 0, 30, o), "segment along the left edge should not overlap")
	require.False(t, vLineOverlapsObstacle(20, 0, 30, o), "segment along the right edge should not overlap")
}

func TestCoordinateIsBlocked(t *testing.T) {
	m := &Map{obstacles: []Obstacle{{X: 0, Y: 0, W: 10, H: 10}}}

	require.True(t, m.coordinateIsBlocked(5, 5))
	require.False(t, m.coordinateIsBlocked(0, 5), "boundary coordinate is not strictly inside")
	require.False(t, m.coordinateIsBlocked(10, 10))
}

func TestManhattan(t *testing.T) {
	require.InDelta(t, 7.0, manhattan(0, 0, 3, 4), 1e-9)
	require.InDelta(t, 7.0, manhattan(3, 4, 0, 0), 1e-9)
}
