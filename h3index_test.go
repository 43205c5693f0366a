package h3grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexagonChildCountIsSevenPerResolutionStep(t *testing.T) {
	var g GeoCoord
	g.SetGeoDegs(37.0, -122.0)

	h, err := GeoToCell(g, 3)
	require.NoError(t, err)
	require.False(t, h.IsPentagon())

	children := h.ToChildren(5)
	assert.Len(t, children, 7*7)
	for _, c := range children {
		assert.True(t, c.IsValid())
		assert.Equal(t, 5, c.GetResolution())
	}
}

func TestPentagonChildCountExcludesDeletedKSubsequence(t *testing.T) {
	pentagon, ok := firstPentagonAtResolution(t, 1)
	require.True(t, ok, "expected to find at least one pentagon base cell")

	children := pentagon.ToChildren(2)
	assert.Len(t, children, 6, "a pentagon has six, not seven, children: the K-axis child is deleted")
	for _, c := range children {
		assert.True(t, c.IsValid())
	}
}

func TestToParentThenBackToSameResolutionIsIdentity(t *testing.T) {
	var g GeoCoord
	g.SetGeoDegs(-20.0, 140.0)

	h, err := GeoToCell(g, 6)
	require.NoError(t, err)

	parent := h.ToParent(3)
	require.NotEqual(t, H3_NULL, parent)
	assert.Equal(t, 3, parent.GetResolution())

	sameRes := parent.ToParent(3)
	assert.Equal(t, parent, sameRes)
}

func TestToParentOfFinerResolutionIsNull(t *testing.T) {
	var g GeoCoord
	g.SetGeoDegs(0, 0)

	h, err := GeoToCell(g, 2)
	require.NoError(t, err)

	assert.Equal(t, H3_NULL, h.ToParent(5))
}

func TestIsPentagonCountAtResolutionZero(t *testing.T) {
	pentagons := 0
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		h := setH3Index(0, bc, CENTER_DIGIT)
		if h.IsPentagon() {
			pentagons++
		}
	}
	assert.Equal(t, NUM_PENTAGONS, pentagons)
}

// firstPentagonAtResolution scans base cells for the first pentagon and
// returns its index at the given resolution.
func firstPentagonAtResolution(t *testing.T, res int) (H3Index, bool) {
	t.Helper()
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		if !_isBaseCellPentagon(bc) {
			continue
		}
		h := setH3Index(res, bc, CENTER_DIGIT)
		if h.IsValid() {
			return h, true
		}
	}
	return H3_NULL, false
}
