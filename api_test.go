package h3grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoToCellRejectsOutOfRangeResolution(t *testing.T) {
	var g GeoCoord
	g.SetGeoDegs(37.0, -122.0)

	_, err := GeoToCell(g, MAX_H3_RES+1)
	assert.ErrorIs(t, err, ErrInvalidResolution)

	_, err = GeoToCell(g, -1)
	assert.ErrorIs(t, err, ErrInvalidResolution)
}

func TestGeoToCellRejectsNonFiniteCoordinate(t *testing.T) {
	g := GeoCoord{}
	g.setGeoRads(math.NaN(), 0)

	_, err := GeoToCell(g, 5)
	assert.ErrorIs(t, err, ErrInvalidGeoCoord)
}

func TestGeoToCellThenCellToGeoRoundTrips(t *testing.T) {
	var g GeoCoord
	g.SetGeoDegs(37.0, -122.0)

	for res := 0; res <= MAX_H3_RES; res++ {
		h, err := GeoToCell(g, res)
		require.NoError(t, err)
		require.NotEqual(t, H3_NULL, h)

		got, err := CellToGeo(h)
		require.NoError(t, err)

		// the cell center need not equal the query point, but it must be
		// close: the cell containing (lat,lon) shrinks with resolution.
		d := PointDistKm(&g, &got)
		assert.Less(t, d, 2000.0, "resolution %d cell center too far from query point", res)
	}
}

func TestResolutionAndBaseCellRoundTripThroughIndex(t *testing.T) {
	var g GeoCoord
	g.SetGeoDegs(10, 20)

	h, err := GeoToCell(g, 7)
	require.NoError(t, err)

	res, err := Resolution(h)
	require.NoError(t, err)
	assert.Equal(t, 7, res)

	bc, err := BaseCell(h)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, bc, 0)
	assert.Less(t, bc, NUM_BASE_CELLS)
}

func TestWrapperFunctionsRejectInvalidIndex(t *testing.T) {
	bogus := H3Index(0)

	_, err := CellToGeo(bogus)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, err = CellToBoundary(bogus)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, err = IsPentagon(bogus)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, err = Resolution(bogus)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, err = BaseCell(bogus)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestCellToBoundaryVertexCountMatchesShape(t *testing.T) {
	var g GeoCoord
	g.SetGeoDegs(37.0, -122.0)

	h, err := GeoToCell(g, 5)
	require.NoError(t, err)

	gb, err := CellToBoundary(h)
	require.NoError(t, err)

	isPent, err := IsPentagon(h)
	require.NoError(t, err)

	if isPent {
		assert.GreaterOrEqual(t, gb.NumVerts(), NUM_PENT_VERTS)
	} else {
		assert.GreaterOrEqual(t, gb.NumVerts(), 6)
	}
	assert.LessOrEqual(t, gb.NumVerts(), MAX_CELL_BNDRY_VERTS)
}
