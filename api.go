package h3grid

import "math"

// This file collects the external interface described for the grid: the
// handful of entry points callers are expected to use directly, wrapping
// the bit-packing and projection internals with ordinary Go error returns
// instead of the bare H3_NULL sentinel the lower layers use internally.

// GeoToCell encodes a latitude/longitude (in radians) into the H3 index of
// the cell containing it at the given resolution.
func GeoToCell(g GeoCoord, res int) (H3Index, error) {
	if res < 0 || res > MAX_H3_RES {
		return H3_NULL, ErrInvalidResolution
	}

	h := GeoToH3(&g, res)
	if h == H3_NULL {
		if math.IsNaN(g.lat) || math.IsInf(g.lat, 0) || math.IsNaN(g.lon) || math.IsInf(g.lon, 0) {
			return H3_NULL, ErrInvalidGeoCoord
		}
		return H3_NULL, ErrCellEncodingFailed
	}

	return h, nil
}

// CellToGeo returns the spherical coordinates of the center of a cell.
func CellToGeo(h H3Index) (GeoCoord, error) {
	if !h.IsValid() {
		return GeoCoord{}, ErrInvalidIndex
	}

	var g GeoCoord
	H3ToGeo(h, &g)
	return g, nil
}

// CellToBoundary returns the polygon boundary of a cell in spherical
// coordinates, ordered counterclockwise starting from the 0 vertex.
func CellToBoundary(h H3Index) (GeoBoundary, error) {
	if !h.IsValid() {
		return GeoBoundary{}, ErrInvalidIndex
	}

	var gb GeoBoundary
	H3ToGeoBoundary(h, &gb)
	return gb, nil
}

// IsPentagon reports whether a cell is one of the twelve pentagons.
func IsPentagon(h H3Index) (bool, error) {
	if !h.IsValid() {
		return false, ErrInvalidIndex
	}
	return h.IsPentagon(), nil
}

// Resolution returns the resolution (0-15) of a cell.
func Resolution(h H3Index) (int, error) {
	if !h.IsValid() {
		return -1, ErrInvalidIndex
	}
	return h.GetResolution(), nil
}

// BaseCell returns the base cell number (0-121) a cell descends from.
func BaseCell(h H3Index) (int, error) {
	if !h.IsValid() {
		return -1, ErrInvalidIndex
	}
	return h.GetBaseCell(), nil
}
