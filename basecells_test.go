package h3grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseCellTableTotals(t *testing.T) {
	pentagons := 0
	polar := 0
	for i := 0; i < NUM_BASE_CELLS; i++ {
		if baseCellData[i].isPentagon {
			pentagons++
		}
		if baseCellData[i].isPolarPentagon {
			polar++
		}
	}

	assert.Equal(t, NUM_BASE_CELLS, 122)
	assert.Equal(t, NUM_PENTAGONS, pentagons, "expected exactly twelve pentagon base cells")
	assert.Equal(t, 2, polar, "expected exactly two polar pentagon base cells")
}

func TestFaceIjkBaseCellsCoversEveryFaceOrigin(t *testing.T) {
	for face := 0; face < NUM_ICOSA_FACES; face++ {
		orient := faceIjkBaseCells[face][0][0][0]
		assert.GreaterOrEqual(t, orient.baseCell, 0, "face %d origin must resolve to a base cell", face)
		assert.Less(t, orient.baseCell, NUM_BASE_CELLS)
	}
}

func TestFaceIjkToBaseCellRoundTrip(t *testing.T) {
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		home := baseCellData[bc].homeFijk
		got := _faceIjkToBaseCell(&home)
		assert.Equal(t, bc, got, "base cell %d's own home FaceIJK must resolve back to itself", bc)
		assert.Equal(t, 0, _faceIjkToBaseCellCCWrot60(&home), "a base cell's home face carries no rotation")
	}
}

func TestIsBaseCellPentagonMatchesPolarSubset(t *testing.T) {
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		if _isBaseCellPolarPentagon(bc) {
			assert.True(t, _isBaseCellPentagon(bc), "a polar pentagon must also be a pentagon")
		}
	}
}

func TestBaseCellIsCwOffsetOnlyAppliesToPolarPentagons(t *testing.T) {
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		if !_isBaseCellPolarPentagon(bc) {
			assert.False(t, _baseCellIsCwOffset(bc, baseCellData[bc].homeFijk.face))
			continue
		}
		assert.False(t, _baseCellIsCwOffset(bc, baseCellData[bc].homeFijk.face), "no offset on the home face itself")
	}
}

func TestDigitRotationSixStepsIsIdentity(t *testing.T) {
	for d := CENTER_DIGIT; d <= IJ_AXES_DIGIT; d++ {
		got := d
		for i := 0; i < 6; i++ {
			got = _rotate60ccw(got)
		}
		assert.Equal(t, d, got, "six CCW 60 degree digit rotations must return to the original digit")
	}
}

func TestDigitRotationCwIsCcwInverse(t *testing.T) {
	for d := CENTER_DIGIT; d <= IJ_AXES_DIGIT; d++ {
		assert.Equal(t, d, _rotate60cw(_rotate60ccw(d)))
		assert.Equal(t, d, _rotate60ccw(_rotate60cw(d)))
	}
}
