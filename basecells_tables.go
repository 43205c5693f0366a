package h3grid

// baseCellData records the home face and coordinate of every base cell,
// along with whether it is a pentagon and whether it is one of the two
// polar pentagons.
var baseCellData = [NUM_BASE_CELLS]BaseCellData{
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 0
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 1
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 2
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 3
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 4
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 5
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 6
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 7
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 8
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 9
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 10
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 11
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 12
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 13
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 14
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 15
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 16
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 17
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 18
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{i: 0, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 19
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 20
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 21
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 22
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 23
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 24
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 25
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 26
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 27
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 28
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 29
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 30
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 31
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 32
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 33
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 34
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 35
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 36
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 37
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 38
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 39
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 40
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 41
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 42
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 43
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 44
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 45
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 46
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 47
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 48
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 49
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 50
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 51
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 52
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 53
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 54
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 55
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 56
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 57
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 58
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 59
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 60
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 61
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 62
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 63
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 64
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 65
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 66
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 67
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 68
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 69
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 70
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 71
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 72
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 73
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 74
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 75
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 76
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{i: 1, j: 0, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 77
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{i: 0, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 78
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{i: 0, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 79
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{i: 0, j: 1, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 80
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 81
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 82
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{i: 0, j: 1, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 83
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 84
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{i: 0, j: 1, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 85
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 86
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{i: 0, j: 1, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 87
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 88
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{i: 0, j: 1, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 89
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 90
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 91
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 92
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 93
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 94
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 95
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 96
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 97
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 98
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 99
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{i: 0, j: 1, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 100
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{i: 0, j: 1, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 101
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{i: 0, j: 1, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 102
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{i: 0, j: 1, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 103
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{i: 0, j: 1, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 104
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{i: 1, j: 0, k: 1}}, isPentagon: false, isPolarPentagon: false}, // base cell 105
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 106
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 107
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 108
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{i: 1, j: 1, k: 0}}, isPentagon: false, isPolarPentagon: false}, // base cell 109
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{i: 0, j: 0, k: 2}}, isPentagon: true, isPolarPentagon: false}, // base cell 110
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{i: 0, j: 0, k: 2}}, isPentagon: true, isPolarPentagon: true}, // base cell 111
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{i: 0, j: 0, k: 2}}, isPentagon: true, isPolarPentagon: false}, // base cell 112
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{i: 0, j: 0, k: 2}}, isPentagon: true, isPolarPentagon: false}, // base cell 113
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{i: 0, j: 0, k: 2}}, isPentagon: true, isPolarPentagon: false}, // base cell 114
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{i: 0, j: 0, k: 2}}, isPentagon: true, isPolarPentagon: false}, // base cell 115
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{i: 0, j: 0, k: 2}}, isPentagon: true, isPolarPentagon: false}, // base cell 116
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{i: 0, j: 0, k: 2}}, isPentagon: true, isPolarPentagon: false}, // base cell 117
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{i: 0, j: 0, k: 2}}, isPentagon: true, isPolarPentagon: false}, // base cell 118
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{i: 0, j: 0, k: 2}}, isPentagon: true, isPolarPentagon: false}, // base cell 119
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{i: 0, j: 0, k: 2}}, isPentagon: true, isPolarPentagon: false}, // base cell 120
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{i: 0, j: 0, k: 2}}, isPentagon: true, isPolarPentagon: true}, // base cell 121
}

// faceIjkBaseCells maps every face and resolution-0 IJK coordinate within
// the face's home patch to its base cell number and the count of ccw 60
// degree rotations needed to align the face's local frame with the base
// cell's home face frame.
var faceIjkBaseCells = [NUM_ICOSA_FACES][3][3][3]BaseCellOrient{
	{ // face 0
		{
			{{baseCell: 0, ccwRot60: 0}, {baseCell: 22, ccwRot60: 0}, {baseCell: 110, ccwRot60: 0}},
			{{baseCell: 21, ccwRot60: 0}, {baseCell: 80, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 110, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 20, ccwRot60: 0}, {baseCell: 81, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 82, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 110, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 1
		{
			{{baseCell: 1, ccwRot60: 0}, {baseCell: 25, ccwRot60: 0}, {baseCell: 111, ccwRot60: 0}},
			{{baseCell: 24, ccwRot60: 0}, {baseCell: 83, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 110, ccwRot60: 1}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 23, ccwRot60: 0}, {baseCell: 84, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 81, ccwRot60: 1}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 110, ccwRot60: 1}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 2
		{
			{{baseCell: 2, ccwRot60: 0}, {baseCell: 28, ccwRot60: 0}, {baseCell: 111, ccwRot60: 1}},
			{{baseCell: 27, ccwRot60: 0}, {baseCell: 85, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 111, ccwRot60: 1}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 26, ccwRot60: 0}, {baseCell: 86, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 84, ccwRot60: 1}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 111, ccwRot60: 1}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 3
		{
			{{baseCell: 3, ccwRot60: 0}, {baseCell: 31, ccwRot60: 0}, {baseCell: 112, ccwRot60: 0}},
			{{baseCell: 30, ccwRot60: 0}, {baseCell: 87, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 112, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 29, ccwRot60: 0}, {baseCell: 88, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 86, ccwRot60: 1}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 111, ccwRot60: 2}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 4
		{
			{{baseCell: 4, ccwRot60: 0}, {baseCell: 34, ccwRot60: 0}, {baseCell: 112, ccwRot60: 1}},
			{{baseCell: 33, ccwRot60: 0}, {baseCell: 89, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 112, ccwRot60: 1}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 32, ccwRot60: 0}, {baseCell: 82, ccwRot60: 5}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 88, ccwRot60: 1}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 112, ccwRot60: 1}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 5
		{
			{{baseCell: 5, ccwRot60: 0}, {baseCell: 37, ccwRot60: 0}, {baseCell: 113, ccwRot60: 0}},
			{{baseCell: 36, ccwRot60: 0}, {baseCell: 80, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 113, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 35, ccwRot60: 0}, {baseCell: 90, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 91, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 113, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 6
		{
			{{baseCell: 6, ccwRot60: 0}, {baseCell: 40, ccwRot60: 0}, {baseCell: 114, ccwRot60: 0}},
			{{baseCell: 39, ccwRot60: 0}, {baseCell: 83, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 113, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 38, ccwRot60: 0}, {baseCell: 92, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 93, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 113, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 7
		{
			{{baseCell: 7, ccwRot60: 0}, {baseCell: 43, ccwRot60: 0}, {baseCell: 114, ccwRot60: 0}},
			{{baseCell: 42, ccwRot60: 0}, {baseCell: 85, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 114, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 41, ccwRot60: 0}, {baseCell: 94, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 95, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 114, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 8
		{
			{{baseCell: 8, ccwRot60: 0}, {baseCell: 46, ccwRot60: 0}, {baseCell: 115, ccwRot60: 0}},
			{{baseCell: 45, ccwRot60: 0}, {baseCell: 87, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 115, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 44, ccwRot60: 0}, {baseCell: 96, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 97, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 114, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 9
		{
			{{baseCell: 9, ccwRot60: 0}, {baseCell: 49, ccwRot60: 0}, {baseCell: 115, ccwRot60: 0}},
			{{baseCell: 48, ccwRot60: 0}, {baseCell: 89, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 115, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 47, ccwRot60: 0}, {baseCell: 98, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 99, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 115, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 10
		{
			{{baseCell: 10, ccwRot60: 0}, {baseCell: 52, ccwRot60: 0}, {baseCell: 116, ccwRot60: 0}},
			{{baseCell: 51, ccwRot60: 0}, {baseCell: 100, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 116, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 50, ccwRot60: 0}, {baseCell: 92, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 91, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 116, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 11
		{
			{{baseCell: 11, ccwRot60: 0}, {baseCell: 55, ccwRot60: 0}, {baseCell: 117, ccwRot60: 0}},
			{{baseCell: 54, ccwRot60: 0}, {baseCell: 101, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 116, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 53, ccwRot60: 0}, {baseCell: 94, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 93, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 116, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 12
		{
			{{baseCell: 12, ccwRot60: 0}, {baseCell: 58, ccwRot60: 0}, {baseCell: 117, ccwRot60: 0}},
			{{baseCell: 57, ccwRot60: 0}, {baseCell: 102, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 117, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 56, ccwRot60: 0}, {baseCell: 96, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 95, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 117, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 13
		{
			{{baseCell: 13, ccwRot60: 0}, {baseCell: 61, ccwRot60: 0}, {baseCell: 118, ccwRot60: 0}},
			{{baseCell: 60, ccwRot60: 0}, {baseCell: 103, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 118, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 59, ccwRot60: 0}, {baseCell: 98, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 97, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 117, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 14
		{
			{{baseCell: 14, ccwRot60: 0}, {baseCell: 64, ccwRot60: 0}, {baseCell: 118, ccwRot60: 0}},
			{{baseCell: 63, ccwRot60: 0}, {baseCell: 104, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 118, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 62, ccwRot60: 0}, {baseCell: 90, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 99, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 118, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 15
		{
			{{baseCell: 15, ccwRot60: 0}, {baseCell: 67, ccwRot60: 0}, {baseCell: 119, ccwRot60: 0}},
			{{baseCell: 66, ccwRot60: 0}, {baseCell: 100, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 119, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 65, ccwRot60: 0}, {baseCell: 105, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 106, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 119, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 16
		{
			{{baseCell: 16, ccwRot60: 0}, {baseCell: 70, ccwRot60: 0}, {baseCell: 120, ccwRot60: 0}},
			{{baseCell: 69, ccwRot60: 0}, {baseCell: 101, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 119, ccwRot60: 5}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 68, ccwRot60: 0}, {baseCell: 106, ccwRot60: 5}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 107, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 119, ccwRot60: 5}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 17
		{
			{{baseCell: 17, ccwRot60: 0}, {baseCell: 73, ccwRot60: 0}, {baseCell: 120, ccwRot60: 5}},
			{{baseCell: 72, ccwRot60: 0}, {baseCell: 102, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 120, ccwRot60: 5}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 71, ccwRot60: 0}, {baseCell: 107, ccwRot60: 5}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 108, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 120, ccwRot60: 5}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 18
		{
			{{baseCell: 18, ccwRot60: 0}, {baseCell: 76, ccwRot60: 0}, {baseCell: 121, ccwRot60: 0}},
			{{baseCell: 75, ccwRot60: 0}, {baseCell: 103, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 121, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 74, ccwRot60: 0}, {baseCell: 108, ccwRot60: 5}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 109, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 120, ccwRot60: 4}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
	{ // face 19
		{
			{{baseCell: 19, ccwRot60: 0}, {baseCell: 79, ccwRot60: 0}, {baseCell: 121, ccwRot60: 5}},
			{{baseCell: 78, ccwRot60: 0}, {baseCell: 104, ccwRot60: 3}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 121, ccwRot60: 5}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 77, ccwRot60: 0}, {baseCell: 109, ccwRot60: 5}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: 105, ccwRot60: 1}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
		{
			{{baseCell: 121, ccwRot60: 5}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
			{{baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}, {baseCell: -1, ccwRot60: 0}},
		},
	},
}
