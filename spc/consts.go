package spc

const (
	// d2 for moving ranges of two consecutive points
	MovingRangeD2 = 1.128

	SigmaMultiplier = 3.0

	MinSubgroupSize = 2
	MaxSubgroupSize = 10

	MinMovingRangeSamples = 2
	MinSamples            = 1
)

// Control chart coefficients indexed by subgroup size n. Entries for n < 2
// are unused.
var (
	//               n:  0  1      2      3      4      5      6      7      8      9     10
	A2 = [...]float64{0, 0, 1.880, 1.023, 0.729, 0.577, 0.483, 0.419, 0.373, 0.337, 0.308}
	D3 = [...]float64{0, 0, 0, 0, 0, 0, 0, 0.076, 0.136, 0.184, 0.223}
	D4 = [...]float64{0, 0, 3.267, 2.575, 2.282, 2.115, 2.004, 1.924, 1.864, 1.816, 1.777}

	//               n:  0  1       2       3       4       5       6       7       8       9      10      11      12      13      14      15
	C4 = [...]float64{0, 0, 0.7979, 0.8862, 0.9213, 0.9400, 0.9515, 0.9594, 0.9650, 0.9693, 0.9727, 0.9754, 0.9776, 0.9794, 0.9810, 0.9823}
	A3 = [...]float64{0, 0, 2.659, 1.954, 1.628, 1.427, 1.287, 1.182, 1.099, 1.032, 0.975, 0.927, 0.886, 0.850, 0.817, 0.789}
	B3 = [...]float64{0, 0, 0, 0, 0, 0, 0.030, 0.118, 0.185, 0.239, 0.284, 0.321, 0.354, 0.382, 0.406, 0.428}
	B4 = [...]float64{0, 0, 3.267, 2.568, 2.266, 2.089, 1.970, 1.882, 1.815, 1.761, 1.716, 1.679, 1.646, 1.618, 1.594, 1.572}
	B5 = [...]float64{0, 0, 0, 0, 0, 0, 0.029, 0.113, 0.179, 0.232, 0.276, 0.313, 0.346, 0.374, 0.399, 0.421}
	B6 = [...]float64{0, 0, 2.606, 2.276, 2.088, 1.964, 1.874, 1.806, 1.751, 1.707, 1.669, 1.637, 1.610, 1.585, 1.563, 1.544}
)
