package spc

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func mean(data []float64) float64 {
	return stat.Mean(data, nil)
}

// grandMean is the mean of all observations of all subgroups.
func grandMean(groups [][]float64) float64 {
	sum, cnt := 0.0, 0
	for _, group := range groups {
		sum += floats.Sum(group)
		cnt += len(group)
	}
	return sum / float64(cnt)
}

func subgroupRange(group []float64) float64 {
	return floats.Max(group) - floats.Min(group)
}

// sampleStdDev uses the n-1 denominator.
func sampleStdDev(group []float64) float64 {
	return stat.StdDev(group, nil)
}

// movingRanges returns |x[i] - x[i-1]| for i >= 1.
func movingRanges(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}
	res := make([]float64, len(data)-1)
	for i := 1; i < len(data); i++ {
		res[i-1] = math.Abs(data[i] - data[i-1])
	}
	return res
}

func meanMovingRange(data []float64) float64 {
	return mean(movingRanges(data))
}

func clampLower(v, lower float64) float64 {
	return math.Max(v, lower)
}

func clampUpper(v, upper float64) float64 {
	return math.Min(v, upper)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
