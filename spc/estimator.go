package spc

import (
	"math"

	"github.com/uyouii/spc-algorithms/model"
	"gonum.org/v1/gonum/floats"
)

// Estimate returns the center line and control limits of the chart.
func Estimate(series model.Series, chartType ChartType, opts ...Option) (model.ControlLimits, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return model.ControlLimits{}, err
	}
	ch, n, err := prepare(series, chartType, o)
	if err != nil {
		return model.ControlLimits{}, err
	}
	return ch.estimate(series, n), nil
}

func estimateXmRX(series model.Series, n int) model.ControlLimits {
	center := mean(series.Values)
	sigma := meanMovingRange(series.Values) / MovingRangeD2
	return model.ControlLimits{
		Center: center,
		Lower:  center - SigmaMultiplier*sigma,
		Upper:  center + SigmaMultiplier*sigma,
	}
}

func estimateXmRmR(series model.Series, n int) model.ControlLimits {
	mrBar := meanMovingRange(series.Values)
	return model.ControlLimits{
		Center: mrBar,
		Lower:  0,
		Upper:  mrBar + SigmaMultiplier*mrBar/MovingRangeD2,
	}
}

func meanSubgroupRange(groups [][]float64) float64 {
	return mean(transformSubgroupRange(model.Series{Groups: groups}, 0, nil))
}

func meanSubgroupStdDev(groups [][]float64) float64 {
	return mean(transformSubgroupStdDev(model.Series{Groups: groups}, 0, nil))
}

func estimateXbarRX(series model.Series, n int) model.ControlLimits {
	center := grandMean(series.Groups)
	rBar := meanSubgroupRange(series.Groups)
	return model.ControlLimits{
		Center: center,
		Lower:  center - A2[n]*rBar,
		Upper:  center + A2[n]*rBar,
	}
}

func estimateXbarRR(series model.Series, n int) model.ControlLimits {
	rBar := meanSubgroupRange(series.Groups)
	return model.ControlLimits{
		Center: rBar,
		Lower:  D3[n] * rBar,
		Upper:  D4[n] * rBar,
	}
}

func estimateXbarSX(series model.Series, n int) model.ControlLimits {
	center := grandMean(series.Groups)
	sBar := meanSubgroupStdDev(series.Groups)
	return model.ControlLimits{
		Center: center,
		Lower:  center - A3[n]*sBar,
		Upper:  center + A3[n]*sBar,
	}
}

func estimateXbarSS(series model.Series, n int) model.ControlLimits {
	sBar := meanSubgroupStdDev(series.Groups)
	return model.ControlLimits{
		Center: sBar,
		Lower:  B3[n] * sBar,
		Upper:  B4[n] * sBar,
	}
}

// pBar is the overall fraction defective of k samples of n units.
func pBar(values []float64, n int) float64 {
	return floats.Sum(values) / (float64(n) * float64(len(values)))
}

func estimateP(series model.Series, n int) model.ControlLimits {
	p := pBar(series.Values, n)
	sigma := math.Sqrt(p * (1 - p) / float64(n))
	return model.ControlLimits{
		Center: p,
		Lower:  clampLower(p-SigmaMultiplier*sigma, 0),
		Upper:  clampUpper(p+SigmaMultiplier*sigma, 1),
	}
}

func estimateNP(series model.Series, n int) model.ControlLimits {
	p := pBar(series.Values, n)
	center := float64(n) * p
	sigma := math.Sqrt(float64(n) * p * (1 - p))
	return model.ControlLimits{
		Center: center,
		Lower:  clampLower(center-SigmaMultiplier*sigma, 0),
		Upper:  clampUpper(center+SigmaMultiplier*sigma, float64(n)),
	}
}

func estimateC(series model.Series, n int) model.ControlLimits {
	cBar := mean(series.Values)
	sigma := math.Sqrt(cBar)
	return model.ControlLimits{
		Center: cBar,
		Lower:  clampLower(cBar-SigmaMultiplier*sigma, 0),
		Upper:  cBar + SigmaMultiplier*sigma,
	}
}

func estimateU(series model.Series, n int) model.ControlLimits {
	uBar := floats.Sum(series.Values) / (float64(len(series.Values)) * float64(n))
	sigma := math.Sqrt(uBar / float64(n))
	return model.ControlLimits{
		Center: uBar,
		Lower:  clampLower(uBar-SigmaMultiplier*sigma, 0),
		Upper:  uBar + SigmaMultiplier*sigma,
	}
}

// estimateCUSUM has no symmetric band: the cumulated deviations are centered
// on 0 and both limits are absent.
func estimateCUSUM(series model.Series, n int) model.ControlLimits {
	return model.ControlLimits{
		Center: 0,
		Lower:  math.NaN(),
		Upper:  math.NaN(),
	}
}
