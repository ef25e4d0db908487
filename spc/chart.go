package spc

import (
	"strings"

	"github.com/uyouii/spc-algorithms/common"
	"github.com/uyouii/spc-algorithms/model"
)

type ChartType int

const (
	ChartXmRX ChartType = iota + 1
	ChartXmRmR
	ChartXbarRX
	ChartXbarRR
	ChartXbarSX
	ChartXbarSS
	ChartP
	ChartNP
	ChartC
	ChartU
	ChartCUSUM
)

// how a chart uses the subgroup size n
type sizePolicy int

const (
	// flat series, n must be 1
	sizeSingle sizePolicy = iota
	// subgroup series, n indexes the coefficient tables
	sizeTable
	// flat series of counts out of n inspected units, n >= 2
	sizeSample
	// flat series, n is not used
	sizeAny
)

type estimatorFunc func(series model.Series, n int) model.ControlLimits

type transformFunc func(series model.Series, n int, opts *options) []float64

type chart struct {
	name       string
	aliases    []string
	sizes      sizePolicy
	minSamples int
	// counts must be >= 0, and <= n when boundedByN
	counts     bool
	boundedByN bool
	estimate   estimatorFunc
	transform  transformFunc
}

var charts = map[ChartType]*chart{
	ChartXmRX: {
		name: "X mR - X", aliases: []string{"x", "xmr", "x-mr", "individuals"},
		sizes: sizeSingle, minSamples: MinMovingRangeSamples,
		estimate: estimateXmRX, transform: transformNone,
	},
	ChartXmRmR: {
		name: "X mR - mR", aliases: []string{"mr", "moving-range"},
		sizes: sizeSingle, minSamples: MinMovingRangeSamples,
		estimate: estimateXmRmR, transform: transformMovingRange,
	},
	ChartXbarRX: {
		name: "Xbar R - X", aliases: []string{"xbar-r", "xbarr", "xbar-r-x"},
		sizes: sizeTable, minSamples: MinSamples,
		estimate: estimateXbarRX, transform: transformSubgroupMean,
	},
	ChartXbarRR: {
		name: "Xbar R - R", aliases: []string{"r", "range", "xbar-r-r"},
		sizes: sizeTable, minSamples: MinSamples,
		estimate: estimateXbarRR, transform: transformSubgroupRange,
	},
	ChartXbarSX: {
		name: "Xbar S - X", aliases: []string{"xbar-s", "xbars", "xbar-s-x"},
		sizes: sizeTable, minSamples: MinSamples,
		estimate: estimateXbarSX, transform: transformSubgroupMean,
	},
	ChartXbarSS: {
		name: "Xbar S - S", aliases: []string{"s", "stddev", "xbar-s-s"},
		sizes: sizeTable, minSamples: MinSamples,
		estimate: estimateXbarSS, transform: transformSubgroupStdDev,
	},
	ChartP: {
		name: "p", aliases: []string{"proportion"},
		sizes: sizeSample, minSamples: MinSamples, counts: true, boundedByN: true,
		estimate: estimateP, transform: transformPerUnit,
	},
	ChartNP: {
		name: "np", aliases: []string{"number-defective"},
		sizes: sizeSample, minSamples: MinSamples, counts: true, boundedByN: true,
		estimate: estimateNP, transform: transformNone,
	},
	ChartC: {
		name: "c", aliases: []string{"count", "defects"},
		sizes: sizeAny, minSamples: MinSamples, counts: true,
		estimate: estimateC, transform: transformNone,
	},
	ChartU: {
		name: "u", aliases: []string{"defects-per-unit"},
		sizes: sizeSample, minSamples: MinSamples, counts: true,
		estimate: estimateU, transform: transformPerUnit,
	},
	ChartCUSUM: {
		name: "CUSUM", aliases: []string{"cusum", "cumulative-sum"},
		sizes: sizeAny, minSamples: MinMovingRangeSamples,
		estimate: estimateCUSUM, transform: transformCUSUM,
	},
}

func AllChartTypes() []ChartType {
	return []ChartType{ChartXmRX, ChartXmRmR, ChartXbarRX, ChartXbarRR, ChartXbarSX, ChartXbarSS,
		ChartP, ChartNP, ChartC, ChartU, ChartCUSUM}
}

func (c ChartType) String() string {
	if ch, ok := charts[c]; ok {
		return ch.name
	}
	return "unknown"
}

func (c ChartType) Valid() bool {
	_, ok := charts[c]
	return ok
}

// IsGrouped reports whether the chart is built from subgroups.
func (c ChartType) IsGrouped() bool {
	ch, ok := charts[c]
	return ok && ch.sizes == sizeTable
}

// ParseChartType accepts a chart display name, e.g. "Xbar R - X", or one of
// its aliases, case-insensitive.
func ParseChartType(s string) (ChartType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, chartType := range AllChartTypes() {
		ch := charts[chartType]
		if strings.ToLower(ch.name) == key {
			return chartType, nil
		}
		for _, alias := range ch.aliases {
			if alias == key {
				return chartType, nil
			}
		}
	}
	return 0, common.NewDomainError("unknown chart type %q", s)
}

func lookupChart(c ChartType) (*chart, error) {
	ch, ok := charts[c]
	if !ok {
		return nil, common.NewDomainError("unknown chart type %d", int(c))
	}
	return ch, nil
}
