package spc

import (
	"github.com/uyouii/spc-algorithms/common"
	"github.com/uyouii/spc-algorithms/model"
)

// Transform returns the series the chart plots and the rules scan.
func Transform(series model.Series, chartType ChartType, opts ...Option) ([]float64, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	ch, n, err := prepare(series, chartType, o)
	if err != nil {
		return nil, err
	}
	return ch.transform(series, n, o), nil
}

// prepare resolves the subgroup size and checks the series against the
// chart's requirements.
func prepare(series model.Series, chartType ChartType, o *options) (*chart, int, error) {
	ch, err := lookupChart(chartType)
	if err != nil {
		return nil, 0, err
	}
	n := resolveSubgroupSize(series, o)
	if err := validateSeries(ch, series, n); err != nil {
		return nil, 0, err
	}
	return ch, n, nil
}

func resolveSubgroupSize(series model.Series, o *options) int {
	if o.subgroupSize > 0 {
		return o.subgroupSize
	}
	if series.IsGrouped() {
		return len(series.Groups[0])
	}
	return 1
}

func validateSeries(ch *chart, series model.Series, n int) error {
	if series.IsMixed() {
		return common.NewDomainError("series mixes values and subgroups")
	}
	if series.IsEmpty() {
		return common.NewDomainError("empty series")
	}
	if series.Len() < ch.minSamples {
		return common.NewDomainError("%v chart needs at least %v samples, got %v",
			ch.name, ch.minSamples, series.Len())
	}

	switch ch.sizes {
	case sizeTable:
		if !series.IsGrouped() {
			return common.NewDomainError("%v chart needs subgroups", ch.name)
		}
		if n < MinSubgroupSize || n > MaxSubgroupSize {
			return common.NewDomainError("%v chart supports subgroup size in [%v,%v], got %v",
				ch.name, MinSubgroupSize, MaxSubgroupSize, n)
		}
		for i, group := range series.Groups {
			if len(group) != n {
				return common.NewDomainError("subgroup %v has %v values, expected %v", i, len(group), n)
			}
			if err := validateValues(group); err != nil {
				return err
			}
		}
		return nil
	case sizeSingle:
		if n != 1 {
			return common.NewDomainError("%v chart needs subgroup size 1, got %v", ch.name, n)
		}
	case sizeSample:
		if n < MinSubgroupSize {
			return common.NewDomainError("%v chart needs subgroup size >= %v, got %v", ch.name, MinSubgroupSize, n)
		}
	}

	if series.IsGrouped() {
		return common.NewDomainError("%v chart does not accept subgroups", ch.name)
	}
	if err := validateValues(series.Values); err != nil {
		return err
	}
	if !ch.counts {
		return nil
	}
	for i, v := range series.Values {
		if v < 0 {
			return common.NewDomainError("sample %v: count %v is negative", i, v)
		}
		if ch.boundedByN && v > float64(n) {
			return common.NewDomainError("sample %v: count %v exceeds subgroup size %v", i, v, n)
		}
	}
	return nil
}

func validateValues(values []float64) error {
	for i, v := range values {
		if !isFinite(v) {
			return common.NewDomainError("sample %v is not a finite number", i)
		}
	}
	return nil
}

func transformNone(series model.Series, n int, opts *options) []float64 {
	res := make([]float64, len(series.Values))
	copy(res, series.Values)
	return res
}

// transformMovingRange keeps a leading 0 so indices line up with the raw
// series.
func transformMovingRange(series model.Series, n int, opts *options) []float64 {
	return append([]float64{0}, movingRanges(series.Values)...)
}

func transformSubgroupMean(series model.Series, n int, opts *options) []float64 {
	res := make([]float64, len(series.Groups))
	for i, group := range series.Groups {
		res[i] = mean(group)
	}
	return res
}

func transformSubgroupRange(series model.Series, n int, opts *options) []float64 {
	res := make([]float64, len(series.Groups))
	for i, group := range series.Groups {
		res[i] = subgroupRange(group)
	}
	return res
}

func transformSubgroupStdDev(series model.Series, n int, opts *options) []float64 {
	res := make([]float64, len(series.Groups))
	for i, group := range series.Groups {
		res[i] = sampleStdDev(group)
	}
	return res
}

func transformPerUnit(series model.Series, n int, opts *options) []float64 {
	res := make([]float64, len(series.Values))
	for i, v := range series.Values {
		res[i] = v / float64(n)
	}
	return res
}

// transformCUSUM returns S_0 = 0, S_m = sum_{i<m} (x_i - target).
func transformCUSUM(series model.Series, n int, opts *options) []float64 {
	target := mean(series.Values)
	if opts != nil && opts.hasTarget {
		target = opts.target
	}
	res := make([]float64, len(series.Values)+1)
	for i, v := range series.Values {
		res[i+1] = res[i] + (v - target)
	}
	return res
}
