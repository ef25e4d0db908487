package spc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/spc-algorithms/common"
	"github.com/uyouii/spc-algorithms/model"
)

func assertFloatsInDelta(t *testing.T, expected, actual []float64) {
	t.Helper()
	require.Equal(t, len(expected), len(actual))
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], 0.00001, "index %v", i)
	}
}

func TestTransform(t *testing.T) {
	tt := []struct {
		name   string
		series model.Series
		chart  ChartType
		opts   []Option
		exp    []float64
	}{
		{name: "individuals", series: model.NewValueSeries(individuals...), chart: ChartXmRX,
			exp: individuals},
		{name: "moving range", series: model.NewValueSeries(individuals...), chart: ChartXmRmR,
			exp: []float64{0, 1, 1, 0, 1, 1, 2, 5}},
		{name: "subgroup mean r", series: model.NewGroupSeries(subgroupsOf5...), chart: ChartXbarRX,
			exp: []float64{20.4, 19.8, 20.8, 20.4}},
		{name: "subgroup mean s", series: model.NewGroupSeries(subgroupsOf3...), chart: ChartXbarSX,
			exp: []float64{2, 3, 4}},
		{name: "subgroup range", series: model.NewGroupSeries(subgroupsOf5...), chart: ChartXbarRR,
			exp: []float64{3, 2, 2, 3}},
		{name: "subgroup stddev", series: model.NewGroupSeries([]float64{2, 4, 4, 4, 5, 5, 7, 9}), chart: ChartXbarSS,
			opts: []Option{WithSubgroupSize(8)}, exp: []float64{2.13809}},
		{name: "p", series: model.NewValueSeries(defectives...), chart: ChartP, opts: []Option{WithSubgroupSize(100)},
			exp: []float64{0.05, 0.03, 0.04, 0.06, 0.05, 0.04}},
		{name: "np", series: model.NewValueSeries(defectives...), chart: ChartNP, opts: []Option{WithSubgroupSize(100)},
			exp: defectives},
		{name: "c", series: model.NewValueSeries(defects...), chart: ChartC,
			exp: defects},
		{name: "u", series: model.NewValueSeries(defectives...), chart: ChartU, opts: []Option{WithSubgroupSize(10)},
			exp: []float64{0.5, 0.3, 0.4, 0.6, 0.5, 0.4}},
		{name: "cusum", series: model.NewValueSeries(individuals...), chart: ChartCUSUM,
			exp: []float64{0, -1.875, -2.75, -2.625, -2.5, -3.375, -5.25, -5.125, 0}},
		{name: "cusum target", series: model.NewValueSeries(1, 2, 3), chart: ChartCUSUM, opts: []Option{WithTarget(1)},
			exp: []float64{0, 0, 1, 3}},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			data, err := Transform(tc.series, tc.chart, tc.opts...)
			require.NoError(t, err)
			assertFloatsInDelta(t, tc.exp, data)
		})
	}
}

func TestTransformDoesNotAliasInput(t *testing.T) {
	values := []float64{1, 2, 3}
	data, err := Transform(model.NewValueSeries(values...), ChartXmRX)
	require.NoError(t, err)
	data[0] = 100
	assert.Equal(t, 1.0, values[0])
}

func TestTransformCUSUMLength(t *testing.T) {
	for size := 2; size < 30; size++ {
		values := make([]float64, size)
		for i := range values {
			values[i] = math.Sin(float64(i))
		}
		data, err := Transform(model.NewValueSeries(values...), ChartCUSUM)
		require.NoError(t, err)
		assert.Len(t, data, size+1)
		assert.Equal(t, 0.0, data[0])
	}
}

func TestTransformErrors(t *testing.T) {
	tt := []struct {
		name   string
		series model.Series
		chart  ChartType
		opts   []Option
	}{
		{name: "empty", series: model.Series{}, chart: ChartXmRX},
		{name: "single point individuals", series: model.NewValueSeries(5), chart: ChartXmRX},
		{name: "single point moving range", series: model.NewValueSeries(5), chart: ChartXmRmR},
		{name: "single point cusum", series: model.NewValueSeries(5), chart: ChartCUSUM},
		{name: "subgroup size 15", series: model.NewGroupSeries(
			make([]float64, 15), make([]float64, 15), make([]float64, 15)), chart: ChartXbarRX},
		{name: "subgroup size 1", series: model.NewGroupSeries([]float64{1}, []float64{2}), chart: ChartXbarSS},
		{name: "explicit size out of range", series: model.NewGroupSeries(subgroupsOf3...), chart: ChartXbarRR,
			opts: []Option{WithSubgroupSize(11)}},
		{name: "subgroup length mismatch", series: model.NewGroupSeries([]float64{1, 2, 3}, []float64{1, 2}),
			chart: ChartXbarRX},
		{name: "explicit size mismatch", series: model.NewGroupSeries(subgroupsOf3...), chart: ChartXbarRX,
			opts: []Option{WithSubgroupSize(4)}},
		{name: "flat series for subgroup chart", series: model.NewValueSeries(1, 2, 3), chart: ChartXbarSX},
		{name: "subgroups for individuals", series: model.NewGroupSeries(subgroupsOf3...), chart: ChartXmRX},
		{name: "subgroups for c", series: model.NewGroupSeries(subgroupsOf3...), chart: ChartC},
		{name: "individuals with size", series: model.NewValueSeries(1, 2, 3), chart: ChartXmRX,
			opts: []Option{WithSubgroupSize(5)}},
		{name: "p without size", series: model.NewValueSeries(defectives...), chart: ChartP},
		{name: "u without size", series: model.NewValueSeries(defectives...), chart: ChartU},
		{name: "negative count", series: model.NewValueSeries(1, -1, 2), chart: ChartC},
		{name: "count above n", series: model.NewValueSeries(1, 11, 2), chart: ChartNP,
			opts: []Option{WithSubgroupSize(10)}},
		{name: "nan value", series: model.NewValueSeries(1, math.NaN(), 2), chart: ChartXmRX},
		{name: "inf in subgroup", series: model.NewGroupSeries([]float64{1, 2}, []float64{math.Inf(1), 2}),
			chart: ChartXbarRX},
		{name: "mixed series", series: model.Series{Values: []float64{1, 2}, Groups: [][]float64{{1, 2}}},
			chart: ChartXbarRX},
		{name: "unknown chart", series: model.NewValueSeries(1, 2, 3), chart: ChartType(99)},
		{name: "zero size option", series: model.NewValueSeries(1, 2, 3), chart: ChartC,
			opts: []Option{WithSubgroupSize(0)}},
		{name: "nan target", series: model.NewValueSeries(1, 2, 3), chart: ChartCUSUM,
			opts: []Option{WithTarget(math.NaN())}},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Transform(tc.series, tc.chart, tc.opts...)
			require.Error(t, err)
			assert.True(t, common.IsDomainError(err), "%v", err)

			_, err = Estimate(tc.series, tc.chart, tc.opts...)
			assert.True(t, common.IsDomainError(err), "%v", err)
		})
	}
}
