package model

import (
	"fmt"
	"math"

	jsoniter "github.com/json-iterator/go"
)

// Series is the charted input, either individual values or fixed size
// subgroups. Index order is time order.
type Series struct {
	Values []float64
	Groups [][]float64
}

func NewValueSeries(values ...float64) Series {
	return Series{Values: values}
}

func NewGroupSeries(groups ...[]float64) Series {
	return Series{Groups: groups}
}

func (s Series) IsGrouped() bool {
	return len(s.Groups) > 0
}

func (s Series) IsMixed() bool {
	return len(s.Groups) > 0 && len(s.Values) > 0
}

func (s Series) Len() int {
	if s.IsGrouped() {
		return len(s.Groups)
	}
	return len(s.Values)
}

func (s Series) IsEmpty() bool {
	return s.Len() == 0
}

func (s Series) DebugString() string {
	if s.IsGrouped() {
		return fmt.Sprintf("groups: %v, groupSize: %v", len(s.Groups), len(s.Groups[0]))
	}
	return fmt.Sprintf("values: %v", len(s.Values))
}

// ControlLimits holds the center line and control limits of a chart.
// An absent limit is NaN.
type ControlLimits struct {
	Center float64
	Lower  float64
	Upper  float64
}

func (l ControlLimits) HasLower() bool {
	return !math.IsNaN(l.Lower)
}

func (l ControlLimits) HasUpper() bool {
	return !math.IsNaN(l.Upper)
}

func (l ControlLimits) MarshalJSON() ([]byte, error) {
	out := struct {
		Center float64  `json:"center"`
		Lower  *float64 `json:"lower_limit"`
		Upper  *float64 `json:"upper_limit"`
	}{Center: l.Center}
	if l.HasLower() {
		lower := l.Lower
		out.Lower = &lower
	}
	if l.HasUpper() {
		upper := l.Upper
		out.Upper = &upper
	}
	return jsoniter.Marshal(out)
}

// Violation lists the indices at which a rule was observed to hold.
type Violation struct {
	Rule    string `json:"rule"`
	Indices []int  `json:"indices"`
}

// Violations keeps the rule order of the configured rule set.
type Violations []Violation

func (v Violations) Indices(rule string) []int {
	for _, violation := range v {
		if violation.Rule == rule {
			return violation.Indices
		}
	}
	return nil
}

func (v Violations) Rules() []string {
	res := make([]string, 0, len(v))
	for _, violation := range v {
		res = append(res, violation.Rule)
	}
	return res
}

func (v Violations) Count() int {
	res := 0
	for _, violation := range v {
		res += len(violation.Indices)
	}
	return res
}

type ChartResult struct {
	Chart        string        `json:"chart"`
	SubgroupSize int           `json:"subgroup_size"`
	Limits       ControlLimits `json:"limits"`
	// Data is the transformed series the rules were evaluated on.
	Data       []float64  `json:"data"`
	Violations Violations `json:"violations"`
}

func (r *ChartResult) DebugString() string {
	if r == nil {
		return "<nil>"
	}
	return fmt.Sprintf("chart: %v, n: %v, center: %v, lcl: %v, ucl: %v, violations: %v",
		r.Chart, r.SubgroupSize, r.Limits.Center, r.Limits.Lower, r.Limits.Upper, r.Violations.Count())
}
