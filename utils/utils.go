package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/uyouii/spc-algorithms/common"
	"github.com/uyouii/spc-algorithms/model"
)

const (
	ValueSeparator = ","
	GroupSeparator = ";"
)

// FormatFloat rounds f to round decimal places.
func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	scale := math.Pow(10, float64(round))
	return math.Round(f*scale) / scale
}

// ParseFloatList parses comma separated numbers, blanks around each value
// are ignored.
func ParseFloatList(s string) ([]float64, error) {
	res := []float64{}
	for _, part := range strings.Split(s, ValueSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, common.NewDomainError("invalid number %q", part)
		}
		res = append(res, v)
	}
	return res, nil
}

// ParseSeries parses "1,2,3" as individual values and "1,2,3;4,5,6" as
// subgroups.
func ParseSeries(s string) (model.Series, error) {
	if strings.TrimSpace(s) == "" {
		return model.Series{}, common.NewDomainError("no valid data provided")
	}

	if !strings.Contains(s, GroupSeparator) {
		values, err := ParseFloatList(s)
		if err != nil {
			return model.Series{}, err
		}
		if len(values) == 0 {
			return model.Series{}, common.NewDomainError("no valid data provided")
		}
		return model.NewValueSeries(values...), nil
	}

	groups := [][]float64{}
	for i, part := range strings.Split(s, GroupSeparator) {
		if strings.TrimSpace(part) == "" {
			continue
		}
		group, err := ParseFloatList(part)
		if err != nil {
			return model.Series{}, err
		}
		if len(group) == 0 {
			return model.Series{}, common.NewDomainError("subgroup %v is empty", i)
		}
		groups = append(groups, group)
	}
	if len(groups) == 0 {
		return model.Series{}, common.NewDomainError("no valid data provided")
	}
	return model.NewGroupSeries(groups...), nil
}
