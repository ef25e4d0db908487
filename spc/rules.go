package spc

import (
	"strings"

	"github.com/uyouii/spc-algorithms/common"
	"github.com/uyouii/spc-algorithms/model"
)

type RuleID string

const (
	Rule1Beyond3Sigma          RuleID = "1 beyond 3*sigma"
	Rule2Of3Beyond2Sigma       RuleID = "2 of 3 beyond 2*sigma"
	Rule4Of5Beyond1Sigma       RuleID = "4 of 5 beyond 1*sigma"
	Rule7OnOneSide             RuleID = "7 on one side"
	Rule8OnOneSide             RuleID = "8 on one side"
	Rule9OnOneSide             RuleID = "9 on one side"
	Rule6Trending              RuleID = "6 trending"
	Rule14UpDown               RuleID = "14 up down"
	Rule15Below1Sigma          RuleID = "15 below 1*sigma"
	Rule8Beyond1SigmaBothSides RuleID = "8 beyond 1*sigma on both sides"
)

var (
	RulesBasic = []RuleID{Rule1Beyond3Sigma, Rule7OnOneSide}

	RulesWECO = []RuleID{Rule1Beyond3Sigma, Rule2Of3Beyond2Sigma, Rule4Of5Beyond1Sigma,
		Rule8OnOneSide, Rule6Trending, Rule14UpDown}

	RulesNelson = []RuleID{Rule1Beyond3Sigma, Rule9OnOneSide, Rule6Trending, Rule14UpDown,
		Rule2Of3Beyond2Sigma, Rule4Of5Beyond1Sigma, Rule15Below1Sigma, Rule8Beyond1SigmaBothSides}

	RulesAll = []RuleID{Rule1Beyond3Sigma, Rule2Of3Beyond2Sigma, Rule4Of5Beyond1Sigma,
		Rule7OnOneSide, Rule8OnOneSide, Rule9OnOneSide, Rule6Trending, Rule14UpDown,
		Rule15Below1Sigma, Rule8Beyond1SigmaBothSides}

	rulePresets = map[string][]RuleID{
		"basic":  RulesBasic,
		"weco":   RulesWECO,
		"nelson": RulesNelson,
		"all":    RulesAll,
	}
)

// ruleTest reports whether the window, oldest point first, triggers the rule.
type ruleTest func(window []float64, limits model.ControlLimits) bool

type Rule struct {
	ID          RuleID
	Window      int
	test        ruleTest // nil for rules that are recognized but not implemented yet
	needsLimits bool
}

func (r Rule) Implemented() bool {
	return r.test != nil
}

var rules = map[RuleID]Rule{
	Rule1Beyond3Sigma:          {ID: Rule1Beyond3Sigma, Window: 1, test: testBeyondLimits, needsLimits: true},
	Rule2Of3Beyond2Sigma:       {ID: Rule2Of3Beyond2Sigma, Window: 3},
	Rule4Of5Beyond1Sigma:       {ID: Rule4Of5Beyond1Sigma, Window: 5},
	Rule7OnOneSide:             {ID: Rule7OnOneSide, Window: 7, test: testOneSide},
	Rule8OnOneSide:             {ID: Rule8OnOneSide, Window: 8, test: testOneSide},
	Rule9OnOneSide:             {ID: Rule9OnOneSide, Window: 9, test: testOneSide},
	Rule6Trending:              {ID: Rule6Trending, Window: 6},
	Rule14UpDown:               {ID: Rule14UpDown, Window: 14},
	Rule15Below1Sigma:          {ID: Rule15Below1Sigma, Window: 15},
	Rule8Beyond1SigmaBothSides: {ID: Rule8Beyond1SigmaBothSides, Window: 8},
}

func LookupRule(id RuleID) (Rule, bool) {
	rule, ok := rules[id]
	return rule, ok
}

func testBeyondLimits(window []float64, limits model.ControlLimits) bool {
	v := window[0]
	return v > limits.Upper || v < limits.Lower
}

// testOneSide holds when every point is strictly above the center line or
// every point is strictly below it. A point on the center line ends the run.
func testOneSide(window []float64, limits model.ControlLimits) bool {
	above, below := 0, 0
	for _, v := range window {
		switch {
		case v > limits.Center:
			above++
		case v < limits.Center:
			below++
		default:
			return false
		}
	}
	return above == len(window) || below == len(window)
}

// ParseRules accepts a preset name (basic, weco, nelson, all) or a comma
// separated list of rule ids.
func ParseRules(s string) ([]RuleID, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if preset, ok := rulePresets[key]; ok {
		return append([]RuleID{}, preset...), nil
	}

	res := []RuleID{}
	for _, part := range strings.Split(s, ",") {
		id := RuleID(strings.TrimSpace(part))
		if id == "" {
			continue
		}
		if _, ok := rules[id]; !ok {
			return nil, common.NewDomainError("unknown rule %q", string(id))
		}
		res = append(res, id)
	}
	if err := validateRules(res); err != nil {
		return nil, err
	}
	return res, nil
}

func validateRules(ids []RuleID) error {
	seen := make(map[RuleID]bool, len(ids))
	for _, id := range ids {
		if _, ok := rules[id]; !ok {
			return common.NewDomainError("unknown rule %q", string(id))
		}
		if seen[id] {
			return common.NewDomainError("rule %q listed twice", string(id))
		}
		seen[id] = true
	}
	return nil
}

// Evaluate scans data with each rule's window and reports, per rule, the
// index of the last point of every window that triggers it. Rules without a
// test, and rules that need limits the chart does not define, are skipped.
func Evaluate(data []float64, limits model.ControlLimits, ids []RuleID) (model.Violations, error) {
	if err := validateRules(ids); err != nil {
		return nil, err
	}

	res := model.Violations{}
	for _, id := range ids {
		rule := rules[id]
		if !rule.Implemented() {
			continue
		}
		if rule.needsLimits && (!limits.HasLower() || !limits.HasUpper()) {
			continue
		}

		indices := []int{}
		for i := rule.Window - 1; i < len(data); i++ {
			if rule.test(data[i-rule.Window+1:i+1], limits) {
				indices = append(indices, i)
			}
		}
		if len(indices) > 0 {
			res = append(res, model.Violation{Rule: string(id), Indices: indices})
		}
	}
	return res, nil
}
