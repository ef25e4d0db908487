package spc

import (
	"github.com/uyouii/spc-algorithms/common"
	"github.com/uyouii/spc-algorithms/model"
)

type options struct {
	subgroupSize int
	rules        []RuleID
	target       float64
	hasTarget    bool
}

type Option func(o *options) error

// WithSubgroupSize overrides the subgroup size inferred from the series.
func WithSubgroupSize(n int) Option {
	return func(o *options) error {
		if n < 1 {
			return common.NewDomainError("subgroup size must be positive, got %v", n)
		}
		o.subgroupSize = n
		return nil
	}
}

// WithRules sets the rules to evaluate, in report order. No rules disables
// evaluation.
func WithRules(ids ...RuleID) Option {
	return func(o *options) error {
		if err := validateRules(ids); err != nil {
			return err
		}
		o.rules = append([]RuleID{}, ids...)
		return nil
	}
}

// WithTarget sets the CUSUM target, the series mean by default.
func WithTarget(target float64) Option {
	return func(o *options) error {
		if !isFinite(target) {
			return common.NewDomainError("target is not a finite number")
		}
		o.target = target
		o.hasTarget = true
		return nil
	}
}

func newOptions(opts ...Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.rules == nil {
		o.rules = append([]RuleID{}, RulesBasic...)
	}
	return o, nil
}

// Compute derives the control limits of the chart from the series and
// reports the points of the charted series violating the configured rules.
func Compute(series model.Series, chartType ChartType, opts ...Option) (*model.ChartResult, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	ch, n, err := prepare(series, chartType, o)
	if err != nil {
		return nil, err
	}

	limits := ch.estimate(series, n)
	data := ch.transform(series, n, o)

	violations, err := Evaluate(data, limits, o.rules)
	if err != nil {
		return nil, err
	}

	return &model.ChartResult{
		Chart:        ch.name,
		SubgroupSize: n,
		Limits:       limits,
		Data:         data,
		Violations:   violations,
	}, nil
}
