package spc

import (
	"context"
	"fmt"

	"github.com/uyouii/spc-algorithms/model"
	"github.com/uyouii/spc-algorithms/utils"
	"go.uber.org/zap"
)

type ChartRequest struct {
	Title        string
	Series       model.Series
	Chart        ChartType
	SubgroupSize int      // 0 infers the size from the series
	Rules        []RuleID // nil uses RulesBasic
	Target       *float64
}

func (r *ChartRequest) options() []Option {
	opts := []Option{}
	if r.SubgroupSize != 0 {
		opts = append(opts, WithSubgroupSize(r.SubgroupSize))
	}
	if r.Rules != nil {
		opts = append(opts, WithRules(r.Rules...))
	}
	if r.Target != nil {
		opts = append(opts, WithTarget(*r.Target))
	}
	return opts
}

// CalculateControlChart computes the chart of the request and logs the
// outcome. Errors from Compute are returned unchanged.
func CalculateControlChart(ctx context.Context, req *ChartRequest) (res *model.ChartResult, err error) {
	logger := utils.GetLogger(ctx)
	if req == nil {
		return nil, fmt.Errorf("nil chart request")
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("CalculateControlChart recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.String("title", req.Title))
			res, err = nil, fmt.Errorf("calculate control chart: %v", r)
		}
	}()

	logger.Debug("begin calculate control chart", zap.String("title", req.Title),
		zap.Stringer("chart", req.Chart), zap.String("series", req.Series.DebugString()))

	res, err = Compute(req.Series, req.Chart, req.options()...)
	if err != nil {
		logger.Error("Compute failed", zap.Error(err), zap.String("title", req.Title),
			zap.Stringer("chart", req.Chart))
		return nil, err
	}

	logger.Info("calculate control chart success", zap.String("title", req.Title),
		zap.String("result", res.DebugString()))
	return res, nil
}
