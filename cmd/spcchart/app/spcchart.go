package app

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uyouii/spc-algorithms/cmd/spcchart/app/options"
	"github.com/uyouii/spc-algorithms/config"
	"github.com/uyouii/spc-algorithms/spc"
	"github.com/uyouii/spc-algorithms/utils"
)

// NewSpcChartCommand creates a *cobra.Command object with default parameters
func NewSpcChartCommand() *cobra.Command {
	opts := options.NewOptions()

	cmd := &cobra.Command{
		Use:   "spcchart",
		Short: "SPC control chart statistics",
		Long: `spcchart computes the center line and control limits of a control chart
and reports the points violating the configured run rules.

Example: spcchart --data "1,2,3,3,2,1,3,8" --title "Widget quality"
         spcchart --data "20,21,19;19,20,21;21,22,20" --title "Bore" --chart "Xbar R - X"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Complete(cmd.Flags()); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			return Run(cmd.Context(), &opts.Config, cmd.OutOrStdout())
		},
	}

	opts.AddFlags(cmd.Flags())
	return cmd
}

// Run computes the chart described by c and writes the report to out.
func Run(ctx context.Context, c *config.Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.Verbose {
		logger, err := utils.NewLogger(true)
		if err != nil {
			return err
		}
		defer utils.SetLogger(logger)()
	}
	logger := utils.GetLogger(ctx)

	series, err := utils.ParseSeries(c.Data)
	if err != nil {
		logger.Error("ParseSeries failed", zap.Error(err))
		return err
	}
	chartType, err := c.ChartType()
	if err != nil {
		return err
	}
	rules, err := c.RuleSet()
	if err != nil {
		return err
	}

	res, err := spc.CalculateControlChart(ctx, &spc.ChartRequest{
		Title:        c.Title,
		Series:       series,
		Chart:        chartType,
		SubgroupSize: c.SubgroupSize,
		Rules:        rules,
		Target:       c.Target,
	})
	if err != nil {
		return err
	}

	summary, err := Summarize(series)
	if err != nil {
		logger.Warn("Summarize failed", zap.Error(err))
	}

	return NewReporter(out, c.Output).Report(&Report{
		Title:       c.Title,
		Summary:     summary,
		ChartResult: res,
	})
}
