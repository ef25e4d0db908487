package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"

	"github.com/uyouii/spc-algorithms/config"
	"github.com/uyouii/spc-algorithms/model"
	"github.com/uyouii/spc-algorithms/utils"
)

const reportPrecision = 3

// Summary describes the raw data, all subgroup values flattened.
type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Range  float64 `json:"range"`
}

func Summarize(series model.Series) (*Summary, error) {
	data := stats.Float64Data(series.Values)
	if series.IsGrouped() {
		data = stats.Float64Data{}
		for _, group := range series.Groups {
			data = append(data, group...)
		}
	}

	min, err := data.Min()
	if err != nil {
		return nil, err
	}
	max, err := data.Max()
	if err != nil {
		return nil, err
	}
	median, err := data.Median()
	if err != nil {
		return nil, err
	}
	return &Summary{
		Count:  data.Len(),
		Min:    min,
		Max:    max,
		Median: median,
		Range:  max - min,
	}, nil
}

type Report struct {
	Title   string   `json:"title"`
	Summary *Summary `json:"summary"`
	*model.ChartResult
}

type Reporter struct {
	out  io.Writer
	mode string
}

func NewReporter(out io.Writer, mode string) *Reporter {
	return &Reporter{out: out, mode: mode}
}

func (r *Reporter) Report(report *Report) error {
	switch r.mode {
	case config.OutputModeJSON:
		return r.reportJSON(report)
	case "", config.OutputModeTable:
		return r.reportTable(report)
	default:
		return fmt.Errorf("unknown output mode %q", r.mode)
	}
}

func (r *Reporter) reportJSON(report *Report) error {
	content, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, string(content))
	return err
}

func (r *Reporter) reportTable(report *Report) error {
	fmt.Fprintf(r.out, "%v (%v, n=%v)\n", report.Title, report.Chart, report.SubgroupSize)

	if report.Summary != nil {
		fmt.Fprintf(r.out, "count: %v, min: %v, max: %v, median: %v, range: %v\n",
			report.Summary.Count, formatValue(report.Summary.Min), formatValue(report.Summary.Max),
			formatValue(report.Summary.Median), formatValue(report.Summary.Range))
	}

	limits := tablewriter.NewWriter(r.out)
	limits.SetAutoFormatHeaders(false)
	limits.SetHeader([]string{"Statistic", "Value"})
	limits.AppendBulk([][]string{
		{"UCL", formatLimit(report.Limits.Upper, report.Limits.HasUpper())},
		{"Center", formatValue(report.Limits.Center)},
		{"LCL", formatLimit(report.Limits.Lower, report.Limits.HasLower())},
	})
	limits.Render()

	if len(report.Violations) == 0 {
		_, err := fmt.Fprintln(r.out, "no rule violations")
		return err
	}

	violations := tablewriter.NewWriter(r.out)
	violations.SetAutoFormatHeaders(false)
	violations.SetHeader([]string{"Rule", "Points"})
	for _, violation := range report.Violations {
		violations.Append([]string{violation.Rule, formatIndices(violation.Indices)})
	}
	violations.Render()
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(utils.FormatFloat(v, reportPrecision), 'f', -1, 64)
}

func formatLimit(v float64, present bool) string {
	if !present {
		return "-"
	}
	return formatValue(v)
}

func formatIndices(indices []int) string {
	parts := make([]string, 0, len(indices))
	for _, i := range indices {
		parts = append(parts, strconv.Itoa(i))
	}
	return strings.Join(parts, ", ")
}
