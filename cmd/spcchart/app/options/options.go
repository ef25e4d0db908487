package options

import (
	"errors"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/uyouii/spc-algorithms/config"
)

const MissingInputMessage = "You need to supply --data and --title"

// Options used for the spcchart command
type Options struct {
	ConfigFile string
	Config     config.Config

	target float64
}

func NewOptions() *Options {
	return &Options{
		Config: *config.Default(),
	}
}

// Complete loads the config file, if any, and applies the flags set on the
// command line over it.
func (o *Options) Complete(fs *pflag.FlagSet) error {
	if fs.Changed("target") {
		target := o.target
		o.Config.Target = &target
	}
	if o.ConfigFile == "" {
		return nil
	}

	fileConfig, err := config.Load(o.ConfigFile)
	if err != nil {
		return err
	}
	flagConfig := o.Config
	o.Config = *fileConfig

	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "data":
			o.Config.Data = flagConfig.Data
		case "title":
			o.Config.Title = flagConfig.Title
		case "chart":
			o.Config.Chart = flagConfig.Chart
		case "size":
			o.Config.SubgroupSize = flagConfig.SubgroupSize
		case "rules":
			o.Config.Rules = flagConfig.Rules
		case "target":
			o.Config.Target = flagConfig.Target
		case "output":
			o.Config.Output = flagConfig.Output
		case "verbose":
			o.Config.Verbose = flagConfig.Verbose
		}
	})
	return nil
}

func (o *Options) Validate() error {
	var errs error
	if o.Config.Data == "" || o.Config.Title == "" {
		errs = multierr.Append(errs, errors.New(MissingInputMessage))
	}
	if err := o.Config.Validate(); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	if fs == nil {
		return
	}

	fs.StringVar(&o.ConfigFile, "config", "", "YAML config file, flags set on the command line override it")
	fs.StringVar(&o.Config.Data, "data", "", "Comma separated list of values, subgroups are separated by ';'")
	fs.StringVar(&o.Config.Title, "title", "", "Title for the chart")
	fs.StringVar(&o.Config.Chart, "chart", config.DefaultChart, "chart type, e.g. \"X mR - X\", \"Xbar R - X\", p, np, c, u, CUSUM")
	fs.IntVarP(&o.Config.SubgroupSize, "size", "n", 0, "subgroup size, inferred from the data if not specified")
	fs.StringVar(&o.Config.Rules, "rules", config.DefaultRules, "rule preset (basic, weco, nelson, all) or comma separated rule names")
	fs.Float64Var(&o.target, "target", 0, "CUSUM target, the mean of the data if not specified")
	fs.StringVarP(&o.Config.Output, "output", "o", config.OutputModeTable, "output mode, table or json")
	fs.BoolVarP(&o.Config.Verbose, "verbose", "v", false, "enable development logging")
}
