package config

import (
	"fmt"
	"os"

	"github.com/uyouii/spc-algorithms/spc"
	"gopkg.in/yaml.v3"
)

const (
	OutputModeTable = "table"
	OutputModeJSON  = "json"

	DefaultChart = "X mR - X"
	DefaultRules = "basic"
)

// Config is the runtime configuration of the spcchart command. A YAML file
// maps onto it directly, e.g.
//
//	chart: "Xbar R - X"
//	subgroup_size: 5
//	rules: weco
//	output: json
type Config struct {
	Title        string   `yaml:"title"`
	Data         string   `yaml:"data"`
	Chart        string   `yaml:"chart"`
	SubgroupSize int      `yaml:"subgroup_size"`
	Rules        string   `yaml:"rules"`
	Target       *float64 `yaml:"target"`
	Output       string   `yaml:"output"`
	Verbose      bool     `yaml:"verbose"`
}

func Default() *Config {
	return &Config{
		Chart:  DefaultChart,
		Rules:  DefaultRules,
		Output: OutputModeTable,
	}
}

// Load reads the YAML file at path over the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) ChartType() (spc.ChartType, error) {
	return spc.ParseChartType(c.Chart)
}

func (c *Config) RuleSet() ([]spc.RuleID, error) {
	return spc.ParseRules(c.Rules)
}

func (c *Config) Validate() error {
	if _, err := c.ChartType(); err != nil {
		return err
	}
	if _, err := c.RuleSet(); err != nil {
		return err
	}
	if c.SubgroupSize < 0 {
		return fmt.Errorf("subgroup size must not be negative, got %v", c.SubgroupSize)
	}
	switch c.Output {
	case OutputModeTable, OutputModeJSON:
	default:
		return fmt.Errorf("unknown output mode %q", c.Output)
	}
	return nil
}
