package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uyouii/spc-algorithms/config"
)

func parse(t *testing.T, args ...string) (*Options, *pflag.FlagSet) {
	t.Helper()
	o := NewOptions()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o.AddFlags(fs)
	require.NoError(t, fs.Parse(args))
	return o, fs
}

func TestDefaults(t *testing.T) {
	o, fs := parse(t)
	require.NoError(t, o.Complete(fs))
	assert.Equal(t, config.DefaultChart, o.Config.Chart)
	assert.Equal(t, config.DefaultRules, o.Config.Rules)
	assert.Equal(t, config.OutputModeTable, o.Config.Output)
	assert.Nil(t, o.Config.Target)

	err := o.Validate()
	require.Error(t, err)
	assert.Equal(t, MissingInputMessage, err.Error())
}

func TestCompleteTarget(t *testing.T) {
	o, fs := parse(t, "--data", "1,2", "--title", "t", "--target", "1.5", "-n", "3", "-o", "json")
	require.NoError(t, o.Complete(fs))
	require.NotNil(t, o.Config.Target)
	assert.Equal(t, 1.5, *o.Config.Target)
	assert.Equal(t, 3, o.Config.SubgroupSize)
	assert.Equal(t, config.OutputModeJSON, o.Config.Output)
	assert.NoError(t, o.Validate())
}

func TestCompleteConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spcchart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: from file
data: "1,2,3"
chart: c
rules: weco
target: 2
verbose: true
`), 0o644))

	o, fs := parse(t, "--config", path, "--chart", "u", "--target", "4")
	require.NoError(t, o.Complete(fs))
	assert.Equal(t, "from file", o.Config.Title)
	assert.Equal(t, "1,2,3", o.Config.Data)
	assert.Equal(t, "u", o.Config.Chart)
	assert.Equal(t, "weco", o.Config.Rules)
	assert.True(t, o.Config.Verbose)
	require.NotNil(t, o.Config.Target)
	assert.Equal(t, 4.0, *o.Config.Target)

	o, fs = parse(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, o.Complete(fs))
}

func TestValidateCombinesErrors(t *testing.T) {
	o, fs := parse(t, "--chart", "EWMA")
	require.NoError(t, o.Complete(fs))
	err := o.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), MissingInputMessage)
	assert.Contains(t, err.Error(), "EWMA")
}
