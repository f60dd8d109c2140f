// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/blocksim/config"
	"github.com/db47h/blocksim/signal"
)

func TestLoad(t *testing.T) {
	c, err := config.Load("testdata/sim.toml")
	require.NoError(t, err)
	assert.Equal(t, 4, c.Sim.Ticks)
	assert.Equal(t, 0, c.Log.Verbosity)
	assert.Equal(t, "", c.Log.File)
	require.Len(t, c.Circuits, 2)
	assert.Equal(t, config.Circuit{Builtin: "Fanout", ID: 2, Kind: signal.Byte, N: 3}, c.Circuits[1])
	assert.Equal(t, []config.Drive{
		{Block: 1, Input: 0, Value: signal.NewHalfByte(false, true, true, false)},
		{Block: 2, Input: 0, Value: signal.NewByte(42)},
	}, c.Drives)
	assert.Equal(t, []config.Probe{{1, 1}, {2, 3}}, c.Probes)

	defs, err := c.Definitions()
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "PASS", defs[0].Name)
	assert.Equal(t, "FANOUT3", defs[1].Name)
	assert.Len(t, defs[1].Outputs, 3)
}

func TestLoad_defaults(t *testing.T) {
	c, err := config.Load("testdata/minimal.toml")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTicks, c.Sim.Ticks)
	assert.Equal(t, config.DefaultVerbosity, c.Log.Verbosity)
	assert.Empty(t, c.Drives)
	assert.Empty(t, c.Probes)
	defs, err := c.Definitions()
	require.NoError(t, err)
	assert.Equal(t, 7, defs[0].ID)
}

func TestLoad_errors(t *testing.T) {
	for _, name := range []string{"unknown.toml", "both.toml", "badkind.toml", "missing.toml"} {
		_, err := config.Load("testdata/" + name)
		assert.Error(t, err, name)
	}
}

func TestDefinitions_errors(t *testing.T) {
	c := &config.Config{Circuits: []config.Circuit{{Path: "nope.json"}}, Dir: "testdata"}
	_, err := c.Definitions()
	assert.Error(t, err)

	c.Circuits = []config.Circuit{{Builtin: "nand"}}
	_, err = c.Definitions()
	assert.Error(t, err)
}
