// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/blocksim"
)

func TestRun(t *testing.T) {
	dump := filepath.Join(t.TempDir(), "state.cbor")
	var out strings.Builder
	err := run(options{
		config:    "testdata/blocksim.toml",
		ticks:     -1,
		verbosity: -1,
		dump:      dump,
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "1\t1.1\t0101\n"+
		"1\t2.2\t00111111\n"+
		"2\t1.1\t0101\n"+
		"2\t2.2\t00111111\n", out.String())

	data, err := os.ReadFile(dump)
	require.NoError(t, err)
	sn, err := blocksim.UnmarshalSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, uint(2), sn.Step)
	require.Len(t, sn.Blocks, 2)
	assert.Equal(t, "OR2", sn.Blocks[1].Name)
}

func TestRun_overrides(t *testing.T) {
	var out strings.Builder
	err := run(options{
		config:    "testdata/blocksim.toml",
		ticks:     0,
		verbosity: 0,
		json:      true,
		circuits:  []string{"testdata/pass.json"},
	}, &out)
	require.NoError(t, err)
	// the extra circuit replaces block 1 of the simulation file
	assert.True(t, strings.HasPrefix(out.String(), `{`), out.String())
	assert.Contains(t, out.String(), `"step": 0`)
}

func TestRun_errors(t *testing.T) {
	td := []options{
		{config: "testdata/missing.toml", ticks: -1, verbosity: -1},
		{ticks: -1, verbosity: -1}, // no circuit
		{config: "testdata/blocksim.toml", ticks: -1, verbosity: -1, circuits: []string{"testdata/missing.json"}},
	}
	for _, o := range td {
		var out strings.Builder
		assert.Error(t, run(o, &out), "%+v", o)
	}
}

func TestRun_drive_kind(t *testing.T) {
	var out strings.Builder
	err := run(options{config: "testdata/badkind.toml", ticks: -1, verbosity: -1}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Byte value for HalfByte input 1.0")
	assert.Empty(t, out.String(), "no tick runs")
}
