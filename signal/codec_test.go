package signal_test

import (
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/blocksim/signal"
)

func TestValue_UnmarshalJSON(t *testing.T) {
	td := []struct {
		in  string
		exp signal.Value
		err bool
	}{
		{`{"Single": true}`, signal.NewSingle(true), false},
		{`{"HalfByte": [true, false, true, false]}`, signal.NewHalfByte(true, false, true, false), false},
		{`{"Byte": 133}`, signal.NewByte(133), false},
		{`{"Byte": "0x85"}`, signal.NewByte(133), false},
		{`{"X16": 38533}`, signal.NewX16(38533), false},
		{`{"X32": 4294967295}`, signal.NewX32(4294967295), false},
		{`{"X64": 18446744073709551615}`, signal.NewX64(1<<64 - 1), false},
		{`{"X128": "0x10000000000000001"}`, signal.NewX128(signal.Uint128{Lo: 1, Hi: 1}), false},
		{`{"X128": 7}`, signal.NewX128(signal.Uint128{Lo: 7}), false},
		{`{"X256": ["0x1", 340282366920938463463374607431768211455]}`,
			signal.NewX256(signal.Uint128{Lo: 1}, signal.Uint128{Lo: 1<<64 - 1, Hi: 1<<64 - 1}), false},
		{`{"Byte": 256}`, signal.Value{}, true},
		{`{"Byte": -1}`, signal.Value{}, true},
		{`{"HalfByte": [true, false]}`, signal.Value{}, true},
		{`{"Single": 1}`, signal.Value{}, true},
		{`{"X512": 1}`, signal.Value{}, true},
		{`{"Byte": 1, "X16": 1}`, signal.Value{}, true},
		{`{}`, signal.Value{}, true},
		{`{"X128": "0x1_0000_0000_0000_0000_0000_0000_0000_0000"}`, signal.Value{}, true},
	}
	for _, d := range td {
		var v signal.Value
		err := json.Unmarshal([]byte(d.in), &v)
		if d.err {
			assert.Error(t, err, d.in)
			continue
		}
		if assert.NoError(t, err, d.in) {
			assert.Equal(t, d.exp, v, d.in)
		}
	}
}

func TestValue_UnmarshalTOML(t *testing.T) {
	var doc struct {
		A signal.Value `toml:"a"`
		B signal.Value `toml:"b"`
		C signal.Value `toml:"c"`
		D signal.Value `toml:"d"`
	}
	_, err := toml.Decode(`
a = { Single = true }
b = { HalfByte = [false, true, false, false] }
c = { X32 = 0xdeadbeef }
d = { X256 = [1, "0xffffffffffffffffffffffffffffffff"] }
`, &doc)
	require.NoError(t, err)
	assert.Equal(t, signal.NewSingle(true), doc.A)
	assert.Equal(t, signal.NewHalfByte(false, true, false, false), doc.B)
	assert.Equal(t, signal.NewX32(0xdeadbeef), doc.C)
	assert.Equal(t, signal.NewX256(signal.Uint128{Lo: 1}, signal.Uint128{Lo: 1<<64 - 1, Hi: 1<<64 - 1}), doc.D)

	_, err = toml.Decode(`a = 5`, &doc)
	assert.Error(t, err)
}

func TestValue_codec_roundtrip(t *testing.T) {
	for _, v := range allKinds() {
		j, err := json.Marshal(v)
		require.NoError(t, err)
		var jv signal.Value
		require.NoError(t, json.Unmarshal(j, &jv), string(j))
		assert.Equal(t, v, jv, "json %s", j)

		c, err := cbor.Marshal(v)
		require.NoError(t, err)
		var cv signal.Value
		require.NoError(t, cbor.Unmarshal(c, &cv))
		assert.Equal(t, v, cv, "cbor %s", v.Kind())
	}
}

func TestParseUint128(t *testing.T) {
	u, err := signal.ParseUint128("340282366920938463463374607431768211455")
	require.NoError(t, err)
	assert.Equal(t, signal.Uint128{Lo: 1<<64 - 1, Hi: 1<<64 - 1}, u)
	assert.Equal(t, "340282366920938463463374607431768211455", u.Big().String())

	u, err = signal.ParseUint128("0b101")
	require.NoError(t, err)
	assert.Equal(t, signal.Uint128{Lo: 5}, u)

	for _, s := range []string{"-1", "abc", "", "340282366920938463463374607431768211456"} {
		_, err := signal.ParseUint128(s)
		assert.Error(t, err, s)
	}
}
