// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package signal

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"lukechampine.com/uint128"
)

// In documents, a Value is a table with a single key, the name of its kind,
// and a payload:
//
//	{"Single": true}
//	{"HalfByte": [true, false, true, false]}
//	{"Byte": 133}                            // also X16, X32, X64
//	{"X128": "0x1f"}                         // integer or string
//	{"X256": ["0x1f", 0]}                    // low half, high half
//
// Integers of any width may be given as strings, using Go literal syntax
// (decimal, 0x, 0o, 0b).

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic("signal: failed to create CBOR enc mode: " + err.Error())
	}
	cborEncMode = em
}

func (v Value) document() map[string]any {
	var p any
	switch v.kind {
	case Single:
		p = v.b[0]
	case HalfByte:
		p = v.b[:]
	case Byte, X16, X32, X64:
		p = v.n
	case X128:
		p = hex128(v.x[0])
	case X256:
		p = []string{hex128(v.x[0]), hex128(v.x[1])}
	default:
		panic("signal: unreachable")
	}
	return map[string]any{v.kind.String(): p}
}

func (v *Value) fromDocument(doc map[string]any) error {
	if len(doc) != 1 {
		return errors.Errorf("expected a single kind key, got %d keys", len(doc))
	}
	for name, p := range doc {
		k, ok := ParseKind(name)
		if !ok {
			return errors.Errorf("unknown kind %q", name)
		}
		nv, err := decodePayload(k, p)
		if err != nil {
			return errors.Wrap(err, name)
		}
		*v = nv
	}
	return nil
}

func decodePayload(k Kind, p any) (Value, error) {
	switch k {
	case Single:
		b, err := toBool(p)
		return NewSingle(b), err
	case HalfByte:
		a, err := toArray(p, 4)
		if err != nil {
			return Value{}, err
		}
		var bs [4]bool
		for i := range bs {
			if bs[i], err = toBool(a[i]); err != nil {
				return Value{}, errors.Wrapf(err, "bit %d", i)
			}
		}
		return NewHalfByte(bs[0], bs[1], bs[2], bs[3]), nil
	case Byte, X16, X32, X64:
		n, err := toUint(p, k.Width())
		if err != nil {
			return Value{}, err
		}
		return FromWords(k, [4]uint64{n}), nil
	case X128:
		u, err := toUint128(p)
		return NewX128(u), err
	case X256:
		a, err := toArray(p, 2)
		if err != nil {
			return Value{}, err
		}
		lo, err := toUint128(a[0])
		if err != nil {
			return Value{}, errors.Wrap(err, "low half")
		}
		hi, err := toUint128(a[1])
		if err != nil {
			return Value{}, errors.Wrap(err, "high half")
		}
		return NewX256(lo, hi), nil
	}
	panic("signal: unreachable")
}

func toBool(p any) (bool, error) {
	b, ok := p.(bool)
	if !ok {
		return false, errors.Errorf("expected a boolean, got %T", p)
	}
	return b, nil
}

func toArray(p any, n int) ([]any, error) {
	a, ok := p.([]any)
	if !ok {
		return nil, errors.Errorf("expected an array, got %T", p)
	}
	if len(a) != n {
		return nil, errors.Errorf("expected %d elements, got %d", n, len(a))
	}
	return a, nil
}

// toUint converts any of the integer representations produced by the JSON,
// TOML and CBOR decoders.
func toUint(p any, bits int) (uint64, error) {
	var n uint64
	switch p := p.(type) {
	case uint64:
		n = p
	case int64:
		if p < 0 {
			return 0, errors.Errorf("negative value %d", p)
		}
		n = uint64(p)
	case float64:
		if p < 0 || p >= 1<<64 || p != math.Trunc(p) {
			return 0, errors.Errorf("%v is not an unsigned integer", p)
		}
		n = uint64(p)
	case json.Number:
		u, err := strconv.ParseUint(p.String(), 0, 64)
		if err != nil {
			return 0, errors.Wrap(err, "invalid integer")
		}
		n = u
	case string:
		u, err := strconv.ParseUint(p, 0, 64)
		if err != nil {
			return 0, errors.Wrap(err, "invalid integer")
		}
		n = u
	default:
		return 0, errors.Errorf("expected an integer, got %T", p)
	}
	if bits < 64 && n>>uint(bits) != 0 {
		return 0, errors.Errorf("%d overflows %d bits", n, bits)
	}
	return n, nil
}

func toUint128(p any) (Uint128, error) {
	switch p := p.(type) {
	case string:
		return ParseUint128(p)
	case json.Number:
		return ParseUint128(p.String())
	}
	n, err := toUint(p, 64)
	return uint128.From64(n), err
}

// MarshalJSON implements json.Marshaler.
//
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.document())
}

// UnmarshalJSON implements json.Unmarshaler.
//
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return errors.Wrap(err, "signal")
	}
	return errors.Wrap(v.fromDocument(doc), "signal")
}

// UnmarshalTOML implements toml.Unmarshaler.
//
func (v *Value) UnmarshalTOML(data any) error {
	doc, ok := data.(map[string]any)
	if !ok {
		return errors.Errorf("signal: expected a table, got %T", data)
	}
	return errors.Wrap(v.fromDocument(doc), "signal")
}

// MarshalCBOR implements cbor.Marshaler. The encoding is canonical.
//
func (v Value) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(v.document())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
//
func (v *Value) UnmarshalCBOR(data []byte) error {
	var doc map[string]any
	if err := cbor.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "signal")
	}
	return errors.Wrap(v.fromDocument(doc), "signal")
}
