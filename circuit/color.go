// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// Color is an RGBA color with components in [0, 1]. It is only meaningful to
// renderers. In documents, it is written as [r, g, b] or [r, g, b, a]; alpha
// defaults to 1.
//
type Color [4]float32

// RGBA returns the color components.
//
func (c Color) RGBA() (r, g, b, a float32) {
	return c[0], c[1], c[2], c[3]
}

func (c *Color) set(cs []float64) error {
	switch len(cs) {
	case 0:
		// null or [], leave c unset.
	case 3:
		*c = Color{float32(cs[0]), float32(cs[1]), float32(cs[2]), 1}
	case 4:
		*c = Color{float32(cs[0]), float32(cs[1]), float32(cs[2]), float32(cs[3])}
	default:
		return errors.Errorf("color: expected 3 or 4 components, got %d", len(cs))
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
//
func (c *Color) UnmarshalJSON(data []byte) error {
	var cs []float64
	if err := json.Unmarshal(data, &cs); err != nil {
		return errors.Wrap(err, "color")
	}
	return c.set(cs)
}

// UnmarshalTOML implements toml.Unmarshaler.
//
func (c *Color) UnmarshalTOML(data any) error {
	a, ok := data.([]any)
	if !ok {
		return errors.Errorf("color: expected an array, got %T", data)
	}
	cs := make([]float64, len(a))
	for i, v := range a {
		switch v := v.(type) {
		case float64:
			cs[i] = v
		case int64:
			cs[i] = float64(v)
		default:
			return errors.Errorf("color: component %d: expected a number, got %T", i, v)
		}
	}
	return c.set(cs)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
//
func (c *Color) UnmarshalCBOR(data []byte) error {
	var cs []float64
	if err := cbor.Unmarshal(data, &cs); err != nil {
		return errors.Wrap(err, "color")
	}
	return c.set(cs)
}
