// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("blocksim.circuit")

// Format is a circuit document encoding.
//
type Format int

// Supported formats.
//
const (
	JSON Format = iota
	TOML
	CBOR
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case TOML:
		return "toml"
	case CBOR:
		return "cbor"
	}
	return "unknown"
}

// FormatOf returns the Format matching the extension of the given file name.
//
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	case ".cbor":
		return CBOR, nil
	}
	return 0, errors.Errorf("%s: unknown circuit file extension", name)
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic("circuit: failed to create CBOR enc mode: " + err.Error())
	}
	cborEncMode = em
}

var cborDecMode cbor.DecMode

func init() {
	dm, err := cbor.DecOptions{ExtraReturnErrors: cbor.ExtraDecErrorUnknownField}.DecMode()
	if err != nil {
		panic("circuit: failed to create CBOR dec mode: " + err.Error())
	}
	cborDecMode = dm
}

// Decode reads a single definition encoded in format f from r. Keys that do
// not belong to a definition are an error in all formats.
//
func Decode(r io.Reader, f Format) (*Definition, error) {
	var d Definition
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, errors.Wrap(err, "decode json circuit")
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&d)
		if err != nil {
			return nil, errors.Wrap(err, "decode toml circuit")
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return nil, errors.Errorf("decode toml circuit: unknown key %q", keys[0].String())
		}
	case CBOR:
		if err := cborDecMode.NewDecoder(r).Decode(&d); err != nil {
			return nil, errors.Wrap(err, "decode cbor circuit")
		}
	default:
		return nil, errors.Errorf("unsupported format %d", f)
	}
	return &d, nil
}

// Encode writes d to w in format f. TOML is not supported.
//
func Encode(w io.Writer, d *Definition, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(d), "encode json circuit")
	case CBOR:
		return errors.Wrap(cborEncMode.NewEncoder(w).Encode(d), "encode cbor circuit")
	}
	return errors.Errorf("encoding to %s is not supported", f)
}

// ReadFile decodes the definition in the named file. The format is selected
// from the file extension.
//
func ReadFile(name string) (*Definition, error) {
	f, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	d, err := Decode(bufio.NewReader(fd), f)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	log.Debug("circuit file decoded", "file", name, "id", d.ID, "name", d.Name)
	return d, nil
}
