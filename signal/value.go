// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package signal implements the values carried by connections and wires.

A Value is a bit vector of one of eight fixed widths: 1, 4, 8, 16, 32, 64, 128
or 256 bits. Its width never changes once created, only the state of its bits.
Bit 0 is the least significant bit.

Values are plain Go values: assigning or passing a Value copies it.
*/
package signal

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
	"lukechampine.com/uint128"
)

var log = commonlog.GetLogger("blocksim.signal")

// Kind identifies the width of a Value.
//
type Kind uint8

// Supported kinds.
//
const (
	Single   Kind = iota // 1 bit
	HalfByte             // 4 bits
	Byte                 // 8 bits
	X16                  // 16 bits
	X32                  // 32 bits
	X64                  // 64 bits
	X128                 // 128 bits, two 64 bits halves
	X256                 // 256 bits, two 128 bits halves

	kindCount
)

var kinds = [kindCount]struct {
	name  string
	width int
}{
	{"Single", 1},
	{"HalfByte", 4},
	{"Byte", 8},
	{"X16", 16},
	{"X32", 32},
	{"X64", 64},
	{"X128", 128},
	{"X256", 256},
}

// Width returns the number of bits of values of kind k.
//
func (k Kind) Width() int {
	if k >= kindCount {
		panic("signal: invalid kind " + strconv.Itoa(int(k)))
	}
	return kinds[k].width
}

func (k Kind) String() string {
	if k >= kindCount {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kinds[k].name
}

// ParseKind returns the Kind named name. Names are the ones returned by
// Kind.String.
//
func ParseKind(name string) (Kind, bool) {
	for k := Kind(0); k < kindCount; k++ {
		if kinds[k].name == name {
			return k, true
		}
	}
	return 0, false
}

// Valid returns true if k is one of the supported kinds.
//
func (k Kind) Valid() bool { return k < kindCount }

// MarshalText implements encoding.TextMarshaler.
//
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.Errorf("invalid kind %d", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
func (k *Kind) UnmarshalText(text []byte) error {
	kk, ok := ParseKind(string(text))
	if !ok {
		return errors.Errorf("unknown kind %q", text)
	}
	*k = kk
	return nil
}

// Value is a fixed width bit vector.
//
// The zero Value is a Single set to false. Values are comparable with ==.
//
type Value struct {
	kind Kind
	b    [4]bool    // Single, HalfByte
	n    uint64     // Byte to X64
	x    [2]Uint128 // X128 uses x[0], X256 uses x[0] (low) and x[1] (high)
}

// NewSingle returns a 1 bit Value.
//
func NewSingle(b bool) Value {
	return Value{kind: Single, b: [4]bool{b}}
}

// NewHalfByte returns a 4 bits Value. b0 is the least significant bit.
//
func NewHalfByte(b0, b1, b2, b3 bool) Value {
	return Value{kind: HalfByte, b: [4]bool{b0, b1, b2, b3}}
}

// NewByte returns an 8 bits Value.
//
func NewByte(n uint8) Value { return Value{kind: Byte, n: uint64(n)} }

// NewX16 returns a 16 bits Value.
//
func NewX16(n uint16) Value { return Value{kind: X16, n: uint64(n)} }

// NewX32 returns a 32 bits Value.
//
func NewX32(n uint32) Value { return Value{kind: X32, n: uint64(n)} }

// NewX64 returns a 64 bits Value.
//
func NewX64(n uint64) Value { return Value{kind: X64, n: n} }

// NewX128 returns a 128 bits Value.
//
func NewX128(n Uint128) Value {
	return Value{kind: X128, x: [2]Uint128{n}}
}

// NewX256 returns a 256 bits Value made of two 128 bits halves.
//
func NewX256(lo, hi Uint128) Value {
	return Value{kind: X256, x: [2]Uint128{lo, hi}}
}

// Zero returns a Value of kind k with all bits cleared.
//
func Zero(k Kind) Value {
	k.Width() // panics on invalid kinds
	return Value{kind: k}
}

// Kind returns the kind of v.
//
func (v Value) Kind() Kind { return v.kind }

// Len returns the bit width of v.
//
func (v Value) Len() int { return v.kind.Width() }

// Get returns the state of bit i. If i is out of range, Get logs a warning and
// returns false.
//
func (v Value) Get(i int) bool {
	if i < 0 || i >= v.Len() {
		log.Warning("bit index out of range", "index", i, "kind", v.kind.String())
		return false
	}
	return v.bit(i)
}

// Set sets the state of bit i. If i is out of range, Set logs a warning and
// leaves v unchanged.
//
func (v *Value) Set(i int, b bool) {
	if i < 0 || i >= v.Len() {
		log.Warning("bit index out of range", "index", i, "kind", v.kind.String())
		return
	}
	switch v.kind {
	case Single, HalfByte:
		v.b[i] = b
	case Byte, X16, X32, X64:
		if b {
			v.n |= 1 << uint(i)
		} else {
			v.n &^= 1 << uint(i)
		}
	case X128:
		v.x[0] = setBit128(v.x[0], i, b)
	case X256:
		if i < 128 {
			v.x[0] = setBit128(v.x[0], i, b)
		} else {
			v.x[1] = setBit128(v.x[1], i-128, b)
		}
	default:
		panic("signal: unreachable")
	}
}

// bit expects i to be in range.
func (v Value) bit(i int) bool {
	switch v.kind {
	case Single, HalfByte:
		return v.b[i]
	case Byte, X16, X32, X64:
		return v.n&(1<<uint(i)) != 0
	case X128:
		return bit128(v.x[0], i)
	case X256:
		if i < 128 {
			return bit128(v.x[0], i)
		}
		return bit128(v.x[1], i-128)
	}
	panic("signal: unreachable")
}

// Words returns the bits of v as four 64 bits words, least significant word
// first. Bits beyond v's width are always 0.
//
func (v Value) Words() (w [4]uint64) {
	switch v.kind {
	case Single, HalfByte:
		for i := 0; i < v.Len(); i++ {
			if v.b[i] {
				w[0] |= 1 << uint(i)
			}
		}
	case Byte, X16, X32, X64:
		w[0] = v.n
	case X128:
		w[0], w[1] = v.x[0].Lo, v.x[0].Hi
	case X256:
		w[0], w[1], w[2], w[3] = v.x[0].Lo, v.x[0].Hi, v.x[1].Lo, v.x[1].Hi
	default:
		panic("signal: unreachable")
	}
	return w
}

// FromWords returns a Value of kind k from the given words, least significant
// word first. Bits that do not fit in k are discarded.
//
func FromWords(k Kind, w [4]uint64) Value {
	v := Zero(k)
	switch k {
	case Single, HalfByte:
		for i := 0; i < k.Width(); i++ {
			v.b[i] = w[0]&(1<<uint(i)) != 0
		}
	case Byte, X16, X32:
		v.n = w[0] & (1<<uint(k.Width()) - 1)
	case X64:
		v.n = w[0]
	case X128:
		v.x[0] = uint128.New(w[0], w[1])
	case X256:
		v.x[0], v.x[1] = uint128.New(w[0], w[1]), uint128.New(w[2], w[3])
	}
	return v
}

// Uint64 returns the 64 least significant bits of v.
//
func (v Value) Uint64() uint64 {
	return v.Words()[0]
}

// Halves returns the low and high 128 bits halves of v. For values narrower
// than 256 bits, hi is zero.
//
func (v Value) Halves() (lo, hi Uint128) {
	w := v.Words()
	return uint128.New(w[0], w[1]), uint128.New(w[2], w[3])
}

// String returns the bits of v, most significant first, for values up to 64
// bits and a hexadecimal representation for wider values.
//
func (v Value) String() string {
	switch v.kind {
	case X128:
		return hex128(v.x[0])
	case X256:
		if v.x[1].IsZero() {
			return hex128(v.x[0])
		}
		lo := v.x[0].Big().Text(16)
		return hex128(v.x[1]) + strings.Repeat("0", 32-len(lo)) + lo
	}
	s := strconv.FormatUint(v.Uint64(), 2)
	return strings.Repeat("0", v.Len()-len(s)) + s
}
