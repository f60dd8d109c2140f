// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package signal

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"lukechampine.com/uint128"
)

// Uint128 is an unsigned 128 bits integer. It is the type used for the halves
// of X128 and X256 values.
//
type Uint128 = uint128.Uint128

var one = uint128.From64(1)

// bit128 returns the state of bit i of u. i must be in the range [0, 128).
func bit128(u Uint128, i int) bool {
	return !u.Rsh(uint(i)).And64(1).IsZero()
}

// setBit128 returns a copy of u with bit i set to b.
func setBit128(u Uint128, i int, b bool) Uint128 {
	m := one.Lsh(uint(i))
	if b {
		return u.Or(m)
	}
	return u.And(m.Xor(uint128.Max))
}

// hex128 returns the hexadecimal representation of u with a 0x prefix.
func hex128(u Uint128) string {
	return "0x" + u.Big().Text(16)
}

// ParseUint128 parses a decimal, 0x hexadecimal, 0o octal or 0b binary
// string. Underscores are accepted as digit separators, as in Go literals.
//
func ParseUint128(s string) (Uint128, error) {
	b, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return uint128.Zero, errors.Errorf("invalid 128 bits integer %q", s)
	}
	if b.Sign() < 0 || b.BitLen() > 128 {
		return uint128.Zero, errors.Errorf("%q out of range for 128 bits", s)
	}
	return uint128.FromBig(b), nil
}
