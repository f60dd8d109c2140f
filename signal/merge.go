// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package signal

// Merge returns the bitwise OR of a and b.
//
// The result has the kind of the wider operand; the narrower one is zero
// extended. When both operands have the same width, the result takes the kind
// of b. Neither operand is modified.
//
func Merge(a, b Value) Value {
	left, right := b, a
	if a.Len() > b.Len() {
		left, right = a, b
	}
	lw, rw := left.Words(), right.Words()
	for i := range lw {
		lw[i] |= rw[i]
	}
	return FromWords(left.kind, lw)
}

// MergeAll folds vs with Merge, starting from the zero Value.
//
func MergeAll(vs ...Value) Value {
	var acc Value
	for _, v := range vs {
		acc = Merge(acc, v)
	}
	return acc
}
