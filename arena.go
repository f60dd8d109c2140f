// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blocksim

import "github.com/bits-and-blooms/bitset"

// arena stores records of type T addressed by their index. Released slots are
// reused by later allocations.
//
type arena[T any] struct {
	items []T
	live  bitset.BitSet
	free  []int
}

func (a *arena[T]) alloc(v T) int {
	var i int
	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
		a.items[i] = v
	} else {
		i = len(a.items)
		a.items = append(a.items, v)
	}
	a.live.Set(uint(i))
	return i
}

func (a *arena[T]) release(i int) {
	var zero T
	a.items[i] = zero
	a.live.Clear(uint(i))
	a.free = append(a.free, i)
}

// get returns a pointer to the record at index i. The pointer is valid until
// the next call to alloc.
func (a *arena[T]) get(i int) (*T, bool) {
	if i < 0 || i >= len(a.items) || !a.live.Test(uint(i)) {
		return nil, false
	}
	return &a.items[i], true
}

func (a *arena[T]) len() int {
	return int(a.live.Count())
}

// each calls fn for every live record in index order.
func (a *arena[T]) each(fn func(i int, v *T)) {
	for i, ok := a.live.NextSet(0); ok; i, ok = a.live.NextSet(i + 1) {
		fn(int(i), &a.items[i])
	}
}
