// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blocksim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_arena(t *testing.T) {
	var a arena[string]
	for _, s := range []string{"a", "b", "c"} {
		a.alloc(s)
	}
	assert.Equal(t, 3, a.len())

	a.release(1)
	assert.Equal(t, 2, a.len())
	_, ok := a.get(1)
	assert.False(t, ok, "released slot")
	_, ok = a.get(-1)
	assert.False(t, ok)
	_, ok = a.get(3)
	assert.False(t, ok)

	var seen []string
	a.each(func(_ int, v *string) { seen = append(seen, *v) })
	assert.Equal(t, []string{"a", "c"}, seen)

	// released slots are reused
	i := a.alloc("d")
	assert.Equal(t, 1, i)
	v, ok := a.get(i)
	assert.True(t, ok)
	assert.Equal(t, "d", *v)
	assert.Len(t, a.items, 3)
}

func Test_socket(t *testing.T) {
	s := newSocket(4, 2)
	assert.True(t, s.bind(0, 10))
	assert.True(t, s.bind(1, 11))
	assert.False(t, s.bind(0, 12), "duplicate")
	id, ok := s.conn(0)
	assert.True(t, ok)
	assert.Equal(t, ConnID(12), id, "last binding wins")
	_, ok = s.conn(2)
	assert.False(t, ok)
}
