// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blocksim

// A socket maps the connection ids declared by a circuit definition to
// connections in a graph. Each block being built gets its own socket; sockets
// are discarded once the block's wires are linked.
//
type socket struct {
	block int // declared id of the block
	m     map[int]ConnID
}

func newSocket(block, size int) *socket {
	return &socket{block: block, m: make(map[int]ConnID, size)}
}

// bind maps localID to id. It returns false if localID was already bound, in
// which case the new binding replaces the old one.
func (s *socket) bind(localID int, id ConnID) bool {
	_, dup := s.m[localID]
	s.m[localID] = id
	return !dup
}

// conn returns the connection bound to localID.
func (s *socket) conn(localID int) (ConnID, bool) {
	id, ok := s.m[localID]
	return id, ok
}
