// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blocksim

import (
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("blocksim")

// Instantiation diagnostics. They are returned wrapped in a Report; use
// errors.Cause to match them.
//
var (
	// A wire endpoint references a block other than the one declaring the
	// wire.
	ErrOutOfScope = errors.New("wire endpoint outside of the declaring block")
	// A wire endpoint references an undeclared connection id.
	ErrUnknownConnection = errors.New("unknown connection")
	// Two connections of the same block share an id; the last one wins.
	ErrDuplicateConnection = errors.New("duplicate connection id")
)

// Report describes the outcome of loading a circuit definition. Loading never
// fails: problems are listed in Warnings and the offending parts are skipped.
//
type Report struct {
	Root     BlockRef // top level block created
	Replaced bool     // whether a block with the same id was replaced
	Warnings []error
}

func (r *Report) warn(err error) {
	log.Warning(err.Error())
	r.Warnings = append(r.Warnings, err)
}
