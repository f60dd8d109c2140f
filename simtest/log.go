// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package simtest

import (
	"strings"
	"sync"
	"testing"

	"github.com/tliron/commonlog"
	"github.com/tliron/commonlog/simple"
)

// LogRecorder collects formatted log messages.
//
type LogRecorder struct {
	mu sync.Mutex
	b  strings.Builder
}

func (r *LogRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.b.Write(p)
}

// String returns all messages recorded so far, one per line.
//
func (r *LogRecorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.b.String()
}

// RecordLog sends warnings and more severe messages to the returned recorder
// until the end of the test. Logging is disabled afterwards.
//
func RecordLog(t testing.TB) *LogRecorder {
	r := new(LogRecorder)
	b := simple.NewBackend()
	b.Writer = r
	b.SetMaxLevel(commonlog.Warning)
	commonlog.SetBackend(b)
	t.Cleanup(func() { commonlog.SetBackend(nil) })
	return r
}
