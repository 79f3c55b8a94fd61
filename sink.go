// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"golang.org/x/metrics/severity"
)

// Sink is the capability a Recorder emits through.
// It receives the closed context's serialized record at info severity, the
// dropped-event diagnostic at warning severity and open/close tracing at
// debug severity. Emit is called synchronously from the recording call site,
// so it should return quickly so as not to hold up user code.
type Sink interface {
	Emit(level severity.Level, message string)
}

// TimeFormat is the format used by WriterSink for the leading timestamp.
const TimeFormat = "2006/01/02 15:04:05"

// WriterSink is a Sink that prints each emission as a single line to an
// io.Writer. It is safe for concurrent use.
type WriterSink struct {
	// Now is used for the line timestamp. nil means time.Now.
	Now func() time.Time

	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a WriterSink that prints to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit implements Sink.
func (s *WriterSink) Emit(level severity.Level, message string) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "%s [%s] %s\n", now().Format(TimeFormat), level.Class(), message)
}

// defaultSink is where diagnostics go when no recorder is reachable, such as
// an event recorded outside any context.
var defaultSink unsafe.Pointer // *Sink

func init() {
	SetDefaultSink(NewWriterSink(os.Stderr))
}

// SetDefaultSink sets the sink used for diagnostics that cannot be routed to
// a recorder.
func SetDefaultSink(s Sink) {
	if s == nil {
		panic("sink must not be nil")
	}
	atomic.StorePointer(&defaultSink, unsafe.Pointer(&s))
}

func getDefaultSink() Sink {
	return *(*Sink)(atomic.LoadPointer(&defaultSink))
}
