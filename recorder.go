// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"time"
)

// Recorder opens contexts and routes their emissions to a Sink.
// A Recorder is constructed once and shared; it is safe for concurrent use.
type Recorder struct {
	sink Sink
	opts Options
}

// Options control the capabilities a Recorder consumes.
type Options struct {
	// Now returns the current time. nil means time.Now.
	Now func() time.Time

	// ThreadID returns an identity for the calling goroutine, used in
	// diagnostic messages and as a context's Thread. nil means the
	// runtime's goroutine number.
	ThreadID func() string

	// AllowNesting selects the permissive policy: opening a context while
	// one is active shadows the outer context instead of failing, and the
	// outer binding is restored when the inner scope ends. The default,
	// strict policy fails Start with ErrContextActive instead.
	AllowNesting bool
}

// NewRecorder creates a Recorder that emits through the supplied sink.
func NewRecorder(sink Sink, opts *Options) *Recorder {
	if sink == nil {
		panic("sink must not be nil")
	}
	r := &Recorder{sink: sink}
	if opts != nil {
		r.opts = *opts
	}
	if r.opts.Now == nil {
		r.opts.Now = time.Now
	}
	if r.opts.ThreadID == nil {
		r.opts.ThreadID = goroutineID
	}
	return r
}

// Sink returns the sink the recorder emits through.
func (r *Recorder) Sink() Sink { return r.sink }

func (r *Recorder) now() time.Time { return r.opts.Now() }

func (r *Recorder) threadID() string { return r.opts.ThreadID() }

// contextKeyType is used as the key for storing the active Context on a
// context.Context.
type contextKeyType struct{}

var contextKey interface{} = contextKeyType{}

// FromContext returns the active Context for ctx, or nil if none is
// installed. Under the permissive policy the innermost open context wins.
func FromContext(ctx context.Context) *Context {
	c, _ := ctx.Value(contextKey).(*Context)
	return c
}

// epochSeconds converts a time to the wire representation of timestamps,
// seconds since the Unix epoch.
func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
