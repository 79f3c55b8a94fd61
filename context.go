// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/metrics/severity"
)

var (
	// ErrContextActive is returned by Recorder.Start under the strict
	// policy when the supplied context already carries an open Context.
	ErrContextActive = errors.New("metrics: context already active")

	// ErrContextClosed is returned by Close on a Context that has already
	// been closed and emitted.
	ErrContextClosed = errors.New("metrics: context already closed")
)

// Context is one unit of work. It accumulates events from open to close and
// emits them, together with its own fields, as a single record when closed.
type Context struct {
	recorder *Recorder
	start    time.Time
	thread   string

	mu     sync.Mutex
	fields Fields
	events []Fields
	closed bool
}

// Start opens a Context seeded with the supplied fields and installs it on
// the returned context.Context, so that Event and StartTimer reach it
// without an explicit reference. The field map stays live for the whole
// scope; the caller may keep adding fields until Close.
//
// Under the strict policy Start fails with ErrContextActive if ctx already
// carries an open Context; nothing is installed or emitted in that case.
// Close must be called exactly once on every started Context, normally with
// defer so it runs on failure paths too.
func (r *Recorder) Start(ctx context.Context, fields Fields) (context.Context, *Context, error) {
	if active := FromContext(ctx); active != nil && !r.opts.AllowNesting {
		return ctx, nil, ErrContextActive
	}
	if fields == nil {
		fields = Fields{}
	}
	c := &Context{
		recorder: r,
		start:    r.now(),
		thread:   r.threadID(),
		fields:   fields,
		events:   []Fields{},
	}
	r.sink.Emit(severity.DebugLevel, c.thread+": entering context")
	return context.WithValue(ctx, contextKey, c), c, nil
}

// Fields returns the context's live field map.
// The map belongs to the unit of work; mutate it only from code running
// within the scope, and not concurrently with Close.
func (c *Context) Fields() Fields { return c.fields }

// Thread returns the identity captured when the context was opened.
func (c *Context) Thread() string { return c.thread }

// Events returns a snapshot of the events recorded so far, in recording
// order.
func (c *Context) Events() []Fields {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make([]Fields, len(c.events))
	copy(snapshot, c.events)
	return snapshot
}

// Event records a single occurrence against the context.
// If fields has no start, it is set to the current time; name is stored
// under the name field. The field map is owned by the context after the
// call and must not be mutated again.
//
// A closed context or an empty name drops the event with a warning; Event
// never fails.
func (c *Context) Event(name string, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	if _, ok := fields[StartKey]; !ok {
		fields[StartKey] = Float64Of(epochSeconds(c.recorder.now()))
	}
	fields[NameKey] = StringOf(name)
	if name == "" {
		c.recorder.sink.Emit(severity.WarningLevel,
			fmt.Sprintf("%s: event with empty name dropped: %s", c.recorder.threadID(), payload(fields)))
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		c.recorder.sink.Emit(severity.WarningLevel,
			fmt.Sprintf("%s: context closed, dropping event: %s", c.recorder.threadID(), payload(fields)))
		return
	}
	c.events = append(c.events, fields)
}

// Close freezes and emits the context's record: the fields supplied at and
// since Start, plus start and duration for the whole scope and the recorded
// events in order. The record is serialized to JSON and emitted through the
// recorder's sink at info severity, exactly once per Context.
//
// If a field value cannot be serialized, Close returns the error and emits
// nothing; there is no partial emission and no retry.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrContextClosed
	}
	c.closed = true
	now := c.recorder.now()
	c.fields[StartKey] = Float64Of(epochSeconds(c.start))
	c.fields[DurationKey] = Float64Of(now.Sub(c.start).Seconds())
	c.fields[EventsKey] = ValueOf(c.events)
	data, err := json.Marshal(c.fields)
	if err != nil {
		return fmt.Errorf("metrics: serialize context: %w", err)
	}
	c.recorder.sink.Emit(severity.InfoLevel, string(data))
	c.recorder.sink.Emit(severity.DebugLevel, c.thread+": leaving context")
	return nil
}

// payload renders a field map for diagnostic messages.
func payload(fields Fields) string {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Sprintf("%v", map[string]Value(fields))
	}
	return string(data)
}
