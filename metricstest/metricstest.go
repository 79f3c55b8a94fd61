// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metricstest supports testing code that records metrics.
// NewRecorder builds a Recorder whose emissions are captured in memory and
// whose clock and goroutine identity are deterministic, so tests can assert
// on exact records.
package metricstest

import (
	"sync"
	"time"

	"golang.org/x/metrics"
	"golang.org/x/metrics/severity"
)

// InitialTime is the first time returned by the deterministic clock.
var InitialTime = func() time.Time {
	t, _ := time.Parse(metrics.TimeFormat, "2020/03/05 14:27:48")
	return t
}()

// Now returns a clock that starts at InitialTime and advances one second
// per observation.
func Now() func() time.Time {
	nextTime := InitialTime
	return func() time.Time {
		thisTime := nextTime
		nextTime = nextTime.Add(time.Second)
		return thisTime
	}
}

// ThreadID is the identity the test recorder reports for every goroutine.
const ThreadID = "goroutine test"

// Emission is one call made to a CaptureSink.
type Emission struct {
	Level   severity.Level
	Message string
}

// CaptureSink is a Sink that remembers everything emitted through it.
type CaptureSink struct {
	mu  sync.Mutex
	got []Emission
}

var _ metrics.Sink = (*CaptureSink)(nil)

func (s *CaptureSink) Emit(level severity.Level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, Emission{Level: level, Message: message})
}

// Got returns the emissions captured so far, in order.
func (s *CaptureSink) Got() []Emission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Emission(nil), s.got...)
}

// At returns the emissions captured so far at the given severity class.
func (s *CaptureSink) At(class severity.Level) []Emission {
	var at []Emission
	for _, e := range s.Got() {
		if e.Level.Class() == class {
			at = append(at, e)
		}
	}
	return at
}

// Reset discards the captured emissions.
func (s *CaptureSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = s.got[:0]
}

// Options returns recorder options with the deterministic clock and
// identity.
func Options() *metrics.Options {
	return &metrics.Options{
		Now:      Now(),
		ThreadID: func() string { return ThreadID },
	}
}

// NewRecorder returns a Recorder wired to a fresh CaptureSink, using the
// deterministic clock and identity.
func NewRecorder() (*metrics.Recorder, *CaptureSink) {
	sink := &CaptureSink{}
	return metrics.NewRecorder(sink, Options()), sink
}
