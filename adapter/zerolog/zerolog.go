// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zerolog provides a metrics.Sink that emits through a zerolog
// logger.
package zerolog

import (
	"github.com/rs/zerolog"
	"golang.org/x/metrics"
	"golang.org/x/metrics/severity"
)

type sink struct {
	logger zerolog.Logger
}

var _ metrics.Sink = (*sink)(nil)

// NewSink returns a Sink that writes each emission through logger at the
// matching zerolog level.
func NewSink(logger zerolog.Logger) metrics.Sink {
	return &sink{logger: logger}
}

func (s *sink) Emit(level severity.Level, message string) {
	s.logger.WithLevel(convertLevel(level)).Msg(message)
}

func convertLevel(level severity.Level) zerolog.Level {
	switch level.Class() {
	case severity.TraceLevel:
		return zerolog.TraceLevel
	case severity.DebugLevel:
		return zerolog.DebugLevel
	case severity.InfoLevel:
		return zerolog.InfoLevel
	case severity.WarningLevel:
		return zerolog.WarnLevel
	case severity.ErrorLevel:
		return zerolog.ErrorLevel
	case severity.FatalLevel, severity.MaxLevel:
		// WithLevel on FatalLevel does not exit the process, which is
		// what a fire-and-forget sink wants.
		return zerolog.FatalLevel
	default:
		return zerolog.DebugLevel
	}
}
