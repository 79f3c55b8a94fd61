// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logr provides a metrics.Sink that emits through a logr.Logger.
package logr

import (
	"github.com/go-logr/logr"
	"golang.org/x/metrics"
	"golang.org/x/metrics/severity"
)

type sink struct {
	logger logr.Logger
}

var _ metrics.Sink = (*sink)(nil)

// NewSink returns a Sink that writes each emission through logger.
// logr has no levels above info, so the severity class is carried as the
// "level" key and folded onto verbosities: debug and below log at V(1),
// everything else at V(0).
func NewSink(logger logr.Logger) metrics.Sink {
	return &sink{logger: logger}
}

func (s *sink) Emit(level severity.Level, message string) {
	s.logger.V(verbosity(level)).Info(message, "level", level.Class().String())
}

func verbosity(level severity.Level) int {
	if level.Class() <= severity.DebugLevel {
		return 1
	}
	return 0
}
