// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logrus provides a metrics.Sink that emits through a logrus
// logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/metrics"
	"golang.org/x/metrics/severity"
)

type sink struct {
	logger *logrus.Logger
}

var _ metrics.Sink = (*sink)(nil)

// NewSink returns a Sink that writes each emission through logger at the
// matching logrus level.
func NewSink(logger *logrus.Logger) metrics.Sink {
	return &sink{logger: logger}
}

func (s *sink) Emit(level severity.Level, message string) {
	s.logger.Log(convertLevel(level), message)
}

func convertLevel(level severity.Level) logrus.Level {
	switch level.Class() {
	case severity.TraceLevel:
		return logrus.TraceLevel
	case severity.DebugLevel:
		return logrus.DebugLevel
	case severity.InfoLevel:
		return logrus.InfoLevel
	case severity.WarningLevel:
		return logrus.WarnLevel
	case severity.ErrorLevel:
		return logrus.ErrorLevel
	case severity.FatalLevel, severity.MaxLevel:
		// logger.Log on FatalLevel does not call Exit, unlike
		// logger.Fatal, which is what a fire-and-forget sink wants.
		return logrus.FatalLevel
	default:
		return logrus.TraceLevel
	}
}
