// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zap provides a metrics.Sink that emits through a zap logger.
package zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/metrics"
	"golang.org/x/metrics/severity"
)

type sink struct {
	logger *zap.Logger
}

var _ metrics.Sink = (*sink)(nil)

// NewSink returns a Sink that writes each emission through logger at the
// matching zap level.
func NewSink(logger *zap.Logger) metrics.Sink {
	return &sink{logger: logger}
}

func (s *sink) Emit(level severity.Level, message string) {
	if ce := s.logger.Check(convertLevel(level), message); ce != nil {
		ce.Write()
	}
}

func convertLevel(level severity.Level) zapcore.Level {
	switch level.Class() {
	case severity.TraceLevel, severity.DebugLevel:
		return zapcore.DebugLevel
	case severity.InfoLevel:
		return zapcore.InfoLevel
	case severity.WarningLevel:
		return zapcore.WarnLevel
	case severity.ErrorLevel:
		return zapcore.ErrorLevel
	case severity.FatalLevel, severity.MaxLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.DebugLevel
	}
}
