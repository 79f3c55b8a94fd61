// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gokit provides a metrics.Sink that emits through a go-kit logger.
package gokit

import (
	"github.com/go-kit/kit/log"
	"golang.org/x/metrics"
	"golang.org/x/metrics/severity"
)

type sink struct {
	logger log.Logger
}

var _ metrics.Sink = (*sink)(nil)

// NewSink returns a Sink that writes each emission through logger as a
// level/msg pair.
func NewSink(logger log.Logger) metrics.Sink {
	return &sink{logger: logger}
}

func (s *sink) Emit(level severity.Level, message string) {
	// The sink contract is fire-and-forget, so the write error is dropped.
	_ = s.logger.Log("level", level.Class().String(), "msg", message)
}
