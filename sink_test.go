// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics_test

import (
	"strings"
	"testing"

	"golang.org/x/metrics"
	"golang.org/x/metrics/metricstest"
	"golang.org/x/metrics/severity"
)

func TestWriterSink(t *testing.T) {
	var buf strings.Builder
	sink := metrics.NewWriterSink(&buf)
	sink.Now = metricstest.Now()

	sink.Emit(severity.InfoLevel, "first")
	sink.Emit(severity.WarningLevel, "second")

	want := "2020/03/05 14:27:48 [info] first\n" +
		"2020/03/05 14:27:49 [warning] second\n"
	if got := buf.String(); got != want {
		t.Errorf("output:\n%q\nwant:\n%q", got, want)
	}
}

func TestSetDefaultSinkNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetDefaultSink(nil) did not panic")
		}
	}()
	metrics.SetDefaultSink(nil)
}
