// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logr_test

import (
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	mlogr "golang.org/x/metrics/adapter/logr"
	"golang.org/x/metrics/severity"
)

func Test(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})
	sink := mlogr.NewSink(logger)

	sink.Emit(severity.DebugLevel, "opening")
	sink.Emit(severity.InfoLevel, "record")
	sink.Emit(severity.WarningLevel, "dropped")

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	want := []struct {
		level   string
		message string
	}{
		{"debug", "opening"},
		{"info", "record"},
		{"warning", "dropped"},
	}
	for i, w := range want {
		if !strings.Contains(lines[i], `"`+w.message+`"`) {
			t.Errorf("line %d = %q, want message %q", i, lines[i], w.message)
		}
		if !strings.Contains(lines[i], `"`+w.level+`"`) {
			t.Errorf("line %d = %q, want level %q", i, lines[i], w.level)
		}
	}
}

func TestVerbosityFiltering(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 0})
	sink := mlogr.NewSink(logger)

	sink.Emit(severity.DebugLevel, "filtered")
	sink.Emit(severity.InfoLevel, "kept")

	if len(lines) != 1 || !strings.Contains(lines[0], `"kept"`) {
		t.Errorf("lines = %q, want only the info emission", lines)
	}
}
