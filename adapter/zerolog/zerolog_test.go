// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zerolog_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	mzerolog "golang.org/x/metrics/adapter/zerolog"
	"golang.org/x/metrics/severity"
)

func Test(t *testing.T) {
	var buf strings.Builder
	sink := mzerolog.NewSink(zerolog.New(&buf))

	sink.Emit(severity.DebugLevel, "opening")
	sink.Emit(severity.InfoLevel, "record")
	sink.Emit(severity.WarningLevel, "dropped")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	want := []struct {
		level   string
		message string
	}{
		{"debug", "opening"},
		{"info", "record"},
		{"warn", "dropped"},
	}
	for i, w := range want {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(lines[i]), &entry); err != nil {
			t.Fatal(err)
		}
		if entry["level"] != w.level || entry["message"] != w.message {
			t.Errorf("line %d = %v, want level %s message %s", i, entry, w.level, w.message)
		}
	}
}
