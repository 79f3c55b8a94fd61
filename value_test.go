// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/metrics"
)

func TestValueKinds(t *testing.T) {
	if got := metrics.StringOf("hello").String(); got != "hello" {
		t.Errorf("String() = %q, want hello", got)
	}
	if got := metrics.Int64Of(-3).Int64(); got != -3 {
		t.Errorf("Int64() = %d, want -3", got)
	}
	if got := metrics.Uint64Of(17).Uint64(); got != 17 {
		t.Errorf("Uint64() = %d, want 17", got)
	}
	if got := metrics.Float64Of(3.5).Float64(); got != 3.5 {
		t.Errorf("Float64() = %v, want 3.5", got)
	}
	if got := metrics.BoolOf(true).Bool(); got != true {
		t.Errorf("Bool() = %v, want true", got)
	}

	var zero metrics.Value
	if zero.HasValue() {
		t.Error("zero Value reports HasValue")
	}
	if !metrics.StringOf("").HasValue() {
		t.Error("empty string Value reports no value")
	}
}

func TestValueInterface(t *testing.T) {
	for _, test := range []struct {
		v    metrics.Value
		want interface{}
	}{
		{metrics.StringOf("s"), "s"},
		{metrics.Int64Of(4), int64(4)},
		{metrics.Uint64Of(5), uint64(5)},
		{metrics.Float64Of(1.25), 1.25},
		{metrics.BoolOf(false), false},
		{metrics.ValueOf([]int{1, 2}), []int{1, 2}},
	} {
		if got := test.v.Interface(); !cmp.Equal(got, test.want) {
			t.Errorf("Interface() = %#v, want %#v", got, test.want)
		}
	}
}

func TestValueWrongKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Int64 on a string value did not panic")
		}
	}()
	metrics.StringOf("not a number").Int64()
}

func TestFieldsJSON(t *testing.T) {
	fields := metrics.Fields{
		"s":      metrics.StringOf("v"),
		"i":      metrics.Int64Of(-2),
		"u":      metrics.Uint64Of(3),
		"f":      metrics.Float64Of(0.5),
		"b":      metrics.BoolOf(true),
		"nested": metrics.ValueOf(map[string]interface{}{"k": []interface{}{1, "two"}}),
	}
	data, err := json.Marshal(fields)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]interface{}{
		"s":      "v",
		"i":      -2.0,
		"u":      3.0,
		"f":      0.5,
		"b":      true,
		"nested": map[string]interface{}{"k": []interface{}{1.0, "two"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round-tripped fields mismatch (-want, +got):\n%s", diff)
	}
}

func TestFieldsClone(t *testing.T) {
	f := metrics.Fields{"a": metrics.Int64Of(1)}
	c := f.Clone()
	c["b"] = metrics.Int64Of(2)
	if _, ok := f["b"]; ok {
		t.Error("mutating the clone changed the original")
	}
}
