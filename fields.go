// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

// Fields is a mutable mapping from field name to value.
// A context's field map is live for the whole unit of work; an event's field
// map is owned by the context once recorded and must not be mutated after
// that point.
type Fields map[string]Value

// Names of the fields the package itself manages.
// Callers may supply NameKey and StartKey when recording an event;
// DurationKey is set only by timers and EventsKey only at context close.
const (
	NameKey     = "name"
	StartKey    = "start"
	DurationKey = "duration"
	EventsKey   = "events"
)

// Clone returns a copy of the field map.
// Values are shared; only the map itself is copied.
func (f Fields) Clone() Fields {
	c := make(Fields, len(f))
	for k, v := range f {
		c[k] = v
	}
	return c
}
