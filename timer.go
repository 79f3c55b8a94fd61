// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"time"
)

// StartTimer begins timing a duration-bearing operation against the context
// installed on ctx. It returns the live field map, which the operation may
// extend with result fields until stop is called, and the stop function
// itself:
//
//	fields, stop := metrics.StartTimer(ctx, "db_query", nil)
//	defer stop()
//	...
//	fields["rows"] = metrics.Int64Of(n)
//
// stop sets start and duration covering the full span between StartTimer
// and stop, and records the event exactly once; extra calls do nothing.
// Call it with defer so the event is recorded even when the operation
// fails. With no context open on ctx the timer still measures, and stop
// takes the dropped-event warning path.
func StartTimer(ctx context.Context, name string, fields Fields) (Fields, func()) {
	return newTimer(FromContext(ctx), name, fields)
}

// StartTimer is the explicit-context form of the package-level StartTimer.
func (c *Context) StartTimer(name string, fields Fields) (Fields, func()) {
	return newTimer(c, name, fields)
}

func newTimer(c *Context, name string, fields Fields) (Fields, func()) {
	if fields == nil {
		fields = Fields{}
	}
	now := time.Now
	if c != nil {
		now = c.recorder.now
	}
	start := now()
	stopped := false
	stop := func() {
		if stopped {
			return
		}
		stopped = true
		end := now()
		fields[StartKey] = Float64Of(epochSeconds(start))
		fields[DurationKey] = Float64Of(end.Sub(start).Seconds())
		if c == nil {
			dropEvent(name, fields, start)
			return
		}
		c.Event(name, fields)
	}
	return fields, stop
}
