// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/metrics/severity"
)

// Event records a single occurrence against the context installed on ctx.
// It is the ambient form of Context.Event; libraries call it without being
// handed a *Context.
//
// If no context is open on ctx, the event is dropped with a warning through
// the default sink naming the calling goroutine and the payload. It is
// never an error to record outside a context.
func Event(ctx context.Context, name string, fields Fields) {
	if c := FromContext(ctx); c != nil {
		c.Event(name, fields)
		return
	}
	dropEvent(name, fields, time.Now())
}

// dropEvent reports an event that had no context to land in.
// The fields are completed the same way Context.Event would have, so the
// diagnostic shows the full payload that was lost.
func dropEvent(name string, fields Fields, now time.Time) {
	if fields == nil {
		fields = Fields{}
	}
	if _, ok := fields[StartKey]; !ok {
		fields[StartKey] = Float64Of(epochSeconds(now))
	}
	fields[NameKey] = StringOf(name)
	getDefaultSink().Emit(severity.WarningLevel,
		fmt.Sprintf("%s: no context to record event: %s", goroutineID(), payload(fields)))
}
