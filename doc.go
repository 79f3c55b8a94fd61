// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics records named, timestamped events against a unit of work
// and emits one structured record when that unit completes.
//
// A Recorder is constructed once with a Sink and opens a Context per unit of
// work (a request, a job run, a script execution). The open context travels
// on a context.Context, so libraries record events without being handed an
// explicit reference:
//
//	rec := metrics.NewRecorder(sink, nil)
//	ctx, c, err := rec.Start(ctx, metrics.Fields{"job": metrics.StringOf("rebuild")})
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	metrics.Event(ctx, "cache_miss", nil)
//
//	fields, stop := metrics.StartTimer(ctx, "db_query", nil)
//	rows, err := query(ctx)
//	fields["rows"] = metrics.Int64Of(int64(rows))
//	stop()
//
// Close serializes the context's fields, its start and duration, and every
// recorded event to a single JSON object and emits it through the Sink at
// info severity. Events appear in recording order. An event recorded with no
// open context is dropped with a warning naming the goroutine; it is never
// an error.
//
// By default opening a context while one is already open on the same
// context.Context chain fails with ErrContextActive. Options.AllowNesting
// selects the permissive policy instead: the inner context shadows the outer
// for the duration of its scope and collects the events recorded under it.
package metrics
