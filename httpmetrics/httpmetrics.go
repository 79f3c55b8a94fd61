// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package httpmetrics scopes a metrics context to each request served by an
// http.Handler.
package httpmetrics

import (
	"net/http"

	"golang.org/x/metrics"
	"golang.org/x/metrics/severity"
)

// Names of the fields seeded into each request's context.
const (
	RemoteAddrKey  = "REMOTE_ADDR"
	PathInfoKey    = "PATH_INFO"
	QueryStringKey = "QUERY_STRING"
	ThreadKey      = "thread"
)

type handler struct {
	recorder *metrics.Recorder
	inner    http.Handler
}

// NewHandler wraps h so that every request runs inside its own metrics
// context, opened on rec and closed (and so emitted) when h returns,
// including on panic. The context is seeded with the client address, the
// request path, the raw query string and the identity of the serving
// goroutine.
//
// The wrapped handler, and anything it calls, reaches the live field map
// through the request context:
//
//	metrics.FromContext(r.Context()).Fields()["user_id"] = metrics.StringOf(id)
func NewHandler(rec *metrics.Recorder, h http.Handler) http.Handler {
	return &handler{recorder: rec, inner: h}
}

func (h *handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	ctx, c, err := h.recorder.Start(req.Context(), metrics.Fields{
		RemoteAddrKey:  metrics.StringOf(req.RemoteAddr),
		PathInfoKey:    metrics.StringOf(req.URL.Path),
		QueryStringKey: metrics.StringOf(req.URL.RawQuery),
	})
	if err != nil {
		// A context is already active on this request, so the request is
		// already instrumented further out; serve without opening another.
		h.recorder.Sink().Emit(severity.WarningLevel, "httpmetrics: "+err.Error())
		h.inner.ServeHTTP(w, req)
		return
	}
	c.Fields()[ThreadKey] = metrics.StringOf(c.Thread())
	defer func() {
		if err := c.Close(); err != nil {
			// The response is gone by now; the failure can only be
			// reported as a diagnostic.
			h.recorder.Sink().Emit(severity.WarningLevel, "httpmetrics: "+err.Error())
		}
	}()
	h.inner.ServeHTTP(w, req.WithContext(ctx))
}
