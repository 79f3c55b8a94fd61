// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"bytes"
	"runtime"
)

// goroutineID returns a stable identity for the calling goroutine, in the
// form "goroutine 123". It is used only in diagnostic messages and as the
// default thread field of request-scoped contexts; nothing keys off it.
func goroutineID() string {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	// The first line of a stack dump is "goroutine 123 [running]:".
	if i := bytes.IndexByte(buf, '['); i > 0 {
		return string(bytes.TrimSpace(buf[:i]))
	}
	return string(buf)
}
