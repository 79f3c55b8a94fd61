// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package severity provides the levels used when emitting through a
// metrics.Sink.
package severity

// Level represents a severity level of an emission.
// The basic severity levels are designed to match the levels used in open telemetry.
// Smaller numerical values correspond to less severe events (such as debug events),
// larger numerical values correspond to more severe events (such as errors and critical events).
//
// The following table defines the meaning of the severity levels:
// 1-4	TRACE	A fine-grained debugging event. Typically disabled in default configurations.
// 5-8	DEBUG	A debugging event.
// 9-12	INFO	An informational event. Indicates that an event happened.
// 13-16	WARN	A warning event. Not an error but is likely more important than an informational event.
// 17-20	ERROR	An error event. Something went wrong.
// 21-24	FATAL	A fatal error such as application or system crash.
//
// See https://github.com/open-telemetry/opentelemetry-specification/blob/main/specification/logs/data-model.md#severity-fields
// for more details
type Level uint64

const (
	TraceLevel   = Level(1)
	DebugLevel   = Level(5)
	InfoLevel    = Level(9)
	WarningLevel = Level(13)
	ErrorLevel   = Level(17)
	FatalLevel   = Level(21)
	MaxLevel     = Level(24)
)

// Class rounds the level down to the closest named level.
func (l Level) Class() Level {
	switch {
	case l > MaxLevel:
		return MaxLevel
	case l >= FatalLevel:
		return FatalLevel
	case l >= ErrorLevel:
		return ErrorLevel
	case l >= WarningLevel:
		return WarningLevel
	case l >= InfoLevel:
		return InfoLevel
	case l >= DebugLevel:
		return DebugLevel
	case l >= TraceLevel:
		return TraceLevel
	default:
		return 0
	}
}

func (l Level) String() string {
	switch l {
	case 0:
		return "invalid"

	case TraceLevel:
		return "trace"
	case TraceLevel + 1:
		return "trace2"
	case TraceLevel + 2:
		return "trace3"
	case TraceLevel + 3:
		return "trace4"

	case DebugLevel:
		return "debug"
	case DebugLevel + 1:
		return "debug2"
	case DebugLevel + 2:
		return "debug3"
	case DebugLevel + 3:
		return "debug4"

	case InfoLevel:
		return "info"
	case InfoLevel + 1:
		return "info2"
	case InfoLevel + 2:
		return "info3"
	case InfoLevel + 3:
		return "info4"

	case WarningLevel:
		return "warning"
	case WarningLevel + 1:
		return "warning2"
	case WarningLevel + 2:
		return "warning3"
	case WarningLevel + 3:
		return "warning4"

	case ErrorLevel:
		return "error"
	case ErrorLevel + 1:
		return "error2"
	case ErrorLevel + 2:
		return "error3"
	case ErrorLevel + 3:
		return "error4"

	case FatalLevel:
		return "fatal"
	case FatalLevel + 1:
		return "fatal2"
	case FatalLevel + 2:
		return "fatal3"
	case FatalLevel + 3:
		return "fatal4"
	default:
		return "invalid"
	}
}
