// Package clog is the module's package-level logger: a terse DEBUG/TRACE/WARN
// trio gated by an atomic level, in the same call convention the teacher's
// log package is used throughout its operators (entry trace, deferred exit
// trace).
package clog

import (
	"fmt"
	"os"
	"sync/atomic"
)

// Level controls which of DEBUG/TRACE/WARN actually print.
type Level int32

const (
	LevelSilent Level = iota
	LevelWarn
	LevelDebug
	LevelTrace
)

var level atomic.Int32

func init() {
	level.Store(int32(LevelWarn))
}

// SetLevel changes the active log level. Safe to call concurrently.
func SetLevel(l Level) {
	level.Store(int32(l))
}

func current() Level {
	return Level(level.Load())
}

// DEBUG prints a debug-level message if the current level permits it.
func DEBUG(format string, args ...interface{}) {
	if current() >= LevelDebug {
		emit("DEBUG", format, args...)
	}
}

// TRACE prints a trace-level message if the current level permits it.
func TRACE(format string, args ...interface{}) {
	if current() >= LevelTrace {
		emit("TRACE", format, args...)
	}
}

// WARN always prints, unless logging has been silenced entirely.
func WARN(format string, args ...interface{}) {
	if current() >= LevelWarn {
		emit("WARN", format, args...)
	}
}

func emit(tag, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "["+tag+"] "+format+"\n", args...)
}
