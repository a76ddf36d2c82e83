package apierr

import (
	"errors"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
)

const maxStackDepth = 32

type stack []uintptr

// callers records the stack starting at the caller of the constructor that
// invoked it.
func callers() stack {
	var pcs [maxStackDepth]uintptr
	// runtime.Callers, callers, constructor
	n := runtime.Callers(3, pcs[:])
	return pcs[:n]
}

// callersSkip is callers for constructors that sit extra frames above it.
func callersSkip(extra int) stack {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(3+extra, pcs[:])
	return pcs[:n]
}

func (s stack) String() string {
	if len(s) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(s)
	for {
		frame, more := frames.Next()
		b.WriteString(frame.Function)
		b.WriteString("\n\t")
		b.WriteString(frame.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(frame.Line))
		b.WriteByte('\n')
		if !more {
			break
		}
	}

	return b.String()
}

type stackTracer interface {
	StackTrace() string
}

// StackOf returns the stack recorded by the first error in err's chain that
// carries one. Errors raised outside this package get the caller's stack.
func StackOf(err error) string {
	var st stackTracer
	if errors.As(err, &st) {
		if trace := st.StackTrace(); trace != "" {
			return trace
		}
	}

	return string(debug.Stack())
}
