package media

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents a failed ffmpeg or ffprobe invocation.
type Error struct {
	// Op names the operation that failed: "probe", "decode", "encode".
	Op string

	// Path is the input or output the tool was working on.
	Path string

	// Stderr is the tail of the tool's standard error output.
	Stderr string

	// Err is the underlying exec error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("media: %s %s: %v", e.Op, e.Path, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsMissingTool returns true if the tool binary was not found on PATH.
func (e *Error) IsMissingTool() bool {
	return strings.Contains(e.Err.Error(), "executable file not found")
}

// AsError extracts *Error from an error.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// stderrTail keeps the last few lines of a tool's stderr for diagnostics.
func stderrTail(buf []byte, lines int) string {
	s := strings.TrimSpace(string(buf))
	if s == "" {
		return ""
	}
	parts := strings.Split(s, "\n")
	if len(parts) > lines {
		parts = parts[len(parts)-lines:]
	}
	return strings.Join(parts, "\n")
}
