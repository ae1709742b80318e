// Package miscue provides error handling for choreo timeline operations.
//
// The miscue package uses stage metaphors for engine error handling - when a
// caller hands the engine something it cannot play, the engine reports a
// "miscue" rather than improvising. Every miscue is a local precondition
// violation surfaced synchronously; nothing is retried and no operation
// leaves partial state behind.
package miscue

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Code categorizes the precondition a caller violated.
type Code int

const (
	// InvalidDuration indicates a negative duration was supplied when
	// queueing an action. The timeline is left unmodified.
	InvalidDuration Code = iota

	// OutOfRangeQuery indicates a timeline was queried at a negative
	// absolute time.
	OutOfRangeQuery

	// UnknownKey indicates a custom action's result snapshot dropped a
	// custom key that its start snapshot established.
	UnknownKey
)

func (c Code) String() string {
	switch c {
	case InvalidDuration:
		return "invalid_duration"
	case OutOfRangeQuery:
		return "out_of_range_query"
	case UnknownKey:
		return "unknown_key"
	default:
		return "unknown"
	}
}

// Context provides structured debugging information for miscues.
//
// Context captures the inputs that tripped the precondition, such as the
// offending duration or query time, so failures read well in test output.
type Context map[string]interface{}

// Miscue represents a rejected engine operation with rich context.
//
// Miscues carry a Code for systematic handling with errors.Is, a
// human-readable message, and a Context describing the offending call.
//
// Example usage:
//
//	err := miscue.New(miscue.InvalidDuration, "duration must not be negative",
//	    miscue.Context{"duration": -1.5})
//
//	if errors.Is(err, miscue.InvalidDuration) {
//	    // reject the cue, timeline unchanged
//	}
type Miscue struct {
	Code    Code    // Error category for systematic handling
	Message string  // Human-readable description
	Context Context // Additional debugging information
}

// New creates a new miscue with the given code, message and context.
func New(code Code, message string, context Context) *Miscue {
	return &Miscue{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Error implements the error interface.
func (m *Miscue) Error() string {
	if len(m.Context) == 0 {
		return fmt.Sprintf("[%s] %s", m.Code, m.Message)
	}

	keys := make([]string, 0, len(m.Context))
	for k := range m.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, m.Context[k]))
	}

	return fmt.Sprintf("[%s] %s (%s)", m.Code, m.Message, strings.Join(parts, ", "))
}

// Is lets errors.Is match a miscue against its Code, so callers can write
// errors.Is(err, miscue.InvalidDuration) without unwrapping by hand.
func (m *Miscue) Is(target error) bool {
	if code, ok := target.(Code); ok {
		return m.Code == code
	}
	var other *Miscue
	if errors.As(target, &other) {
		return m.Code == other.Code
	}
	return false
}

// Error implements the error interface for Code, making the bare code usable
// as an errors.Is target.
func (c Code) Error() string {
	return c.String()
}

// GetContext retrieves a context value by key.
func (m *Miscue) GetContext(key string) (interface{}, bool) {
	if m.Context == nil {
		return nil, false
	}
	val, exists := m.Context[key]
	return val, exists
}
