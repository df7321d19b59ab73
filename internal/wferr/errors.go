// Package wferr provides standardized error handling for Wayfinder.
// All errors have stable, machine-readable codes, structured context, and proper wrapping.
package wferr

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
)

// Code represents a stable, machine-readable error code.
// Format: E{category}{number} where category is 1-5 and number is 001-999.
type Code string

// Error codes organized by category.
const (
	// Schema errors (E1xxx) - problems with destination descriptors
	ErrSchemaInvalid   Code = "E1001" // Descriptor is malformed or invalid
	ErrSchemaDuplicate Code = "E1002" // Duplicate field or destination name
	ErrSchemaNotFound  Code = "E1003" // Referenced destination does not exist
	ErrSchemaNesting   Code = "E1004" // Composite field nesting is not supported
	ErrSchemaKind      Code = "E1005" // Field kind is unknown or not a leaf kind

	// Encoding errors (E2xxx) - problems while encoding a destination
	ErrEncodeRequiredNull Code = "E2001" // Required field holds a null/absent value
	ErrEncodeBadValue     Code = "E2002" // Value cannot be represented for its field kind
	ErrEncodeUnknownField Code = "E2003" // Value supplied for a field the descriptor lacks

	// Decoding errors (E3xxx) - problems while decoding an argument bundle
	ErrDecodeMissingArg Code = "E3001" // Bundle is missing a required argument
	ErrDecodeBadValue   Code = "E3002" // Argument value fails type coercion
	ErrDecodeUnknownArg Code = "E3003" // Bundle carries an argument the descriptor lacks
	ErrDecodeBadRoute   Code = "E3004" // Route string does not match the pattern shape

	// Manifest errors (E4xxx) - problems with manifest files
	ErrManifestRead  Code = "E4001" // Manifest file could not be read
	ErrManifestParse Code = "E4002" // Manifest YAML is malformed

	// Generation errors (E5xxx) - problems during code generation
	ErrGenFailed Code = "E5001" // Generated source is invalid

	// Internal errors (E9xxx) - unexpected internal errors
	ErrInternal Code = "E9001" // Internal error
)

// Error is the standard error type for Wayfinder.
// It provides structured error information with codes, context, and wrapping support.
type Error struct {
	code    Code           // Machine-readable error code
	message string         // Human-readable error message
	context map[string]any // Structured context data
	cause   error          // Wrapped underlying error
	stack   string         // Stack trace for debugging
}

// Error returns the formatted error string.
// Format:
//
//	[E3001] missing required argument
//	  destination: shop.Article
//	  field: id
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.code, e.message))

	// Write context in sorted order for deterministic output
	if len(e.context) > 0 {
		keys := make([]string, 0, len(e.context))
		for k := range e.context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			b.WriteString(fmt.Sprintf("\n  %s: %v", k, e.context[k]))
		}
	}

	if e.cause != nil {
		b.WriteString(fmt.Sprintf("\n  cause: %v", e.cause))
	}

	return b.String()
}

// Unwrap returns the underlying cause error for errors.Unwrap compatibility.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether the target error matches this error.
// It matches if target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.code == targetErr.code
	}

	return false
}

// GetCode returns the error code.
func (e *Error) GetCode() Code {
	return e.code
}

// GetMessage returns the error message.
func (e *Error) GetMessage() string {
	return e.message
}

// GetContext returns the error context map.
func (e *Error) GetContext() map[string]any {
	return e.context
}

// GetCause returns the underlying cause error.
func (e *Error) GetCause() error {
	return e.cause
}

// GetStack returns the stack trace.
func (e *Error) GetStack() string {
	return e.stack
}

// With adds a key-value pair to the error context.
// Returns the error for method chaining.
func (e *Error) With(key string, value any) *Error {
	if e.context == nil {
		e.context = make(map[string]any)
	}
	e.context[key] = value
	return e
}

// WithDestination adds destination context to the error.
// Format: "namespace.name" or just "name" if namespace is empty.
func (e *Error) WithDestination(ns, name string) *Error {
	if ns != "" {
		return e.With("destination", ns+"."+name)
	}
	return e.With("destination", name)
}

// WithField adds field context to the error.
func (e *Error) WithField(name string) *Error {
	return e.With("field", name)
}

// WithFile adds file location context to the error.
func (e *Error) WithFile(path string, line int) *Error {
	e.With("file", path)
	if line > 0 {
		e.With("line", line)
	}
	return e
}

// WithNote adds a note to the error (displayed as "note: ...").
func (e *Error) WithNote(note string) *Error {
	notes, _ := e.context["notes"].([]string)
	notes = append(notes, note)
	return e.With("notes", notes)
}

// WithHelp adds a help suggestion to the error (displayed as "help: ...").
func (e *Error) WithHelp(help string) *Error {
	helps, _ := e.context["helps"].([]string)
	helps = append(helps, help)
	return e.With("helps", helps)
}

// Notes returns all notes attached to this error.
func (e *Error) Notes() []string {
	notes, _ := e.context["notes"].([]string)
	return notes
}

// Helps returns all help suggestions attached to this error.
func (e *Error) Helps() []string {
	helps, _ := e.context["helps"].([]string)
	return helps
}

// captureStack captures a stack trace for debugging.
func captureStack(skip int) string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		// Skip runtime internals
		if strings.Contains(frame.File, "runtime/") {
			if !more {
				break
			}
			continue
		}
		b.WriteString(fmt.Sprintf("%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line))
		if !more {
			break
		}
	}
	return b.String()
}

// New creates a new Error with the given code and message.
func New(code Code, msg string) *Error {
	return &Error{
		code:    code,
		message: msg,
		context: make(map[string]any),
		stack:   captureStack(3),
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		code:    code,
		message: fmt.Sprintf(format, args...),
		context: make(map[string]any),
		stack:   captureStack(3),
	}
}

// Wrap creates a new Error that wraps an existing error.
func Wrap(code Code, err error, msg string) *Error {
	if err == nil {
		return New(code, msg)
	}
	return &Error{
		code:    code,
		message: msg,
		context: make(map[string]any),
		cause:   err,
		stack:   captureStack(3),
	}
}

// Wrapf creates a new Error that wraps an existing error with a formatted message.
func Wrapf(code Code, err error, format string, args ...any) *Error {
	return Wrap(code, err, fmt.Sprintf(format, args...))
}

// GetErrorCode extracts the error code from an error chain.
// Returns empty string if no code is found.
func GetErrorCode(err error) Code {
	if err == nil {
		return ""
	}

	var wferr *Error
	if errors.As(err, &wferr) {
		return wferr.code
	}

	return ""
}

// Is checks if an error has the specified code.
func Is(err error, code Code) bool {
	return GetErrorCode(err) == code
}

// HasCode checks if an error has any error code.
func HasCode(err error) bool {
	return GetErrorCode(err) != ""
}

// IsSchema reports whether err is any schema error (E1xxx).
// Schema errors are raised at graph-construction time and are startup-fatal.
func IsSchema(err error) bool {
	return strings.HasPrefix(string(GetErrorCode(err)), "E1")
}

// IsEncoding reports whether err is any encoding error (E2xxx).
func IsEncoding(err error) bool {
	return strings.HasPrefix(string(GetErrorCode(err)), "E2")
}

// IsDecoding reports whether err is any decoding error (E3xxx).
func IsDecoding(err error) bool {
	return strings.HasPrefix(string(GetErrorCode(err)), "E3")
}
