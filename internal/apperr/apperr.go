// Package apperr defines the error categories used across pokeadvisor.
//
// Error taxonomy
//
//	UserError    – caused by missing or invalid user input (wrong flag, bad
//	               value, …). The CLI prints only the message; usage help is
//	               NOT repeated. Exit code: 1.
//
//	ErrCancelled – the user deliberately aborted an interactive flow (team
//	               form, species selector, …). Exit code: 0 (not a failure).
//
//	NotFoundError        – a requested species name is absent from the species
//	                       table after case normalization.
//
//	InvalidTeamSizeError – a team request with 0 or more than 6 entries,
//	                       rejected before any computation.
//
//	DataLoadError        – the species table or evolution graph source is
//	                       unreadable, empty, or structurally invalid at
//	                       startup. Fatal.
//
// Everything else is a plain Go error and is propagated with
// fmt.Errorf("context: %w", err) wrapping.
package apperr

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the user explicitly aborts an interactive
// operation.  The CLI should exit 0 rather than 1 when it sees this error.
var ErrCancelled = errors.New("operation cancelled")

// UserError represents an error caused by invalid or missing user input.
// Cobra command handlers return this instead of a bare fmt.Errorf so that
// the root command can suppress repeated usage output.
type UserError struct {
	Message string
}

func (e *UserError) Error() string { return e.Message }

// User creates a UserError with the given message.
func User(msg string) error { return &UserError{Message: msg} }

// Userf creates a formatted UserError.
func Userf(format string, args ...any) error {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// IsUser reports whether err is (or wraps) a *UserError.
func IsUser(err error) bool {
	var u *UserError
	return errors.As(err, &u)
}

// NotFoundError reports a species name that does not exist in the species
// table. The offending name is kept so multi-name requests can tell the
// caller exactly which entries failed.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("species %q not found", e.Name)
}

// NotFound creates a NotFoundError for the given species name.
func NotFound(name string) error { return &NotFoundError{Name: name} }

// IsNotFound reports whether err is (or wraps) a *NotFoundError.
func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

// InvalidTeamSizeError reports a team request with an out-of-range size.
// Valid teams hold 1 to 6 members.
type InvalidTeamSizeError struct {
	Size int
}

func (e *InvalidTeamSizeError) Error() string {
	return fmt.Sprintf("invalid team size %d (expected 1-6 members)", e.Size)
}

// IsInvalidTeamSize reports whether err is (or wraps) an *InvalidTeamSizeError.
func IsInvalidTeamSize(err error) bool {
	var t *InvalidTeamSizeError
	return errors.As(err, &t)
}

// DataLoadError reports an unusable species table or evolution graph source.
// It is fatal: the process cannot proceed without its static data.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("loading %s failed", e.Source)
	}
	return fmt.Sprintf("loading %s failed: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// DataLoad wraps err as a DataLoadError for the named source.
func DataLoad(source string, err error) error {
	return &DataLoadError{Source: source, Err: err}
}

// IsDataLoad reports whether err is (or wraps) a *DataLoadError.
func IsDataLoad(err error) bool {
	var d *DataLoadError
	return errors.As(err, &d)
}
