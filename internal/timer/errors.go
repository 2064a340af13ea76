package timer

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind categorizes store errors for reporting and exit codes
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindAlreadyExists
	KindInvalidName
	KindStorageIO
)

var (
	ErrNotFound      = errors.New("timer not found")
	ErrAlreadyExists = errors.New("timer already exists")
	ErrInvalidName   = errors.New("invalid timer name")
	ErrStorageIO     = errors.New("timer storage failure")
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindAlreadyExists:
		return "already exists"
	case KindInvalidName:
		return "invalid name"
	case KindStorageIO:
		return "storage"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindAlreadyExists:
		return ErrAlreadyExists
	case KindInvalidName:
		return ErrInvalidName
	case KindStorageIO:
		return ErrStorageIO
	default:
		return nil
	}
}

// Error wraps a store failure with the operation and timer it concerns
type Error struct {
	Kind Kind
	Op   string // "create", "read", "list", "remove"
	Name string
	Err  error
}

// Error implements error interface
func (e *Error) Error() string {
	subject := fmt.Sprintf("timer %q", e.Name)
	if e.Name == "" {
		subject = "timers"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Op, subject, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, subject, e.Kind)
}

// Unwrap implements error unwrapping
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func newError(kind Kind, op, name string, err error) *Error {
	return &Error{Kind: kind, Op: op, Name: name, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrAlreadyExists):
		return KindAlreadyExists
	case errors.Is(err, ErrInvalidName):
		return KindInvalidName
	case errors.Is(err, ErrStorageIO):
		return KindStorageIO
	}
	return KindUnknown
}

// Process exit codes
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitUsage         = 2
	ExitNotFound      = 3
	ExitAlreadyExists = 4
	ExitStorage       = 5
)

// ExitCode maps an error to the process exit status reported by the CLI
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch KindOf(err) {
	case KindNotFound:
		return ExitNotFound
	case KindAlreadyExists:
		return ExitAlreadyExists
	case KindInvalidName:
		return ExitUsage
	case KindStorageIO:
		return ExitStorage
	}
	return ExitFailure
}
