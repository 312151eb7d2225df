package checkengine

import (
	"fmt"

	"github.com/starkandwayne/goutils/ansi"
)

// ErrorKind categorizes construction-time errors (spec.md §7). Evaluation
// never produces one of these: type mismatches at eval time degrade to
// `false` plus a failure trace, never an error.
type ErrorKind int

const (
	ShapeError ErrorKind = iota
	SyntaxError
	UnknownBuilder
	TypeErrorKind
	UnsupportedNestedObjectComparison
	DuplicateBuilder
	UnbalancedParens
	UnexpectedOperator
	UnknownToken
	EmptyExpression
)

func (k ErrorKind) String() string {
	switch k {
	case ShapeError:
		return "ShapeError"
	case SyntaxError:
		return "SyntaxError"
	case UnknownBuilder:
		return "UnknownBuilder"
	case TypeErrorKind:
		return "TypeError"
	case UnsupportedNestedObjectComparison:
		return "UnsupportedNestedObjectComparison"
	case DuplicateBuilder:
		return "DuplicateBuilder"
	case UnbalancedParens:
		return "UnbalancedParens"
	case UnexpectedOperator:
		return "UnexpectedOperator"
	case UnknownToken:
		return "UnknownToken"
	case EmptyExpression:
		return "EmptyExpression"
	default:
		return "Error"
	}
}

// BuildError is the construction-time error type returned by every package
// in the check-stage pipeline. It carries the stage name, the offending
// token or JSON shape, and a human-readable reason (spec.md §6 "Exit/error
// surface"), colorized the same way the teacher's *ExprError is.
type BuildError struct {
	Kind    ErrorKind
	Stage   string
	Token   string
	Message string
	Nested  error
}

func (e *BuildError) Error() string {
	prefix := ansi.Sprintf("@*R{%s}", e.Kind.String())
	stage := ""
	if e.Stage != "" {
		stage = ansi.Sprintf(" @Y{%s}", e.Stage)
	}
	msg := fmt.Sprintf("%s%s: %s", prefix, stage, e.Message)
	if e.Token != "" {
		msg += ansi.Sprintf(" (token: @W{%q})", e.Token)
	}
	if e.Nested != nil {
		msg += "\n  caused by: " + e.Nested.Error()
	}
	return msg
}

func (e *BuildError) Unwrap() error { return e.Nested }

func newBuildError(kind ErrorKind, stage, token, format string, args ...interface{}) *BuildError {
	return &BuildError{
		Kind:    kind,
		Stage:   stage,
		Token:   token,
		Message: fmt.Sprintf(format, args...),
	}
}

// MultiError aggregates multiple construction errors, mirroring the
// teacher's errors.go MultiError for the same purpose: buildListCheck uses
// it to report every malformed list-form term in one pass instead of
// stopping at the first, the same way the teacher's api.go accumulates one
// error per failed document entry before returning.
type MultiError struct {
	Errors []error
}

func (e MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	msg := fmt.Sprintf("%d error(s) detected:\n", len(e.Errors))
	for _, err := range e.Errors {
		msg += " - " + err.Error() + "\n"
	}
	return msg
}

func (e *MultiError) Append(err error) {
	if err == nil {
		return
	}
	if m, ok := err.(MultiError); ok {
		e.Errors = append(e.Errors, m.Errors...)
		return
	}
	e.Errors = append(e.Errors, err)
}
