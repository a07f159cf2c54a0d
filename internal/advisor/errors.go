package advisor

import (
	"errors"
	"fmt"
)

// Kind classifies why advice could not be produced.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUpstream
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	case KindParse:
		return "parse"
	default:
		return "internal"
	}
}

// InvalidInputMessage is returned to callers that omit a profile field.
const InvalidInputMessage = "Invalid input. Please provide interests, skills, and academics."

// InternalErrorMessage hides the cause of unexpected failures from callers.
const InternalErrorMessage = "An internal server error occurred."

const modelFailurePrefix = "The AI model could not process the request. It's possible the input was ambiguous or there was a configuration issue. Details: "

// Error is the only error type returned by Advisor.Generate.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// modelError builds an upstream or parse error whose message embeds the cause.
func modelError(kind Kind, err error) *Error {
	return &Error{
		Kind:    kind,
		Message: modelFailurePrefix + err.Error(),
		Err:     err,
	}
}

func ValidationError(err error) *Error {
	return &Error{Kind: KindValidation, Message: InvalidInputMessage, Err: err}
}

func InternalError(err error) *Error {
	return &Error{Kind: KindInternal, Message: InternalErrorMessage, Err: err}
}

// KindOf reports the Kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
