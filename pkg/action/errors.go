package action

import (
	"errors"
	"fmt"
)

var (
	ErrActionPending = errors.New("action already pending")
	ErrInvalidValue  = errors.New("invalid integer value")
	ErrNoValue       = errors.New("endpoint returned no value")
)

type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ErrInvalidValue.Error()
	}
	return fmt.Sprintf("cannot convert %q to an integer", e.Input)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidValue
}

type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}
