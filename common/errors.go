package common

import (
	"errors"
	"fmt"
)

var ErrorInvalidValue = errors.New("invalid value")

// DomainError is returned when the input can not be charted: empty or too
// short series, subgroup length mismatch, unsupported subgroup size,
// malformed numbers.
type DomainError struct {
	Msg string
}

func NewDomainError(format string, args ...interface{}) *DomainError {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return e.Msg
}

func (e *DomainError) Unwrap() error {
	return ErrorInvalidValue
}

func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}
