package riotapi

import (
	"errors"
	"fmt"

	"gameinfo/internal/common"
)

// The requested resource does not exist on the server
var ErrNotFound = errors.New("data not found")

// The server answered with an unexpected status
type StatusError struct {
	StatusCode int
	Url        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d (%s) for %s", e.StatusCode, common.StatusMessage(e.StatusCode), e.Url)
}

// The server answered with content that does not fit the expected record
type DecodeError struct {
	Resource string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode %s: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
