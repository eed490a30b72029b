package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

// x/testnet errors
var (
	ErrInvalidParams = errorsmod.Register(ModuleName, 2, "invalid testnet parameters")
	ErrFetch         = errorsmod.Register(ModuleName, 3, "failed to fetch default variables")
	ErrParse         = errorsmod.Register(ModuleName, 4, "malformed default variables")
	ErrWrite         = errorsmod.Register(ModuleName, 5, "failed to write variables file")
	ErrScaffold      = errorsmod.Register(ModuleName, 6, "failed to prepare testnet home")
	ErrInvalidConfig = errorsmod.Register(ModuleName, 7, "invalid configuration")
)

// FetchError reports a failed retrieval of the remote defaults.
// StatusCode is zero when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: GET %s: unexpected status %d", ErrFetch.Error(), e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: GET %s: %v", ErrFetch.Error(), e.URL, e.Err)
	default:
		return fmt.Sprintf("%s: GET %s", ErrFetch.Error(), e.URL)
	}
}

func (e *FetchError) Unwrap() []error { return unwrapWith(ErrFetch, e.Err) }

// ParseError points at the first offending line of a defaults blob.
// Line is 1-based. Err, when set, names what is wrong with the line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", ErrParse.Error(), e.Err)
		}
		return ErrParse.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: line %d: %v in %q", ErrParse.Error(), e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("%s: line %d: malformed assignment %q", ErrParse.Error(), e.Line, e.Text)
}

func (e *ParseError) Unwrap() []error { return unwrapWith(ErrParse, e.Err) }

// WriteError reports a destination that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrWrite.Error(), e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error { return unwrapWith(ErrWrite, e.Err) }

// ScaffoldError reports a testnet home that could not be prepared.
type ScaffoldError struct {
	Path string
	Err  error
}

func (e *ScaffoldError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrScaffold.Error(), e.Path, e.Err)
}

func (e *ScaffoldError) Unwrap() []error { return unwrapWith(ErrScaffold, e.Err) }

func unwrapWith(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}
