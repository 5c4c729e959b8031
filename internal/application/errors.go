package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrRootNotFound     = errors.New("content root not found")
	ErrUnresolvableURL  = errors.New("unresolvable url")
	ErrDuplicateURL     = errors.New("duplicate url")
	ErrNoInsertionPoint = errors.New("no suitable location found")
	ErrNoExtractor      = errors.New("no extractor for page type")
	ErrPageNotFound     = errors.New("page not found")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PageError represents a failure reading or writing one page
type PageError struct {
	Path string
	Op   string // "read" or "write"
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// RootError represents a content root that cannot be scanned
type RootError struct {
	Root string
	Err  error
}

func (e *RootError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("content root %s does not exist", e.Root)
	}
	return fmt.Sprintf("cannot scan content root %s: %v", e.Root, e.Err)
}

func (e *RootError) Is(target error) bool {
	return target == ErrRootNotFound
}

func (e *RootError) Unwrap() error {
	return e.Err
}
