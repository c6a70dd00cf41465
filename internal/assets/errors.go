package assets

import (
	"errors"
	"fmt"
)

// ErrNoSource is returned when a strategy is built without a bundle
var ErrNoSource = errors.New("no asset bundle configured")

// Copy operations reported by CopyError
const (
	OpEnumerate = "enumerate"
	OpMkdir     = "mkdir"
	OpCopy      = "copy"
)

// CopyError records the operation and path of a failed materialization step
type CopyError struct {
	Op   string
	Path string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}
