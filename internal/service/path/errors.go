package path

import (
	"errors"
	"fmt"
)

// -- Error Types --

// NotUnderRootError is returned when a path does not start with every component of a root.
// It is a control signal for Resolve and never reaches the user.
type NotUnderRootError struct {
	Path string
	Root string
}

func (e *NotUnderRootError) Error() string {
	return fmt.Sprintf("path %s is not under root %s", e.Path, e.Root)
}
func (e *NotUnderRootError) Is(target error) bool { return target == ErrNotUnderRoot }

// -- Sentinels --

var ErrNotUnderRoot = errors.New("path is not under root")
