package launcher

import (
	"errors"
	"fmt"
)

// ErrLaunch matches any *LaunchError.
var ErrLaunch = errors.New("failed to launch viewer")

// ErrNoViewer is returned when no viewer executable is configured.
var ErrNoViewer = errors.New("no viewer configured")

// LaunchError is returned when the viewer process cannot be started
// (missing binary, permission denied, ...). It is not retried.
type LaunchError struct {
	Viewer string
	Cause  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to execute %s: %v", e.Viewer, e.Cause)
}
func (e *LaunchError) Unwrap() error        { return e.Cause }
func (e *LaunchError) Is(target error) bool { return target == ErrLaunch }
