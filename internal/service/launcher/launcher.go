package launcher

import (
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/Cyclone1070/windiff/internal/config"
)

// killGrace bounds how long Wait keeps reading output after the viewer is killed.
const killGrace = time.Second

// Result represents the outcome of a viewer invocation.
type Result struct {
	Command   []string
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
}

// Launcher starts the external diff viewer on a pair of files.
type Launcher struct {
	config *config.Config
}

// NewLauncher creates a new Launcher with injected config.
func NewLauncher(cfg *config.Config) *Launcher {
	if cfg == nil {
		panic("cfg is required")
	}
	return &Launcher{config: cfg}
}

// Command returns the argv used to compare left and right: the viewer, its extra arguments, then the two files.
func (l *Launcher) Command(left, right string) []string {
	argv := make([]string, 0, len(l.config.Viewer.Args)+3)
	argv = append(argv, l.config.Viewer.Path)
	argv = append(argv, l.config.Viewer.Args...)
	return append(argv, left, right)
}

// Launch runs the viewer on left and right and blocks until it exits.
//
// Only a failure to start the process is an error (a *LaunchError). A viewer that runs
// and exits non-zero is reported through Result.ExitCode with a nil error.
// A done ctx returns ctx.Err() unwrapped: before start with a nil Result, after start
// with the output captured so far.
func (l *Launcher) Launch(ctx context.Context, left, right string) (*Result, error) {
	if l.config.Viewer.Path == "" {
		return nil, ErrNoViewer
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	limit := int(l.config.Viewer.MaxOutputSize)
	stdout := &viewerOutput{limit: limit}
	stderr := &viewerOutput{limit: limit}

	argv := l.Command(left, right)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = killGrace

	if err := cmd.Start(); err != nil {
		return nil, &LaunchError{Viewer: argv[0], Cause: err}
	}
	waitErr := cmd.Wait()

	result := &Result{
		Command:   argv,
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		Truncated: stdout.truncated || stderr.truncated,
	}
	if err := ctx.Err(); err != nil {
		result.ExitCode = -1
		return result, err
	}

	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
	case errors.As(waitErr, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		return result, waitErr
	}
	return result, nil
}
