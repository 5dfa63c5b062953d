// Package mock provides hand-written test doubles shared across packages.
package mock

import (
	"context"
	"sync"

	"github.com/Cyclone1070/windiff/internal/service/launcher"
)

// LaunchCall records one Launch invocation.
type LaunchCall struct {
	Left  string
	Right string
}

// Launcher is a controllable viewer launcher.
type Launcher struct {
	mu    sync.Mutex
	Calls []LaunchCall

	// LaunchFunc overrides the default behaviour of returning Result with exit code 0.
	LaunchFunc func(ctx context.Context, left, right string) (*launcher.Result, error)
}

// NewLauncher creates a launcher that records calls and succeeds.
func NewLauncher() *Launcher {
	return &Launcher{}
}

// Launch records the call and delegates to LaunchFunc when set.
func (m *Launcher) Launch(ctx context.Context, left, right string) (*launcher.Result, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, LaunchCall{Left: left, Right: right})
	m.mu.Unlock()

	if m.LaunchFunc != nil {
		return m.LaunchFunc(ctx, left, right)
	}
	return &launcher.Result{Command: []string{"viewer", left, right}}, nil
}

// GetCalls returns a copy of the recorded calls.
func (m *Launcher) GetCalls() []LaunchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]LaunchCall, len(m.Calls))
	copy(calls, m.Calls)
	return calls
}
