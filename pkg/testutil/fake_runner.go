package testutil

import (
	"context"
	"sync"

	"github.com/arthur-debert/pkghelper/pkg/runner"
)

// FakeRunner records commands and answers them from Handler.
// Without a Handler every command succeeds.
type FakeRunner struct {
	Handler func(cmd runner.Command) (runner.Result, error)

	mu    sync.Mutex
	calls []runner.Command
}

// Run records cmd and delegates to Handler
func (f *FakeRunner) Run(_ context.Context, cmd runner.Command) (runner.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	f.mu.Unlock()

	if f.Handler == nil {
		return runner.Result{}, nil
	}
	return f.Handler(cmd)
}

// Calls returns the recorded commands in call order
func (f *FakeRunner) Calls() []runner.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]runner.Command(nil), f.calls...)
}

// ExitWith answers every command whose last argument is target with code
func ExitWith(target string, code int) func(cmd runner.Command) (runner.Result, error) {
	return func(cmd runner.Command) (runner.Result, error) {
		if n := len(cmd.Args); n > 0 && cmd.Args[n-1] == target {
			return runner.Result{ExitCode: code, Stderr: "simulated failure\n"}, nil
		}
		return runner.Result{}, nil
	}
}
