// Package runner executes external programs on behalf of the installer
// and the hook stage.
//
// A non-zero exit status is not an error at this layer: it is reported in
// Result.ExitCode so callers can decide whether the exit is fatal. Only a
// failure to start the program at all is returned as an error.
package runner

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/pkghelper/pkg/errors"
	"github.com/arthur-debert/pkghelper/pkg/logging"
	"github.com/rs/zerolog"
)

// Command describes one external invocation
type Command struct {
	Name string
	Args []string

	// Dir is the working directory; empty means the current one
	Dir string

	// Env holds variables added on top of the inherited environment
	Env map[string]string

	// Stdout and Stderr default to the process streams
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command line for logs and dry-run output
func (c Command) String() string {
	parts := append([]string{c.Name}, c.Args...)
	return strings.Join(parts, " ")
}

// Result carries the outcome of a finished command
type Result struct {
	ExitCode int
	Stderr   string
}

// Success reports a zero exit status
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner runs external commands
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	logger zerolog.Logger
}

// New creates a runner backed by os/exec
func New() *ExecRunner {
	return &ExecRunner{logger: logging.GetLogger("runner")}
}

// Run executes cmd and blocks until it exits
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	if cmd.Name == "" {
		return Result{ExitCode: -1}, errors.New(errors.ErrInvalidInput, "command requires a program name")
	}

	logging.LogCommand(r.logger, cmd.Name, cmd.Args)

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = os.Environ()
	for _, key := range sortedKeys(cmd.Env) {
		c.Env = append(c.Env, fmt.Sprintf("%s=%s", key, cmd.Env[key]))
	}

	stdout := cmd.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderrOut := cmd.Stderr
	if stderrOut == nil {
		stderrOut = os.Stderr
	}

	var stderr bytes.Buffer
	c.Stdout = stdout
	c.Stderr = io.MultiWriter(stderrOut, &stderr)

	err := c.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			r.logger.Debug().
				Str("command", cmd.Name).
				Int("exitCode", exitErr.ExitCode()).
				Str("stderr", stderr.String()).
				Msg("Command exited with non-zero status")
			return Result{ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}, nil
		}

		r.logger.Error().
			Err(err).
			Str("command", cmd.Name).
			Strs("args", cmd.Args).
			Msg("Command could not be started")
		return Result{ExitCode: -1, Stderr: stderr.String()}, errors.Wrapf(err, errors.ErrCommandStart,
			"failed to start %s", cmd.Name).WithDetail("command", cmd.Name)
	}

	return Result{Stderr: stderr.String()}, nil
}

// DryRunner records commands without executing them
type DryRunner struct {
	logger zerolog.Logger

	mu       sync.Mutex
	commands []Command
}

// NewDryRunner creates a runner that only records
func NewDryRunner() *DryRunner {
	return &DryRunner{logger: logging.GetLogger("runner.dry")}
}

// Run logs and records cmd, reporting success
func (r *DryRunner) Run(_ context.Context, cmd Command) (Result, error) {
	r.logger.Info().
		Str("command", cmd.String()).
		Str("dir", cmd.Dir).
		Msg("Dry run mode - command would be executed")

	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	r.mu.Unlock()

	return Result{}, nil
}

// Commands returns the recorded commands in call order
func (r *DryRunner) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Command(nil), r.commands...)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
