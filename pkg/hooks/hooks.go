// Package hooks discovers and runs post-install hooks.
//
// Hooks are the immediate, non-hidden entries of a reserved directory in
// an overlay source. They run one at a time, sorted by name, with the
// overlay destination as working directory and no arguments. The first
// hook that exits non-zero stops the run.
package hooks

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/pkghelper/pkg/errors"
	"github.com/arthur-debert/pkghelper/pkg/logging"
	"github.com/arthur-debert/pkghelper/pkg/paths"
	"github.com/arthur-debert/pkghelper/pkg/runner"
	"github.com/arthur-debert/pkghelper/pkg/ui/output"
	"github.com/rs/zerolog"
)

// DefaultDirName is the reserved hook directory inside an overlay source
const DefaultDirName = ".install_hooks.d"

// Environment variables exported to every hook
const (
	EnvSource      = "PKGHELPER_OVERLAY_SOURCE"
	EnvDestination = "PKGHELPER_OVERLAY_DESTINATION"
)

// Hook is a single executable found in the hook directory
type Hook struct {
	Name string
	Path string
}

// Discover lists the hooks in dir sorted by name. A missing dir, or one
// that is not a directory, yields no hooks.
func Discover(dir string) ([]Hook, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrOverlaySource, "cannot inspect hook directory %s", dir)
	}
	if !info.IsDir() {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrOverlaySource, "cannot read hook directory %s", dir)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrOverlaySource, "cannot resolve hook directory %s", dir)
	}

	var hooks []Hook
	for _, entry := range entries {
		if paths.IsHidden(entry.Name()) {
			continue
		}
		hooks = append(hooks, Hook{Name: entry.Name(), Path: filepath.Join(abs, entry.Name())})
	}

	sort.Slice(hooks, func(i, j int) bool { return hooks[i].Name < hooks[j].Name })
	return hooks, nil
}

// Options configures a Runner
type Options struct {
	Runner  runner.Runner
	Printer output.Printer
	DryRun  bool
}

// Runner executes hooks in order
type Runner struct {
	runner  runner.Runner
	printer output.Printer
	dryRun  bool
	logger  zerolog.Logger
}

// NewRunner creates a hook runner
func NewRunner(opts Options) *Runner {
	r := &Runner{
		runner:  opts.Runner,
		printer: opts.Printer,
		dryRun:  opts.DryRun,
		logger:  logging.GetLogger("hooks"),
	}
	if r.runner == nil {
		r.runner = runner.New()
	}
	if r.printer == nil {
		r.printer = output.Discard{}
	}
	return r
}

// Run executes hooks with dst as working directory. src is exported to
// the hooks for reference. The returned slice lists the hooks that ran
// to completion successfully.
func (r *Runner) Run(ctx context.Context, hooks []Hook, src, dst string) ([]Hook, error) {
	var done []Hook

	for _, hook := range hooks {
		r.printer.Info(fmt.Sprintf("install_hook: %s", hook.Name))

		if r.dryRun {
			r.logger.Info().Str("hook", hook.Path).Str("dir", dst).Msg("Dry run mode - hook would be executed")
			done = append(done, hook)
			continue
		}

		res, err := r.runner.Run(ctx, runner.Command{
			Name: hook.Path,
			Dir:  dst,
			Env: map[string]string{
				EnvSource:      src,
				EnvDestination: dst,
			},
		})
		if err != nil {
			r.printer.Error(fmt.Sprintf("%s: could not be started", hook.Name))
			return done, errors.Wrapf(err, errors.ErrHookFailed, "hook %s could not be started", hook.Name).
				WithDetail("hook", hook.Name).
				WithDetail("exitCode", res.ExitCode)
		}

		if !res.Success() {
			r.printer.Error(fmt.Sprintf("%s: exited with %d", hook.Name, res.ExitCode))
			return done, errors.Newf(errors.ErrHookFailed, "%s: exited with %d", hook.Name, res.ExitCode).
				WithDetail("hook", hook.Name).
				WithDetail("exitCode", res.ExitCode)
		}

		r.logger.Debug().Str("hook", hook.Name).Msg("Hook completed")
		done = append(done, hook)
	}

	return done, nil
}
