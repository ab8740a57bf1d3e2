// Package installer copies single files into place with install-style
// metadata and creates destination directories.
//
// Copies are delegated to an external install(1)-compatible program so
// that stripping, parent creation and copy-then-rename behave exactly as
// they do in hand-written packaging scripts.
package installer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/pkghelper/pkg/errors"
	"github.com/arthur-debert/pkghelper/pkg/logging"
	"github.com/arthur-debert/pkghelper/pkg/runner"
	"github.com/arthur-debert/pkghelper/pkg/ui/output"
	"github.com/rs/zerolog"
)

// DefaultProgram is the install program looked up on PATH
const DefaultProgram = "install"

// Request describes one file to install
type Request struct {
	Source      string
	Destination string

	// Mode is applied to the destination; zero means DefaultMode
	Mode os.FileMode

	// Strip removes debug symbols from the installed binary
	Strip bool

	// ExtraArgs are whitespace-separated flags passed through verbatim
	ExtraArgs string
}

// Options configures an Installer
type Options struct {
	Program string
	Runner  runner.Runner
	Printer output.Printer
	DryRun  bool
}

// Installer issues install invocations and creates directories
type Installer struct {
	program string
	runner  runner.Runner
	printer output.Printer
	dryRun  bool
	logger  zerolog.Logger
}

// New creates an Installer, filling in defaults for unset options
func New(opts Options) *Installer {
	inst := &Installer{
		program: opts.Program,
		runner:  opts.Runner,
		printer: opts.Printer,
		dryRun:  opts.DryRun,
		logger:  logging.GetLogger("installer"),
	}
	if inst.program == "" {
		inst.program = DefaultProgram
	}
	if inst.runner == nil {
		inst.runner = runner.New()
	}
	if inst.printer == nil {
		inst.printer = output.Discard{}
	}
	return inst
}

// Args builds the argument list for req, without the program name
func (i *Installer) Args(req Request) []string {
	mode := req.Mode
	if mode == 0 {
		mode = DefaultMode
	}

	args := []string{"-D", "-T", "-m", FormatMode(mode)}
	if req.Strip {
		args = append(args, "-s")
	}
	args = append(args, strings.Fields(req.ExtraArgs)...)
	args = append(args, "--", req.Source, req.Destination)
	return args
}

// Install copies req.Source to req.Destination with a single invocation
// of the install program. A non-zero exit is an ErrInstallFailed error.
func (i *Installer) Install(ctx context.Context, req Request) error {
	info, err := os.Stat(req.Source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSourceNotFound, "source %s", req.Source).
			WithDetail("source", req.Source)
	}
	if info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "source %s is a directory", req.Source).
			WithDetail("source", req.Source)
	}

	i.printer.Info(fmt.Sprintf("install: %s -> %s", req.Source, req.Destination))

	cmd := runner.Command{Name: i.program, Args: i.Args(req)}
	res, err := i.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}

	if !res.Success() {
		i.logger.Error().
			Str("source", req.Source).
			Str("destination", req.Destination).
			Int("exitCode", res.ExitCode).
			Str("stderr", res.Stderr).
			Msg("Install command failed")
		return errors.Newf(errors.ErrInstallFailed, "install %s -> %s exited with %d",
			req.Source, req.Destination, res.ExitCode).
			WithDetail("exitCode", res.ExitCode).
			WithDetail("stderr", strings.TrimSpace(res.Stderr))
	}

	i.logger.Debug().
		Str("source", req.Source).
		Str("destination", req.Destination).
		Msg("Installed file")
	return nil
}

// MakeDir creates path and any missing ancestors. It succeeds when the
// directory already exists.
func (i *Installer) MakeDir(_ context.Context, path string) error {
	if i.dryRun {
		i.logger.Info().Str("path", path).Msg("Dry run mode - directory would be created")
		return nil
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", path).
			WithDetail("path", path)
	}
	return nil
}
