package overlay

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/pkghelper/pkg/errors"
	"github.com/arthur-debert/pkghelper/pkg/hooks"
	"github.com/arthur-debert/pkghelper/pkg/installer"
	"github.com/arthur-debert/pkghelper/pkg/logging"
	"github.com/arthur-debert/pkghelper/pkg/paths"
	"github.com/arthur-debert/pkghelper/pkg/ui/output"
	"github.com/rs/zerolog"
)

// Options configures an Overlay
type Options struct {
	Installer *installer.Installer
	Hooks     *hooks.Runner
	Printer   output.Printer

	// HooksDir is the hook directory name inside the source root
	HooksDir string

	// Strict turns skipped or failed entries into an error
	Strict bool

	// Lookup resolves variables in entry paths; nil reads the environment
	Lookup paths.LookupFunc
}

// Overlay copies source trees onto destination roots
type Overlay struct {
	installer *installer.Installer
	hooks     *hooks.Runner
	printer   output.Printer
	hooksDir  string
	strict    bool
	lookup    paths.LookupFunc
	logger    zerolog.Logger
}

// New creates an Overlay, filling in defaults for unset options
func New(opts Options) *Overlay {
	o := &Overlay{
		installer: opts.Installer,
		hooks:     opts.Hooks,
		printer:   opts.Printer,
		hooksDir:  opts.HooksDir,
		strict:    opts.Strict,
		lookup:    opts.Lookup,
		logger:    logging.GetLogger("overlay"),
	}
	if o.printer == nil {
		o.printer = output.Discard{}
	}
	if o.installer == nil {
		o.installer = installer.New(installer.Options{Printer: o.printer})
	}
	if o.hooks == nil {
		o.hooks = hooks.NewRunner(hooks.Options{Printer: o.printer})
	}
	if o.hooksDir == "" {
		o.hooksDir = hooks.DefaultDirName
	}
	return o
}

// Apply installs every entry of src under dst and then runs the hooks.
// The report is returned even when Apply fails.
func (o *Overlay) Apply(ctx context.Context, src, dst string) (*Report, error) {
	done := logging.LogOperationStart(o.logger, "install_overlay")
	defer done()

	o.printer.Info(fmt.Sprintf("install_overlay: %s -> %s", src, dst))

	report := &Report{Source: src, Destination: dst, State: StateEnumerating}

	entries, err := Enumerate(src)
	if err != nil {
		report.State = StateFailed
		return report, err
	}
	o.logger.Debug().Int("entries", len(entries)).Str("source", src).Msg("Enumerated overlay source")

	report.State = StateCopyingEntries
	for _, entry := range entries {
		report.Entries = append(report.Entries, o.applyEntry(ctx, src, dst, entry))
	}

	report.State = StateRunningHooks
	found, err := hooks.Discover(filepath.Join(src, o.hooksDir))
	if err != nil {
		report.State = StateFailed
		return report, err
	}

	ran, err := o.hooks.Run(ctx, found, src, dst)
	for _, h := range ran {
		report.HooksRun = append(report.HooksRun, h.Name)
	}
	if err != nil {
		report.State = StateFailed
		if name, ok := errors.GetErrorDetails(err)["hook"].(string); ok {
			report.FailedHook = name
		}
		return report, err
	}

	report.State = StateDone

	problems := len(report.Problems())
	o.logger.Info().
		Int("installed", report.Count(StatusInstalled)).
		Int("created", report.Count(StatusCreated)).
		Int("skipped", report.Count(StatusSkipped)).
		Int("failed", report.Count(StatusFailed)).
		Int("hooks", len(report.HooksRun)).
		Msg("Overlay complete")

	if o.strict && problems > 0 {
		return report, errors.Newf(errors.ErrOverlayIncomplete,
			"%d of %d entries were not installed", problems, len(report.Entries)).
			WithDetail("problems", problems)
	}

	return report, nil
}

func (o *Overlay) applyEntry(ctx context.Context, src, dst string, entry Entry) EntryResult {
	result := EntryResult{
		Path:   entry.Path,
		Source: paths.Join(src, entry.Path),
		Kind:   KindFile,
	}
	if entry.IsDir {
		result.Kind = KindDir
	}

	if entry.Err != nil {
		return o.reject(result, StatusFailed, entry.Err)
	}

	rel, err := paths.Resolve(entry.Path, o.lookup)
	if err != nil {
		return o.reject(result, StatusSkipped, err)
	}
	result.Destination = paths.Join(dst, rel)

	if entry.IsDir {
		if err := o.installer.MakeDir(ctx, result.Destination); err != nil {
			return o.reject(result, StatusFailed, err)
		}
		result.Status = StatusCreated
		return result
	}

	err = o.installer.Install(ctx, installer.Request{
		Source:      result.Source,
		Destination: result.Destination,
	})
	if err != nil {
		return o.reject(result, StatusFailed, err)
	}
	result.Status = StatusInstalled
	return result
}

func (o *Overlay) reject(result EntryResult, status EntryStatus, err error) EntryResult {
	result.Status = status
	result.Err = err

	o.logger.Warn().
		Err(err).
		Str("entry", result.Path).
		Str("status", string(status)).
		Msg("Overlay entry not installed")
	o.printer.Error(fmt.Sprintf("%s %s: %v", status, result.Path, err))

	return result
}
