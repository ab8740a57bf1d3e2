// Package cli wires the pkghelper commands.
package cli

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/pkghelper/internal/version"
	"github.com/arthur-debert/pkghelper/pkg/cobrax/topics"
	"github.com/arthur-debert/pkghelper/pkg/config"
	"github.com/arthur-debert/pkghelper/pkg/hooks"
	"github.com/arthur-debert/pkghelper/pkg/installer"
	"github.com/arthur-debert/pkghelper/pkg/logging"
	"github.com/arthur-debert/pkghelper/pkg/runner"
	"github.com/arthur-debert/pkghelper/pkg/ui"
	"github.com/arthur-debert/pkghelper/pkg/ui/output"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed help/*.md
var helpFS embed.FS

// flagKeys maps command flags onto the configuration keys they override
var flagKeys = map[string]string{
	"mode":   "install.mode",
	"strict": "overlay.strict",
}

// app holds what the commands share once the root pre-run completed
type app struct {
	cfg     *config.Config
	printer output.Printer
	runner  runner.Runner
	format  ui.Format
	dryRun  bool

	// runnerOverride replaces the exec runner in tests
	runnerOverride runner.Runner
}

func (a *app) installer() *installer.Installer {
	return installer.New(installer.Options{
		Program: a.cfg.Install.Program,
		Runner:  a.runner,
		Printer: a.printer,
		DryRun:  a.dryRun,
	})
}

func (a *app) hookRunner() *hooks.Runner {
	return hooks.NewRunner(hooks.Options{
		Runner:  a.runner,
		Printer: a.printer,
		DryRun:  a.dryRun,
	})
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	var (
		verbosity  int
		formatFlag string
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "pkghelper",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{
				Path:      configPath,
				Overrides: flagOverrides(cmd),
			})
			if err != nil {
				return err
			}
			a.cfg = cfg

			logging.SetupLogger(verbosity, cfg.Log.File)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			format, err := ui.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			a.format = resolveFormat(format, cmd)
			if a.format == ui.FormatTerminal {
				pterm.EnableStyling()
			} else {
				pterm.DisableStyling()
			}
			a.printer = output.NewConsole(cmd.OutOrStdout(), a.format)

			switch {
			case a.runnerOverride != nil:
				a.runner = a.runnerOverride
			case a.dryRun:
				a.runner = runner.NewDryRunner()
			default:
				a.runner = runner.New()
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&a.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newInstallCmd(a))
	rootCmd.AddCommand(newOverlayCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	// Initialize topic-based help system; topics are embedded so this
	// only fails on a broken build
	sub, err := fs.Sub(helpFS, "help")
	if err == nil {
		_, err = topics.Initialize(rootCmd, sub, topics.Options{
			Renderer: topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// flagOverrides collects the explicitly set flags that shadow config keys
func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := map[string]interface{}{}
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		overrides[key] = flag.Value.String()
	}
	return overrides
}

// resolveFormat only probes the terminal when writing to a real file
func resolveFormat(f ui.Format, cmd *cobra.Command) ui.Format {
	if file, ok := cmd.OutOrStdout().(*os.File); ok {
		return ui.Resolve(f, file)
	}
	if f == ui.FormatAuto {
		return ui.FormatText
	}
	return f
}
