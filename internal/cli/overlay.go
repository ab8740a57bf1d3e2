package cli

import (
	"fmt"

	"github.com/arthur-debert/pkghelper/pkg/overlay"
	"github.com/arthur-debert/pkghelper/pkg/paths"
	"github.com/arthur-debert/pkghelper/pkg/ui"
	"github.com/spf13/cobra"
)

func newOverlayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "install_overlay <src> <dst>",
		Aliases: []string{"install-overlay"},
		Short:   MsgOverlayShort,
		Long:    MsgOverlayLong,
		Example: MsgOverlayExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := paths.Expand(args[0], nil)
			if err != nil {
				return err
			}
			dst, err := paths.Expand(args[1], nil)
			if err != nil {
				return err
			}

			ov := overlay.New(overlay.Options{
				Installer: a.installer(),
				Hooks:     a.hookRunner(),
				Printer:   a.printer,
				HooksDir:  a.cfg.Overlay.HooksDir,
				Strict:    a.cfg.Overlay.Strict,
			})

			report, err := ov.Apply(cmd.Context(), src, dst)
			if report != nil && len(report.Entries) > 0 {
				if perr := printReport(cmd.OutOrStdout(), a.printer, report, newPainter(a.format == ui.FormatTerminal)); perr != nil {
					return perr
				}
			}
			if err != nil {
				return err
			}

			if a.dryRun {
				a.printer.Info(MsgDryRunNotice)
			}
			return nil
		},
	}

	cmd.Flags().Bool("strict", false, MsgFlagStrict)

	return cmd
}

// overlaySummary is the one-line count of a finished report
func overlaySummary(r *overlay.Report) string {
	return fmt.Sprintf(MsgOverlaySummary,
		r.Count(overlay.StatusInstalled),
		r.Count(overlay.StatusCreated),
		r.Count(overlay.StatusSkipped),
		r.Count(overlay.StatusFailed),
		len(r.HooksRun))
}
