package cli

import (
	"github.com/arthur-debert/pkghelper/pkg/installer"
	"github.com/arthur-debert/pkghelper/pkg/paths"
	"github.com/spf13/cobra"
)

func newInstallCmd(a *app) *cobra.Command {
	var (
		strip     bool
		extraArgs string
	)

	cmd := &cobra.Command{
		Use:     "install <src> <dst>",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
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

			// --mode already reached the config as an override
			mode, err := installer.ParseMode(a.cfg.Install.Mode)
			if err != nil {
				return err
			}

			err = a.installer().Install(cmd.Context(), installer.Request{
				Source:      src,
				Destination: dst,
				Mode:        mode,
				Strip:       strip,
				ExtraArgs:   extraArgs,
			})
			if err != nil {
				return err
			}

			if a.dryRun {
				a.printer.Info(MsgDryRunNotice)
			}
			return nil
		},
	}

	cmd.Flags().String("mode", installer.FormatMode(installer.DefaultMode), MsgFlagMode)
	cmd.Flags().BoolVar(&strip, "strip", false, MsgFlagStrip)
	cmd.Flags().StringVar(&extraArgs, "extra_args", "", MsgFlagExtraArgs)

	return cmd
}
