package cli

import (
	"fmt"

	"github.com/arthur-debert/pkghelper/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = config.DefaultConfigPath()
			}
			fmt.Fprintf(out, MsgConfigFileFormat, path)
			_, err = out.Write(data)
			return err
		},
	}
}
