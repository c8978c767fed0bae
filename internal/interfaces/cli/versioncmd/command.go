package versioncmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hartlaw/hartlaw/internal/shared/version"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hartlaw %s\n", version.String())
			fmt.Fprintf(out, "  commit:     %s\n", version.Commit)
			fmt.Fprintf(out, "  build time: %s\n", version.BuildTime)
			return nil
		},
	}
}
