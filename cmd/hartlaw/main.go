package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hartlaw/hartlaw/internal/interfaces/cli/migrate"
	"github.com/hartlaw/hartlaw/internal/interfaces/cli/server"
	"github.com/hartlaw/hartlaw/internal/interfaces/cli/versioncmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hartlaw",
		Short: "Hart Law - case intake and billing engine",
		Long:  `Hart Law runs the firm's case intake, ticketing and billing service, plus its migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		versioncmd.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
