package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "p0tion",
		Short:        "Provision and manage ephemeral contribution-verification instances",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A '.env' file is a local-development convenience; its absence
			// is not an error.
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			return nil
		},
	}
	root.AddCommand(
		provisionCommand(),
		smokeCommand(),
		statusCommand(),
		startCommand(),
		stopCommand(),
		terminateCommand(),
	)
	return root
}
