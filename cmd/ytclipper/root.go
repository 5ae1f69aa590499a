package main

import (
	"github.com/spf13/cobra"
	"github.com/ytclipper/ytclipper/internal/clipboard"
	"github.com/ytclipper/ytclipper/internal/config"
)

func newRootCmd(cb clipboard.Clipboard) *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "ytclipper",
		Short: "Cut shareable clips out of YouTube videos",
		Long: `ytclipper serves a small web app for marking start and end points on a
YouTube video and turning each range into a link that plays just that part.
Run without a subcommand to start the server.`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFile)
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file loaded before reading the environment")

	rootCmd.AddCommand(newServeCmd(&envFile))
	rootCmd.AddCommand(newLinkCmd(&envFile, cb))
	rootCmd.AddCommand(newInspectCmd(cb))

	return rootCmd
}
