package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var sourceFlag string
	var audioBaseFlag string

	ctx := newCommandContext(&configFlag, &sourceFlag, &audioBaseFlag)

	rootCmd := &cobra.Command{
		Use:           "capbrowse",
		Short:         "Browse annotated audio samples",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "Sample JSON path or http(s) URL (overrides data.source)")
	rootCmd.PersistentFlags().StringVar(&audioBaseFlag, "audio-base", "", "Base prefixed to audio_path file names (overrides data.audio_base)")

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newBrowseCommand(ctx))
	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
