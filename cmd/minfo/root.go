package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var ffprobeFlag string
	var exiftoolFlag string

	ctx := newCommandContext(&configFlag, &ffprobeFlag, &exiftoolFlag)

	rootCmd := &cobra.Command{
		Use:           "minfo",
		Short:         "Query EXIF and stream metadata from media files",
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
	rootCmd.PersistentFlags().StringVar(&ffprobeFlag, "ffprobe", "", "Override the ffprobe binary")
	rootCmd.PersistentFlags().StringVar(&exiftoolFlag, "exiftool", "", "Override the exiftool binary")

	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newPropsCommand())
	rootCmd.AddCommand(newDepsCommand(ctx))
	rootCmd.AddCommand(newCacheCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
