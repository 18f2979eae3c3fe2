package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "fxproc",
		Short: "Offline audio effects for 16-bit PCM WAV files",
		Long: `fxproc runs the distortion, equalizer and reverb effects over WAV files.

Chain order is always distortion → equalizer → reverb. Any stage can be
skipped, configured with flags, or loaded from a JSON preset.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(newApplyCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newToneCmd())

	return root
}
