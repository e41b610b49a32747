package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped by the build; the default marks a source build.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of storybook",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("storybook version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
