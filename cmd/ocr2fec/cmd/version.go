package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ocr2fec version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ocr2fec %s\n", Version)
	},
}
