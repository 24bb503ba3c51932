package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags "-X focuslock/cmd.version=v1.2.3".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the focuslock version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("focuslock %s\n", version)
	},
}
