package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("%s version %s (built %s)\n", CLIName, version, buildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
