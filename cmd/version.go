package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nitinsinghh27/TDS-PR1/constants"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of the deploy command",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("deploy version %s\n", constants.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
