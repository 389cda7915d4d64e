package cmd

import (
	"github.com/ronram5126/asus-fan-control/internal/ui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of asus-fan-control",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln("3.13.0")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
