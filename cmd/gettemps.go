package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/ronram5126/asus-fan-control/internal/temps"
	"github.com/spf13/cobra"
)

var getTempsCmd = &cobra.Command{
	Use:   "get-temps",
	Short: "Print the fan curve temperatures currently active in the EC",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		instance, err := newInstance()
		if err != nil {
			return err
		}
		if err := instance.CheckPreconditions(); err != nil {
			return err
		}

		sequence, err := instance.ReadTemps()
		if err != nil {
			return err
		}

		fmt.Println(temps.Format(sequence))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getTempsCmd)
}
