package cmd

import (
	"github.com/ronram5126/asus-fan-control/internal/temps"
	"github.com/ronram5126/asus-fan-control/internal/ui"
	"github.com/spf13/cobra"
)

var setTempsCmd = &cobra.Command{
	Use:   "set-temps <temps|default>",
	Short: "Apply a fan curve temperature sequence",
	Long: `Writes the given space-joined temperature sequence to every fan
zone of the embedded controller and remembers it for later runs.
The literal argument "default" applies the model's default sequence.

Example:
  asus-fan-control set-temps "55 60 62 65 68 72 76 80"
  asus-fan-control set-temps default`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		instance, err := newInstance()
		if err != nil {
			return err
		}
		if err := instance.CheckPreconditions(); err != nil {
			return err
		}

		var sequence []int
		if args[0] == "default" {
			sequence = instance.Model.DefaultTemps
		} else {
			sequence, err = temps.Parse(args[0])
			if err != nil {
				return err
			}
		}

		if err := instance.ApplyTemps(sequence); err != nil {
			return err
		}

		ui.Info("Temperatures set to: %s", temps.Format(sequence))
		if !instance.Model.Tested {
			ui.Warning("Model %s is not in the database, fallback addresses were used", instance.Model.Identity)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setTempsCmd)
}
