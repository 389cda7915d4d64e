package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/ronram5126/asus-fan-control/cmd/global"
	"github.com/ronram5126/asus-fan-control/internal"
	"github.com/ronram5126/asus-fan-control/internal/configuration"
	"github.com/ronram5126/asus-fan-control/internal/temps"
	"github.com/ronram5126/asus-fan-control/internal/ui"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// Invoked bare it re-applies the remembered temperatures (or the model
// defaults), which is what a boot hook wants.
var rootCmd = &cobra.Command{
	Use:   "asus-fan-control",
	Short: "Fan curve control for ASUS laptops.",
	Long: `asus-fan-control adjusts the temperature points at which the
firmware of an ASUS laptop spins up its fans, using the acpi_call
kernel module as the access path to the embedded controller.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		instance, err := newInstance()
		if err != nil {
			return err
		}
		if err := instance.CheckPreconditions(); err != nil {
			return err
		}

		sequence := instance.StoredOrDefaultTemps()
		if err := instance.ApplyTemps(sequence); err != nil {
			return err
		}
		ui.Info("Temperatures set to: %s", temps.Format(sequence))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is $HOME/asus-fan-control.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.SilenceUsage = true
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// newInstance loads and validates the configuration, then builds the
// per-run context with the resolved model.
func newInstance() (*internal.Instance, error) {
	configPath := configuration.DetectAndReadConfigFile()
	if configPath != "" {
		ui.Debug("Using configuration file at: %s", configPath)
	}
	configuration.LoadConfig()
	if err := configuration.Validate(); err != nil {
		return nil, err
	}

	return internal.NewInstance(configuration.CurrentConfig)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
		setupUi()
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
