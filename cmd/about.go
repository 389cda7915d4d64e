package cmd

import (
	"github.com/pterm/pterm"
	"github.com/ronram5126/asus-fan-control/internal/ui"
	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Print information about this tool",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		printHeader()
		ui.Printfln("Fan curve control for ASUS laptops.")
		ui.Printfln("")
		ui.Printfln("Temperatures are written to the embedded controller through the")
		ui.Printfln("acpi_call kernel module and re-applied from a persisted file on")
		ui.Printfln("later runs.")
		ui.Printfln("")
		ui.Printfln("License: GPL-3.0")
	},
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("asus", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("fc", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		ui.Printfln("asus-fan-control")
	}
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
