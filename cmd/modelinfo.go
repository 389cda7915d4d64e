package cmd

import (
	"bytes"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/mgutz/ansi"
	"github.com/ronram5126/asus-fan-control/cmd/global"
	"github.com/ronram5126/asus-fan-control/internal/temps"
	"github.com/ronram5126/asus-fan-control/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var modelInfoCmd = &cobra.Command{
	Use:   "model-info",
	Short: "Show the resolved model and its fan calibration layout",
	Long: `Shows which model record this machine resolved to, the EC base
address of each fan zone and the temperatures a "set-temps default"
run would apply. Reads no hardware and needs no privilege.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		instance, err := newInstance()
		if err != nil {
			return err
		}
		model := instance.Model

		status := "untested (fallback values)"
		if model.Tested {
			status = "tested (database record)"
		}

		tab := table.Table{
			Headers: []string{"", ""},
			Rows: [][]string{
				{"Model", model.Identity},
				{"Status", status},
				{"Fan zones", strconv.Itoa(len(model.BaseAddresses))},
				{"Base addresses", temps.Format(model.BaseAddresses)},
				{"Default temps", temps.Format(model.DefaultTemps)},
			},
		}
		var buf bytes.Buffer
		tableErr := tab.WriteTable(&buf, &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		})
		if tableErr != nil {
			ui.Fatal("Error printing table: %v", tableErr)
		}
		ui.Printfln(buf.String())

		values := make([]float64, 0, len(model.DefaultTemps))
		for _, value := range model.DefaultTemps {
			values = append(values, float64(value))
		}
		graph := asciigraph.Plot(values,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("default fan curve (°C per calibration point)"))
		ui.Printfln(graph)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelInfoCmd)
}
