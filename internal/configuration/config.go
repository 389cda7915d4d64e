package configuration

import (
	"errors"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/ronram5126/asus-fan-control/internal/ui"
	"github.com/spf13/viper"
)

type Configuration struct {
	// AcpiCallPath is the acpi_call kernel interface file.
	AcpiCallPath string `json:"acpiCallPath"`
	// ProductNamePath is the DMI file the model identity is read from.
	ProductNamePath string `json:"productNamePath"`
	// ModelDatabasePath is the flat file of known model records.
	ModelDatabasePath string `json:"modelDatabasePath"`
	// TempsPath is where the last applied temperatures are persisted.
	TempsPath string `json:"tempsPath"`

	// FallbackAddresses and FallbackTemps are used to synthesize a model
	// record when the database has no entry for this machine.
	FallbackAddresses IntList `json:"fallbackAddresses"`
	FallbackTemps     IntList `json:"fallbackTemps"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("asus-fan-control")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/asus-fan-control/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("AcpiCallPath", "/proc/acpi/call")
	viper.SetDefault("ProductNamePath", "/sys/devices/virtual/dmi/id/product_name")
	viper.SetDefault("ModelDatabasePath", "/usr/share/asus-fan-control/models")
	viper.SetDefault("TempsPath", "/etc/asus-fan-control/temps")
	viper.SetDefault("FallbackAddresses", "1335")
	viper.SetDefault("FallbackTemps", "55 60 62 65 68 72 76 80")
}

// DetectAndReadConfigFile reads the config file, if one exists, and returns
// its path. The tool works on defaults alone, so a missing file is fine.
func DetectAndReadConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			ui.Fatal("Error reading config file, %s", err)
		}
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	err := viper.Unmarshal(&CurrentConfig, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			intListHookFunc(),
			mapstructure.StringToSliceHookFunc(" "),
		),
	))
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}
