package configuration

import (
	"errors"

	"golang.org/x/exp/slices"
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	if config.AcpiCallPath == "" {
		return errors.New("acpiCallPath must not be empty")
	}
	if config.ProductNamePath == "" {
		return errors.New("productNamePath must not be empty")
	}
	if config.TempsPath == "" {
		return errors.New("tempsPath must not be empty")
	}

	if len(config.FallbackAddresses) == 0 {
		return errors.New("fallbackAddresses must contain at least one address")
	}
	if len(config.FallbackTemps) == 0 {
		return errors.New("fallbackTemps must contain at least one temperature")
	}
	if !slices.IsSorted([]int(config.FallbackTemps)) {
		return errors.New("fallbackTemps must be non-decreasing")
	}

	return nil
}
