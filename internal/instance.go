package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/ronram5126/asus-fan-control/internal/acpi"
	"github.com/ronram5126/asus-fan-control/internal/configuration"
	"github.com/ronram5126/asus-fan-control/internal/models"
	"github.com/ronram5126/asus-fan-control/internal/store"
)

// Instance is the immutable per-run context shared by all commands: the
// resolved model plus the wired-up transport and store. It is built once
// per invocation and never mutated afterwards.
type Instance struct {
	Config configuration.Configuration
	Model  models.ModelRecord
	Acpi   *acpi.Transport
	Store  *store.Store
}

// NewInstance resolves the model for the current host and wires up the
// hardware transport and the temperature store.
func NewInstance(config configuration.Configuration) (*Instance, error) {
	database := models.NewDatabase(config.ModelDatabasePath)
	resolver := models.NewResolver(config.ProductNamePath, database, models.Fallback{
		BaseAddresses: config.FallbackAddresses,
		DefaultTemps:  config.FallbackTemps,
	})

	model, err := resolver.Resolve()
	if err != nil {
		return nil, err
	}

	return &Instance{
		Config: config,
		Model:  model,
		Acpi:   acpi.NewTransport(config.AcpiCallPath),
		Store:  store.NewStore(config.TempsPath),
	}, nil
}

// CheckPreconditions verifies privileged access to the call interface.
// It runs before the first hardware interaction so that a missing module
// or missing privilege is reported instead of a cryptic write failure.
func (i *Instance) CheckPreconditions() error {
	if os.Geteuid() != 0 {
		return errors.New("this command must be run as root")
	}
	if !i.Acpi.Available() {
		return fmt.Errorf("acpi call interface not found at %s (is the acpi_call kernel module loaded?)", i.Config.AcpiCallPath)
	}
	return nil
}
