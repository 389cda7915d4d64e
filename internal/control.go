package internal

import (
	"errors"

	"github.com/ronram5126/asus-fan-control/internal/acpi"
	"github.com/ronram5126/asus-fan-control/internal/store"
	"github.com/ronram5126/asus-fan-control/internal/temps"
)

// ApplyTemps validates the sequence against the resolved model, writes it
// to every fan zone and persists it once all writes succeeded. The first
// failing write aborts the whole operation; registers written before the
// failure are not rolled back, the EC has no compensating operation.
func (i *Instance) ApplyTemps(sequence []int) error {
	if err := temps.Validate(sequence, len(i.Model.DefaultTemps)); err != nil {
		return err
	}

	for _, baseAddress := range i.Model.BaseAddresses {
		for offset, value := range sequence {
			if err := i.Acpi.Write(baseAddress+offset, value); err != nil {
				return err
			}
		}
	}

	return i.Store.Save(sequence)
}

// StoredOrDefaultTemps returns the previously persisted sequence, or the
// model defaults if none has been accepted yet.
func (i *Instance) StoredOrDefaultTemps() []int {
	sequence, err := i.Store.Load()
	if errors.Is(err, store.ErrNotFound) {
		return i.Model.DefaultTemps
	}
	return sequence
}

// ReadTemps reads the currently active calibration points back from the
// first fan zone. All zones share the same values, so one zone suffices.
func (i *Instance) ReadTemps() ([]int, error) {
	baseAddress := i.Model.BaseAddresses[0]

	sequence := make([]int, 0, len(i.Model.DefaultTemps))
	for offset := range i.Model.DefaultTemps {
		raw, err := i.Acpi.Read(baseAddress + offset)
		if err != nil {
			return nil, err
		}
		value, err := acpi.DecodeTemperature(raw)
		if err != nil {
			return nil, err
		}
		sequence = append(sequence, value)
	}
	return sequence, nil
}
