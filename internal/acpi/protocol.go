package acpi

import (
	"errors"
	"fmt"
)

// EC RAM access methods exposed by the ASUS firmware. Arguments are
// plain decimal, acpi_call parses them itself.
const (
	writeCommand = `\_SB.PCI0.LPCB.EC0.WRAM`
	readCommand  = `\_SB.PCI0.LPCB.EC0.RRAM`
)

var ErrMissingArgument = errors.New("acpi: missing call argument")

// writeRequest sets one EC register to a value.
type writeRequest struct {
	Address int
	Value   int
}

// encode renders the acpi_call command string. Both arguments must be
// valid before anything is sent: a truncated WRAM call can abort the
// firmware method mid-execution.
func (r writeRequest) encode() (string, error) {
	if r.Address < 0 || r.Value < 0 {
		return "", fmt.Errorf("%w: address=%d value=%d", ErrMissingArgument, r.Address, r.Value)
	}
	return fmt.Sprintf("%s %d %d", writeCommand, r.Address, r.Value), nil
}

// readRequest reads one EC register.
type readRequest struct {
	Address int
}

func (r readRequest) encode() (string, error) {
	if r.Address < 0 {
		return "", fmt.Errorf("%w: address=%d", ErrMissingArgument, r.Address)
	}
	return fmt.Sprintf("%s %d", readCommand, r.Address), nil
}
