package acpi

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrMalformedResult = errors.New("acpi: malformed result")

// temperatureHexDigits is the width of the hex value at the front of a
// RRAM result.
const temperatureHexDigits = 4

// DecodeTemperature interprets the first 4 characters of a raw RRAM
// result as a base-16 temperature: "0037..." decodes to 55.
func DecodeTemperature(raw string) (int, error) {
	if len(raw) < temperatureHexDigits {
		return 0, fmt.Errorf("%w: %q is shorter than %d characters", ErrMalformedResult, raw, temperatureHexDigits)
	}

	value, err := strconv.ParseUint(raw[:temperatureHexDigits], 16, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not hexadecimal", ErrMalformedResult, raw[:temperatureHexDigits])
	}
	return int(value), nil
}
