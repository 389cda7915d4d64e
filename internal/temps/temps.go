package temps

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNotANumber   = errors.New("temperature is not a non-negative integer")
	ErrNotAscending = errors.New("temperatures must be non-decreasing")
	ErrWrongLength  = errors.New("unexpected number of temperatures")
)

// Parse converts a space-joined user input like "55 60 62" into a
// temperature sequence. Every element must be a non-negative integer.
func Parse(raw string) ([]int, error) {
	fields := strings.Fields(raw)
	sequence := make([]int, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil || value < 0 {
			return nil, fmt.Errorf("%w: %q", ErrNotANumber, field)
		}
		sequence = append(sequence, value)
	}
	return sequence, nil
}

// Validate checks a sequence against the calibration rules, in order:
// non-negative elements, non-decreasing ordering, exact expected length.
// It returns the first violation found.
func Validate(sequence []int, expectedLength int) error {
	for i, value := range sequence {
		if value < 0 {
			return fmt.Errorf("%w: %d", ErrNotANumber, value)
		}
		if i > 0 && value < sequence[i-1] {
			return fmt.Errorf("%w: %d after %d", ErrNotAscending, value, sequence[i-1])
		}
	}

	if len(sequence) != expectedLength {
		return fmt.Errorf("%w: got %d, expected %d", ErrWrongLength, len(sequence), expectedLength)
	}

	return nil
}

// Format renders a sequence as the space-joined form used for display
// and persistence.
func Format(sequence []int) string {
	parts := make([]string, len(sequence))
	for i, value := range sequence {
		parts[i] = strconv.Itoa(value)
	}
	return strings.Join(parts, " ")
}
