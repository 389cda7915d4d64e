package models

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const fieldSeparator = "|"

var ErrMalformedRecord = errors.New("malformed model record")

// Database reads model records from a flat file, one record per line:
//
//	identity|space-joined-addresses|space-joined-temps|
//
// Line order is significant, the resolver takes the first match.
type Database struct {
	path string
}

func NewDatabase(path string) *Database {
	return &Database{
		path: path,
	}
}

// Open returns a cursor over the raw database lines. Whether a missing
// file is an error is the caller's decision, so the os error is returned
// as-is.
func (d *Database) Open() (*Cursor, error) {
	file, err := os.Open(d.path)
	if err != nil {
		return nil, err
	}
	return &Cursor{
		file:    file,
		scanner: bufio.NewScanner(file),
	}, nil
}

// Cursor yields raw database lines one at a time.
type Cursor struct {
	file    *os.File
	scanner *bufio.Scanner
}

// Next returns the next raw line, or io.EOF after the last one.
func (c *Cursor) Next() (string, error) {
	if c.scanner.Scan() {
		return c.scanner.Text(), nil
	}
	if err := c.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (c *Cursor) Close() error {
	return c.file.Close()
}

// IdentityField returns the identity field of a raw database line without
// parsing the rest of the record.
func IdentityField(line string) string {
	if i := strings.Index(line, fieldSeparator); i >= 0 {
		return line[:i]
	}
	return line
}

// ParseRecord parses a single database line into a ModelRecord with
// Tested set, the "tested" status is implied by database membership.
func ParseRecord(line string) (ModelRecord, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) < 3 {
		return ModelRecord{}, fmt.Errorf("%w: expected 3 fields in %q", ErrMalformedRecord, line)
	}

	addresses, err := parseInts(fields[1])
	if err != nil || len(addresses) == 0 {
		return ModelRecord{}, fmt.Errorf("%w: bad addresses in %q", ErrMalformedRecord, line)
	}

	temps, err := parseInts(fields[2])
	if err != nil || len(temps) == 0 {
		return ModelRecord{}, fmt.Errorf("%w: bad temperatures in %q", ErrMalformedRecord, line)
	}

	return ModelRecord{
		Identity:      fields[0],
		BaseAddresses: addresses,
		DefaultTemps:  temps,
		Tested:        true,
	}, nil
}

func parseInts(raw string) ([]int, error) {
	fields := strings.Fields(raw)
	values := make([]int, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil || value < 0 {
			return nil, fmt.Errorf("not a non-negative integer: %q", field)
		}
		values = append(values, value)
	}
	return values, nil
}
