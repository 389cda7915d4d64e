package acpi

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrErrorResponse = errors.New("acpi: call returned an error")

// Transport performs single request/response exchanges with the acpi_call
// kernel interface: write the command string to the call file, then read
// the same file back for the result. Calls are never retried.
type Transport struct {
	writePath string
	readPath  string
}

// NewTransport returns a transport over the given acpi_call file.
func NewTransport(callPath string) *Transport {
	return newTransportAt(callPath, callPath)
}

// newTransportAt splits the write and read paths. In production both are
// the same file (/proc/acpi/call). They are split for testing.
func newTransportAt(writePath, readPath string) *Transport {
	return &Transport{
		writePath: writePath,
		readPath:  readPath,
	}
}

// Available reports whether the call interface file exists. Used to
// surface a missing acpi_call module before any hardware interaction.
func (t *Transport) Available() bool {
	_, err := os.Stat(t.writePath)
	return err == nil
}

// Write sets the EC register at address to value and confirms that the
// firmware did not report an error.
func (t *Transport) Write(address, value int) error {
	command, err := writeRequest{Address: address, Value: value}.encode()
	if err != nil {
		return err
	}
	if err := t.call(command); err != nil {
		return err
	}
	_, err = t.result()
	return err
}

// Read returns the raw result of reading the EC register at address.
func (t *Transport) Read(address int) (string, error) {
	command, err := readRequest{Address: address}.encode()
	if err != nil {
		return "", err
	}
	if err := t.call(command); err != nil {
		return "", err
	}
	return t.result()
}

func (t *Transport) call(command string) error {
	if err := os.WriteFile(t.writePath, []byte(command), 0); err != nil {
		return fmt.Errorf("acpi_call: write failed: %w", err)
	}
	return nil
}

// result reads back the call file content, strips embedded NUL bytes and
// checks for an error marker anywhere in the response.
func (t *Transport) result() (string, error) {
	data, err := os.ReadFile(t.readPath)
	if err != nil {
		return "", fmt.Errorf("acpi_call: read failed: %w", err)
	}

	content := strings.ReplaceAll(string(data), "\x00", "")
	if strings.Contains(strings.ToLower(content), "error") {
		return "", fmt.Errorf("%w: %q", ErrErrorResponse, content)
	}
	return content, nil
}
