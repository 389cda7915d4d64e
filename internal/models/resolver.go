package models

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// NormalizeIdentity strips every non-alphanumeric character from a raw
// product name, preserving case: "XPS 13-9300!" becomes "XPS139300".
func NormalizeIdentity(raw string) string {
	return nonAlphanumeric.ReplaceAllString(raw, "")
}

// Fallback carries the values used to synthesize a record when the
// database has no entry for the detected model.
type Fallback struct {
	BaseAddresses []int
	DefaultTemps  []int
}

// Resolver produces exactly one ModelRecord per run, either from the
// model database or synthesized from fallback values.
type Resolver struct {
	productNamePath string
	database        *Database
	fallback        Fallback
}

func NewResolver(productNamePath string, database *Database, fallback Fallback) *Resolver {
	return &Resolver{
		productNamePath: productNamePath,
		database:        database,
		fallback:        fallback,
	}
}

// DetectIdentity reads the host product name and normalizes it.
func (r *Resolver) DetectIdentity() (string, error) {
	data, err := os.ReadFile(r.productNamePath)
	if err != nil {
		return "", fmt.Errorf("detect model identity: %w", err)
	}
	return NormalizeIdentity(string(data)), nil
}

// Resolve returns the record for the current host. The first database
// line whose identity field matches wins. With no match, or no readable
// database at all, a fallback record with Tested=false is synthesized.
func (r *Resolver) Resolve() (ModelRecord, error) {
	identity, err := r.DetectIdentity()
	if err != nil {
		return ModelRecord{}, err
	}

	record, found, err := r.lookup(identity)
	if err != nil {
		return ModelRecord{}, err
	}
	if found {
		return record, nil
	}

	return ModelRecord{
		Identity:      identity,
		BaseAddresses: r.fallback.BaseAddresses,
		DefaultTemps:  r.fallback.DefaultTemps,
		Tested:        false,
	}, nil
}

// lookup scans the database in line order for the given identity. Only a
// matching line is fully parsed, so junk elsewhere in the database cannot
// break resolution for models it does not describe.
func (r *Resolver) lookup(identity string) (ModelRecord, bool, error) {
	cursor, err := r.database.Open()
	if err != nil {
		// an absent or unreadable database means "no matches", not failure
		return ModelRecord{}, false, nil
	}
	defer func() {
		_ = cursor.Close()
	}()

	for {
		line, err := cursor.Next()
		if errors.Is(err, io.EOF) {
			return ModelRecord{}, false, nil
		}
		if err != nil {
			// a database that turns unreadable mid-scan is treated the
			// same as one that was never readable
			return ModelRecord{}, false, nil
		}

		if IdentityField(line) != identity {
			continue
		}

		record, err := ParseRecord(line)
		if err != nil {
			return ModelRecord{}, false, err
		}
		return record, true, nil
	}
}
