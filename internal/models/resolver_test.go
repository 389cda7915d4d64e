package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFallback = Fallback{
	BaseAddresses: []int{1335},
	DefaultTemps:  []int{55, 60, 62, 65, 68, 72, 76, 80},
}

// fakeResolver builds a resolver over a fake product name file and a fake
// database file. An empty database string means "no database file at all".
func fakeResolver(t *testing.T, productName, database string) *Resolver {
	t.Helper()
	tmp := t.TempDir()

	productNamePath := filepath.Join(tmp, "product_name")
	require.NoError(t, os.WriteFile(productNamePath, []byte(productName), 0o644))

	databasePath := filepath.Join(tmp, "models")
	if database != "" {
		require.NoError(t, os.WriteFile(databasePath, []byte(database), 0o644))
	}

	return NewResolver(productNamePath, NewDatabase(databasePath), testFallback)
}

func TestNormalizeIdentity(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizeIdentity("ABC-123!"))
	assert.Equal(t, "XPS139300", NormalizeIdentity("XPS 13-9300"))
	assert.Equal(t, "UX430UA", NormalizeIdentity("UX430UA\n"))
	assert.Equal(t, "abcDEF", NormalizeIdentity("abcDEF"))
}

func TestDetectIdentityStripsNonAlphanumerics(t *testing.T) {
	// GIVEN
	resolver := fakeResolver(t, "ZenBook UX430UA\n", "")

	// WHEN
	identity, err := resolver.DetectIdentity()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "ZenBookUX430UA", identity)
}

func TestDetectIdentityMissingSource(t *testing.T) {
	// GIVEN
	resolver := NewResolver(
		filepath.Join(t.TempDir(), "does-not-exist"),
		NewDatabase(filepath.Join(t.TempDir(), "models")),
		testFallback,
	)

	// WHEN
	_, err := resolver.Resolve()

	// THEN
	assert.Error(t, err)
}

func TestResolveDatabaseMatch(t *testing.T) {
	// GIVEN
	database := "UX410UA|1335|55 60 62 65 68 72 76 80|\n" +
		"XPS9300|1335 1400|50 55 60 65 70 75 80 85|\n"
	resolver := fakeResolver(t, "XPS9300\n", database)

	// WHEN
	record, err := resolver.Resolve()

	// THEN
	require.NoError(t, err)
	assert.True(t, record.Tested)
	assert.Equal(t, "XPS9300", record.Identity)
	assert.Equal(t, []int{1335, 1400}, record.BaseAddresses)
	assert.Equal(t, []int{50, 55, 60, 65, 70, 75, 80, 85}, record.DefaultTemps)
}

func TestResolveFirstMatchWins(t *testing.T) {
	// GIVEN two records for the same identity
	database := "UX430UA|1335|55 60 62 65 68 72 76 80|\n" +
		"UX430UA|9999|10 20 30 40 50 60 70 80|\n"
	resolver := fakeResolver(t, "UX430UA", database)

	// WHEN
	record, err := resolver.Resolve()

	// THEN the earlier record is used
	require.NoError(t, err)
	assert.Equal(t, []int{1335}, record.BaseAddresses)
}

func TestResolveFallbackOnEmptyDatabase(t *testing.T) {
	// GIVEN
	resolver := fakeResolver(t, "XPS9300\n", "\n")

	// WHEN
	record, err := resolver.Resolve()

	// THEN
	require.NoError(t, err)
	assert.False(t, record.Tested)
	assert.Equal(t, "XPS9300", record.Identity)
	assert.Equal(t, testFallback.BaseAddresses, record.BaseAddresses)
	assert.Len(t, record.DefaultTemps, 8)
}

func TestResolveFallbackOnMissingDatabase(t *testing.T) {
	// GIVEN no database file at all
	resolver := fakeResolver(t, "UX430UA", "")

	// WHEN
	record, err := resolver.Resolve()

	// THEN
	require.NoError(t, err)
	assert.False(t, record.Tested)
	assert.Equal(t, testFallback.BaseAddresses, record.BaseAddresses)
}

func TestResolveMalformedMatchingRecord(t *testing.T) {
	// GIVEN a matching line with a broken address field
	resolver := fakeResolver(t, "UX430UA", "UX430UA|not-a-number|55 60|\n")

	// WHEN
	_, err := resolver.Resolve()

	// THEN
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestResolveIgnoresMalformedNonMatchingLines(t *testing.T) {
	// GIVEN junk ahead of the matching record
	database := "garbage line without separators\n" +
		"UX430UA|1335|55 60 62 65 68 72 76 80|\n"
	resolver := fakeResolver(t, "UX430UA", database)

	// WHEN
	record, err := resolver.Resolve()

	// THEN
	require.NoError(t, err)
	assert.True(t, record.Tested)
}
