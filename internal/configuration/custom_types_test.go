package configuration

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntList(t *testing.T) {
	// GIVEN
	raw := "1335 1400"

	// WHEN
	list, err := ParseIntList(raw)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, IntList{1335, 1400}, list)
}

func TestParseIntListRejectsNegative(t *testing.T) {
	// GIVEN
	raw := "1335 -1"

	// WHEN
	list, err := ParseIntList(raw)

	// THEN
	assert.Error(t, err)
	assert.Nil(t, list)
}

func TestParseIntListRejectsNonNumeric(t *testing.T) {
	// GIVEN
	raw := "1335 abc"

	// WHEN
	list, err := ParseIntList(raw)

	// THEN
	assert.Error(t, err)
	assert.Nil(t, list)
}

func TestIntListString(t *testing.T) {
	// GIVEN
	list := IntList{55, 60, 62}

	// WHEN
	result := list.String()

	// THEN
	assert.Equal(t, "55 60 62", result)
}

func TestIntListHookDecodesString(t *testing.T) {
	// GIVEN
	hook := intListHookFunc()
	target := reflect.TypeOf(IntList{})

	// WHEN
	decoded, err := hook(reflect.TypeOf(""), target, "1335 1400")

	// THEN
	require.NoError(t, err)
	assert.Equal(t, IntList{1335, 1400}, decoded)
}

func TestIntListHookDecodesList(t *testing.T) {
	// GIVEN
	hook := intListHookFunc()
	target := reflect.TypeOf(IntList{})

	// WHEN
	decoded, err := hook(reflect.TypeOf([]interface{}{}), target, []interface{}{55, 60, 62})

	// THEN
	require.NoError(t, err)
	assert.Equal(t, IntList{55, 60, 62}, decoded)
}

func TestIntListHookRejectsNegativeListElement(t *testing.T) {
	// GIVEN
	hook := intListHookFunc()
	target := reflect.TypeOf(IntList{})

	// WHEN
	_, err := hook(reflect.TypeOf([]interface{}{}), target, []interface{}{55, -60})

	// THEN
	assert.Error(t, err)
}

func TestIntListHookIgnoresOtherTypes(t *testing.T) {
	// GIVEN
	hook := intListHookFunc()

	// WHEN
	decoded, err := hook(reflect.TypeOf(""), reflect.TypeOf(""), "unrelated")

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "unrelated", decoded)
}
