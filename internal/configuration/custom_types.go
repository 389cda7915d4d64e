package configuration

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// IntList is an ordered list of non-negative integers. In the configuration
// it can be given either as a YAML list or as a single space-joined string
// (e.g. "1335 1400"), the latter being the only form available through
// environment variables.
type IntList []int

// ParseIntList parses a space-joined string of non-negative integers.
func ParseIntList(raw string) (IntList, error) {
	fields := strings.Fields(raw)
	list := make(IntList, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil || value < 0 {
			return nil, fmt.Errorf("invalid list element %q, expected a non-negative integer", field)
		}
		list = append(list, value)
	}
	return list, nil
}

func (l IntList) String() string {
	parts := make([]string, len(l))
	for i, value := range l {
		parts[i] = strconv.Itoa(value)
	}
	return strings.Join(parts, " ")
}

// intListHookFunc returns a mapstructure decode hook that decodes both the
// string and the list form of IntList fields.
func intListHookFunc() mapstructure.DecodeHookFuncType {
	intListType := reflect.TypeOf(IntList{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != intListType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return ParseIntList(v)
		case []interface{}:
			list := make(IntList, 0, len(v))
			for _, element := range v {
				switch n := element.(type) {
				case int:
					if n < 0 {
						return nil, fmt.Errorf("invalid list element %d, expected a non-negative integer", n)
					}
					list = append(list, n)
				case string:
					parsed, err := ParseIntList(n)
					if err != nil {
						return nil, err
					}
					list = append(list, parsed...)
				default:
					return nil, fmt.Errorf("invalid list element %v of type %T", element, element)
				}
			}
			return list, nil
		}

		return data, nil
	}
}
