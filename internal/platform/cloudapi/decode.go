package cloudapi

import (
	"fmt"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// Lookup walks nested objects along path. It returns false as soon as a
// segment is missing or the value at that point is not an object.
func Lookup(resp Response, path ...string) (any, bool) {
	var cur any = resp
	for _, key := range path {
		obj, ok := asObject(cur)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// Decode converts a loosely typed value (as produced by encoding/json) into T.
// Struct fields are matched by their json tag.
func Decode[T any](src any) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return out, err
	}
	if err := dec.Decode(src); err != nil {
		return out, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}

// DecodeList unwraps the provider's {<List>: {<Item>: [...]}} envelope.
// A missing or empty envelope is an empty list, and a single object where a
// list was expected is treated as a list of one.
func DecodeList[T any](resp Response, path ...string) ([]T, error) {
	v, ok := Lookup(resp, path...)
	if !ok {
		return []T{}, nil
	}
	if obj, isObj := asObject(v); isObj {
		v = []any{obj}
	}
	items, err := Decode[[]T](v)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// String returns the string at path, or "" when absent.
func String(resp Response, path ...string) string {
	v, ok := Lookup(resp, path...)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}

// Int returns the integer at path, or 0 when absent or not numeric.
// JSON numbers arrive as float64, tests usually pass int.
func Int(resp Response, path ...string) int {
	v, ok := Lookup(resp, path...)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return i
	default:
		i, err := strconv.Atoi(fmt.Sprint(n))
		if err != nil {
			return 0
		}
		return i
	}
}

func asObject(v any) (map[string]any, bool) {
	switch obj := v.(type) {
	case Response:
		return obj, true
	case map[string]any:
		return obj, true
	default:
		return nil, false
	}
}
