package strutils

import (
	"encoding/json"
	"reflect"
)

// JSONStringsEqual reports whether two JSON documents encode the same value,
// ignoring key order and whitespace. Save blobs are compared this way in tests
// since the encoder makes no ordering promises.
func JSONStringsEqual(a, b []byte) (bool, error) {
	var valueA, valueB any
	if err := json.Unmarshal(a, &valueA); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, &valueB); err != nil {
		return false, err
	}
	return reflect.DeepEqual(valueA, valueB), nil
}
