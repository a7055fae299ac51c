// Copyright 2026 NetApp, Inc. All Rights Reserved.

package reconcile

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/netapp/converge/utils"
	"github.com/netapp/converge/utils/errors"
)

// CompareOption adjusts how attribute values are normalized before comparison.
type CompareOption func(*comparer)

// WithSizeKeys names attributes holding storage sizes.  Both sides are converted
// to bytes before comparing, so a desired "100g" matches an observed 107374182400.
func WithSizeKeys(keys ...string) CompareOption {
	return func(c *comparer) {
		for _, key := range keys {
			c.sizeKeys[key] = true
		}
	}
}

type comparer struct {
	sizeKeys map[string]bool
}

func newComparer(opts ...CompareOption) *comparer {
	c := &comparer{sizeKeys: make(map[string]bool)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *comparer) equal(key string, observed, desired any) bool {

	if c.sizeKeys[key] {
		observedBytes, err1 := toBytes(observed)
		desiredBytes, err2 := toBytes(desired)
		if err1 == nil && err2 == nil {
			return observedBytes == desiredBytes
		}
	}

	return valuesEqual(observed, desired)
}

// valuesEqual compares two attribute values in normalized form: strings fold case,
// string lists fold case and ignore order, and numbers compare across integer and
// float kinds as they arrive from JSON decoding.
func valuesEqual(observed, desired any) bool {

	if observed == nil || desired == nil {
		return observed == desired
	}

	if observedStr, ok1 := toStringValue(observed); ok1 {
		if desiredStr, ok2 := toStringValue(desired); ok2 {
			return strings.EqualFold(observedStr, desiredStr)
		}
	}

	if observedList, ok1 := toStringSlice(observed); ok1 {
		if desiredList, ok2 := toStringSlice(desired); ok2 {
			return foldedSetsEqual(observedList, desiredList)
		}
	}

	if observedBool, ok1 := observed.(bool); ok1 {
		if desiredBool, ok2 := desired.(bool); ok2 {
			return observedBool == desiredBool
		}
	}

	if observedNum, ok1 := toFloat(observed); ok1 {
		if desiredNum, ok2 := toFloat(desired); ok2 {
			return observedNum == desiredNum
		}
	}

	return reflect.DeepEqual(observed, desired)
}

func toStringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func toStringSlice(v any) ([]string, bool) {
	switch val := v.(type) {
	case []string:
		return val, true
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func foldedSetsEqual(observed, desired []string) bool {
	if len(observed) != len(desired) {
		return false
	}
	a := foldAndSort(observed)
	b := foldAndSort(desired)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func foldAndSort(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	sort.Strings(out)
	return out
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// toBytes converts a size value of any supported kind into bytes.  Strings may
// carry units ("100g", "1TiB"); bare numbers are taken as bytes.
func toBytes(v any) (uint64, error) {

	if s, ok := v.(string); ok {
		converted, err := utils.ConvertSizeToBytes(s)
		if err != nil {
			return 0, err
		}
		return strconv.ParseUint(converted, 10, 64)
	}

	if f, ok := toFloat(v); ok {
		if f < 0 {
			return 0, errors.InvalidInputError("size may not be negative: %v", v)
		}
		return uint64(f), nil
	}

	return 0, errors.InvalidInputError("unsupported size value: %v", v)
}
