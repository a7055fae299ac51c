// Copyright 2026 NetApp, Inc. All Rights Reserved.

package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBytes(t *testing.T) {

	tests := []struct {
		value    any
		expected uint64
	}{
		{"100g", 107374182400},
		{"1GiB", 1073741824},
		{"2048", 2048},
		{int(512), 512},
		{int64(107374182400), 107374182400},
		{uint64(1), 1},
		{float64(4096), 4096},
	}

	for _, test := range tests {
		bytes, err := toBytes(test.value)
		assert.NoError(t, err, "could not convert %v", test.value)
		assert.Equal(t, test.expected, bytes, "unexpected conversion for %v", test.value)
	}
}

func TestToBytes_Invalid(t *testing.T) {

	for _, value := range []any{"chunky", int64(-5), true, []string{"100g"}} {
		_, err := toBytes(value)
		assert.Error(t, err, "expected error for %v", value)
	}
}

func TestFoldedSetsEqual(t *testing.T) {

	assert.True(t, foldedSetsEqual(nil, nil))
	assert.True(t, foldedSetsEqual([]string{"A", "b"}, []string{"b", "a"}))
	assert.False(t, foldedSetsEqual([]string{"a"}, []string{"a", "a"}), "multiplicity matters")
	assert.False(t, foldedSetsEqual([]string{"a", "a", "b"}, []string{"a", "b", "b"}))
}

func TestValuesEqual_MixedKinds(t *testing.T) {

	assert.True(t, valuesEqual(int64(100), float64(100)))
	assert.True(t, valuesEqual("Premium", "premium"))
	assert.False(t, valuesEqual("Premium", "Ultra"))
	assert.False(t, valuesEqual(true, false))
	assert.False(t, valuesEqual("1", int64(1)), "kind mismatch is a difference")

	// JSON-decoded lists arrive as []any.
	assert.True(t, valuesEqual([]any{"NFSv4.1"}, []string{"nfsv4.1"}))
}
