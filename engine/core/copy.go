package core

import (
	"fmt"
	"maps"

	"github.com/mohae/deepcopy"
)

// CloneMap creates a shallow copy of any map type with comparable keys.
// This is useful for copying configuration maps, metadata, and other map structures
// where you need to modify the copy without affecting the original.
// Returns an empty initialized map when src is nil to prevent nil map panics.
func CloneMap[K comparable, V any](src map[K]V) map[K]V {
	if src == nil {
		return make(map[K]V)
	}
	return maps.Clone(src)
}

// CopyMaps safely merges multiple maps into a new map, with later maps
// overriding earlier ones. Handles nil maps gracefully by skipping them.
// Returns an empty initialized map if all inputs are nil.
func CopyMaps[K comparable, V any](srcs ...map[K]V) map[K]V {
	result := make(map[K]V)
	for _, src := range srcs {
		if src != nil {
			maps.Copy(result, src)
		}
	}
	return result
}

// DeepCopy creates a deep copy of v using github.com/mohae/deepcopy's
// reflection-based walk, which recurses through nested slices, maps,
// and structs without the caller needing to know their shape ahead of
// time.
//
// deepcopy.Copy skips unexported struct fields, so it cannot clone a
// value.Value (all of whose fields are unexported); value.Value.ToValue
// clones its arrays and objects by its own recursion instead.
//
// If the copied value cannot be asserted back to T, the zero value of
// T is returned along with an error.
func DeepCopy[T any](v T) (T, error) {
	var zero T
	copied := deepcopy.Copy(v)
	result, ok := copied.(T)
	if !ok {
		return zero, fmt.Errorf("failed to cast copied value to type %T", zero)
	}
	return result, nil
}
