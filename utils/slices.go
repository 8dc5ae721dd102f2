package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeys returns the keys of the input map.
// Order is not guaranteed.
func GetKeys[K comparable, V any](m map[K]V) (keys []K) {

	keys = make([]K, len(m))

	var i int
	for key := range m {
		keys[i] = key
		i++
	}

	return
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetKeys(m)
	SortSlice(keys)
	return
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// Clone returns a copy of s, or nil if s is nil.
func Clone[V any](s []V) []V {
	if s == nil {
		return nil
	}
	c := make([]V, len(s))
	copy(c, s)
	return c
}

// Pad returns a copy of s extended with zero values up to length n.
// If len(s) >= n, the copy has the length of s.
func Pad[V any](s []V, n int) []V {
	c := make([]V, Max(len(s), n))
	copy(c, s)
	return c
}

// FirstIndex returns the index of the first element of s satisfying f, or -1.
func FirstIndex[V any](s []V, f func(V) bool) int {
	for i := range s {
		if f(s[i]) {
			return i
		}
	}
	return -1
}

// LastIndex returns the index of the last element of s satisfying f, or -1.
func LastIndex[V any](s []V, f func(V) bool) int {
	for i := len(s) - 1; i >= 0; i-- {
		if f(s[i]) {
			return i
		}
	}
	return -1
}
