// Package perm generates permutations.
package perm

import "golang.org/x/exp/slices"

// Each calls f with every ordering of elems, in Heap's algorithm order,
// starting with elems itself. The slice passed to f is reused between calls;
// f must copy it to retain it. Stops early if f returns false.
func Each[T any](elems []T, f func([]T) bool) {
	a := slices.Clone(elems)
	if !f(a) {
		return
	}
	c := make([]int, len(a))
	for i := 1; i < len(a); {
		if c[i] < i {
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			if !f(a) {
				return
			}
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}
}

// All returns every ordering of elems.
func All[T any](elems []T) (all [][]T) {
	Each(elems, func(p []T) bool {
		all = append(all, slices.Clone(p))
		return true
	})
	return all
}
