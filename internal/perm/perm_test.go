package perm

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	assert.Equal(t, [][]int{
		{1, 2, 3},
		{2, 1, 3},
		{3, 1, 2},
		{1, 3, 2},
		{2, 3, 1},
		{3, 2, 1},
	}, All([]int{1, 2, 3}))

	assert.Equal(t, [][]int{{}}, All([]int{}))
	assert.Equal(t, [][]string{{"a"}}, All([]string{"a"}))
}

func TestAll_unique(t *testing.T) {
	all := All([]int{0, 1, 2, 3, 4})
	assert.Len(t, all, 120)
	seen := make(map[[5]int]bool, len(all))
	for _, p := range all {
		var key [5]int
		copy(key[:], p)
		assert.False(t, seen[key], "duplicate permutation %v", p)
		seen[key] = true

		sorted := append([]int(nil), p...)
		sort.Ints(sorted)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, sorted)
	}
}

func TestEach_stop(t *testing.T) {
	n := 0
	Each([]int{1, 2, 3, 4}, func([]int) bool {
		n++
		return n < 5
	})
	assert.Equal(t, 5, n)
}

func TestEach_doesNotModify(t *testing.T) {
	elems := []int{1, 2, 3}
	Each(elems, func([]int) bool { return true })
	assert.Equal(t, []int{1, 2, 3}, elems)
}
