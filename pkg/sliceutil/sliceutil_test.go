package sliceutil_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sharedkit/pkg/sliceutil"
)

func TestEvery(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		n        int
		expected []int
	}{
		{"every second", []int{1, 2, 3, 4, 5}, 2, []int{1, 3, 5}},
		{"every third", []int{1, 2, 3, 4, 5, 6}, 3, []int{1, 4}},
		{"every one", []int{1, 2}, 1, []int{1, 2}},
		{"larger than slice", []int{1, 2}, 5, []int{1}},
		{"empty input", nil, 2, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sliceutil.Every(tt.input, tt.n))
		})
	}

	assert.Nil(t, sliceutil.Every([]int{1, 2}, 0))
}

func TestShuffle(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	original := slices.Clone(input)

	out := sliceutil.Shuffle(input)
	assert.Equal(t, original, input, "input must not be modified")
	assert.ElementsMatch(t, input, out)
	assert.Empty(t, sliceutil.Shuffle[int](nil))
}

func TestTakeUntil(t *testing.T) {
	greaterThanTwo := func(i int) bool { return i > 2 }

	assert.Equal(t, []int{1, 2}, sliceutil.TakeUntil([]int{1, 2, 3, 1}, greaterThanTwo))
	assert.Equal(t, []int{1, 2}, sliceutil.TakeUntil([]int{1, 2}, greaterThanTwo))
	assert.Empty(t, sliceutil.TakeUntil([]int{5, 1}, greaterThanTwo))
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		depth    int
		expected string
	}{
		{"depth below count", []string{"a", "b", "c"}, 2, "(3 {a} {b})"},
		{"depth above count", []string{"a"}, 10, "(1 {a})"},
		{"zero depth", []string{"a", "b"}, 0, "(2)"},
		{"empty", nil, 5, "(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sliceutil.Summarize(tt.input, tt.depth))
		})
	}

	assert.Equal(t, "(2 {A} {B})", sliceutil.SummarizeFunc([]string{"a", "b"}, strings.ToUpper, 2))
	assert.Equal(t, "(3 {1} {2} {3})", sliceutil.Summarize([]int{1, 2, 3}, 3))
}

func TestToSet(t *testing.T) {
	set := sliceutil.ToSet([]string{"a", "b", "a"})
	assert.Len(t, set, 2)
	assert.Contains(t, set, "a")
	assert.Contains(t, set, "b")

	lengths := sliceutil.ToSetFunc([]string{"a", "bb", "cc"}, func(s string) int { return len(s) })
	assert.Equal(t, map[int]struct{}{1: {}, 2: {}}, lengths)
}

func TestRange(t *testing.T) {
	lo, hi := sliceutil.Range([]int{7, 9, -999})
	assert.Equal(t, -999, lo)
	assert.Equal(t, 9, hi)

	lo, hi = sliceutil.Range([]int{3})
	assert.Equal(t, 3, lo)
	assert.Equal(t, 3, hi)

	lo, hi = sliceutil.Range[int](nil)
	assert.Zero(t, lo)
	assert.Zero(t, hi)

	slo, shi := sliceutil.Range([]string{"Z", "A"})
	assert.Equal(t, "A", slo)
	assert.Equal(t, "Z", shi)
}

func TestChunk(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, sliceutil.Chunk([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]int{{1, 2}}, sliceutil.Chunk([]int{1, 2}, 5))
	assert.Nil(t, sliceutil.Chunk([]int{1}, 0))
	assert.Nil(t, sliceutil.Chunk[int](nil, 3))
}

func TestDistinctAndEmpty(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, sliceutil.Distinct([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, sliceutil.Distinct[int](nil))

	assert.True(t, sliceutil.IsEmpty[int](nil))
	assert.False(t, sliceutil.IsEmpty([]int{0}))
}
