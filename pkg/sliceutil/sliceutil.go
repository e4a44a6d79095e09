package sliceutil

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Every returns every n-th element starting with the first one.
// A non-positive n returns nil.
func Every[T any](s []T, n int) []T {
	if n <= 0 {
		return nil
	}

	out := make([]T, 0, (len(s)+n-1)/n)
	for i := 0; i < len(s); i += n {
		out = append(out, s[i])
	}
	return out
}

// Shuffle returns a copy of s in random order.
func Shuffle[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// TakeUntil returns the leading elements of s up to, but excluding, the first
// element for which stop returns true.
func TakeUntil[T any](s []T, stop func(T) bool) []T {
	for i, v := range s {
		if stop(v) {
			return s[:i:i]
		}
	}
	return s
}

// Summarize renders the element count followed by up to depth elements,
// formatted as "(3 {a} {b})".
func Summarize[T any](s []T, depth int) string {
	return SummarizeFunc(s, func(v T) string { return fmt.Sprint(v) }, depth)
}

// SummarizeFunc is Summarize with a custom element formatter.
func SummarizeFunc[T any](s []T, format func(T) string, depth int) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(strconv.Itoa(len(s)))
	for i := 0; i < min(depth, len(s)); i++ {
		b.WriteString(" {")
		b.WriteString(format(s[i]))
		b.WriteByte('}')
	}
	b.WriteByte(')')
	return b.String()
}

// ToSet collects the elements of s into a set.
func ToSet[T comparable](s []T) map[T]struct{} {
	set := make(map[T]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	return set
}

// ToSetFunc collects key(v) for every element of s into a set.
func ToSetFunc[T any, K comparable](s []T, key func(T) K) map[K]struct{} {
	set := make(map[K]struct{}, len(s))
	for _, v := range s {
		set[key(v)] = struct{}{}
	}
	return set
}

// Range returns the smallest and largest elements of s.
// Both are the zero value when s is empty.
func Range[T cmp.Ordered](s []T) (lo, hi T) {
	if len(s) == 0 {
		return lo, hi
	}

	lo, hi = s[0], s[0]
	for _, v := range s[1:] {
		if cmp.Less(v, lo) {
			lo = v
		}
		if cmp.Less(hi, v) {
			hi = v
		}
	}
	return lo, hi
}

// IsEmpty reports whether s has no elements.
func IsEmpty[T any](s []T) bool {
	return len(s) == 0
}

// Chunk splits s into consecutive slices of at most size elements.
// A non-positive size returns nil.
func Chunk[T any](s []T, size int) [][]T {
	if size <= 0 || len(s) == 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		chunks = append(chunks, s[start:end:end])
	}
	return chunks
}

// Distinct returns the elements of s without duplicates, keeping first occurrences in order.
func Distinct[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
