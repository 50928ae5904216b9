package slices

import (
	originSlices "slices"

	"golang.org/x/exp/constraints"
)

// GenericsFilterSliceEmptyValues drops zero values ("", 0, false) keeping order
func GenericsFilterSliceEmptyValues[T comparable](list []T) []T {
	result := make([]T, 0, len(list))
	var emptyValue T
	for _, v := range list {
		if v == emptyValue {
			continue
		}
		result = append(result, v)
	}
	return result
}

// GenericsUniqueSliceValues keeps the first occurrence of every value
func GenericsUniqueSliceValues[T comparable](list []T) []T {
	result := make([]T, 0, len(list))
	seen := make(map[T]struct{}, len(list))
	for _, v := range list {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}

// GenericsStandardizeSlice removes empty and duplicated values keeping the
// order of first appearance
func GenericsStandardizeSlice[T comparable](list []T) []T {
	if list == nil {
		return make([]T, 0)
	}
	return GenericsUniqueSliceValues(GenericsFilterSliceEmptyValues(list))
}

// GenericsSliceWithout returns list minus every occurrence of values
func GenericsSliceWithout[T comparable](list []T, values ...T) []T {
	result := make([]T, 0, len(list))
	for _, v := range list {
		if originSlices.Contains(values, v) {
			continue
		}
		result = append(result, v)
	}
	return result
}

// GenericsChunkSlice splits list into consecutive batches of at most size
// elements. A non positive size returns the whole list as one batch.
func GenericsChunkSlice[T any](list []T, size int) [][]T {
	if len(list) == 0 {
		return nil
	}
	if size <= 0 || size >= len(list) {
		return [][]T{list}
	}

	chunks := make([][]T, 0, (len(list)+size-1)/size)
	for start := 0; start < len(list); start += size {
		end := start + size
		if end > len(list) {
			end = len(list)
		}
		chunks = append(chunks, list[start:end])
	}
	return chunks
}

// GenericsSortedKeys returns the keys of m in ascending order
func GenericsSortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	originSlices.Sort(keys)
	return keys
}
