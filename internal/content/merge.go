// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content provides the hardcoded fallback datasets for pages that
// ship with default records, and the single shared merge that reconciles
// live CMS records over those defaults. Every page calls MergeDefaults the
// same way instead of re-implementing the merge inline.
package content

import "sort"

// MergeDefaults merges live records over a default dataset. A live record
// whose key matches a default replaces it in place; a live record with no
// matching default is appended. The result is re-sorted by key ascending,
// so an appended record slots into its keyed position.
func MergeDefaults[T any](defaults, live []T, key func(T) int) []T {
	merged := make([]T, len(defaults))
	copy(merged, defaults)

	index := make(map[int]int, len(merged))
	for i, d := range merged {
		index[key(d)] = i
	}

	for _, rec := range live {
		if i, ok := index[key(rec)]; ok {
			merged[i] = rec
			continue
		}
		index[key(rec)] = len(merged)
		merged = append(merged, rec)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return key(merged[i]) < key(merged[j])
	})
	return merged
}
