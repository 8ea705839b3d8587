// Copyright (c) 2026 Netfabrica, Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package iputils has list-level helpers layered on the ip package, for the
// rule-generation style of workload that deals in slices of mixed-width
// ranges rather than single values.
package iputils

import (
	"slices"

	"github.com/netfabrica/ipcidr/ip"
)

// Intersect returns the ranges representing the overlap of the two lists.
// CIDR ranges only ever overlap when one covers the other, so each
// intersecting pair contributes its narrower member.  The result is
// deduplicated and sorted for determinism both in testing and in rule
// generation.
func Intersect(a, b []ip.IPRange) []ip.IPRange {
	var out []ip.IPRange
	for _, ra := range a {
		for _, rb := range b {
			switch {
			case ra.Covers(rb):
				out = append(out, rb)
			case rb.Covers(ra):
				out = append(out, ra)
			}
		}
	}
	out = Dedupe(out)
	Sort(out)
	return out
}

// IntersectStrings is Intersect over "addr/len" (or bare address) text; it
// panics on malformed input, so it is for hard-coded rule sets.
func IntersectStrings(a, b []string) []string {
	var out []string
	for _, r := range Intersect(parseRanges(a), parseRanges(b)) {
		out = append(out, r.String())
	}
	return out
}

// Sort orders the ranges in place: v4 before v6, then by base address and
// prefix length.
func Sort(ranges []ip.IPRange) {
	slices.SortFunc(ranges, ip.IPRange.Cmp)
}

// Dedupe returns the distinct ranges, preserving first-occurrence order.
func Dedupe(ranges []ip.IPRange) []ip.IPRange {
	seen := make(map[ip.IPRange]struct{}, len(ranges))
	out := ranges[:0:0]
	for _, r := range ranges {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

func parseRanges(in []string) (out []ip.IPRange) {
	for _, s := range in {
		out = append(out, ip.MustParseIPRangeOrAddr(s))
	}
	return
}
