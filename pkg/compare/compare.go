// Package compare computes multiset differences between transaction
// record collections.
package compare

import (
	"sort"

	"github.com/ypay/txfile/pkg/tx"
)

// Mismatch is a record whose occurrence counts differ between the two
// collections. Count is occurrences in the first collection minus
// occurrences in the second; it is never zero.
type Mismatch struct {
	Record tx.Record
	Count  int
}

// File names the collection (1 or 2) holding the occurrences the other
// one lacks.
func (m Mismatch) File() int {
	if m.Count > 0 {
		return 1
	}
	return 2
}

// Diff compares two collections keyed by full structural equality: two
// records differing only by timestamp are distinct. Records with a zero
// net count are dropped; the rest are returned sorted by ID (then
// timestamp) for stable output.
func Diff(first, second []tx.Record) []Mismatch {
	counts := make(map[tx.Record]int)
	for _, rec := range first {
		counts[rec]++
	}
	for _, rec := range second {
		counts[rec]--
	}

	mismatches := make([]Mismatch, 0, len(counts))
	for rec, count := range counts {
		if count != 0 {
			mismatches = append(mismatches, Mismatch{Record: rec, Count: count})
		}
	}
	sort.Slice(mismatches, func(i, j int) bool {
		a, b := mismatches[i].Record, mismatches[j].Record
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		return a.Timestamp < b.Timestamp
	})
	return mismatches
}
