package predicate

import (
	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// rangeSet is a set of disjoint closed numeric intervals, queryable by
// point containment. It is a stripped-down cousin of an interval map: where
// an interval map associates a value with each interval, a rangeSet only
// needs yes/no membership, so it keeps just the interval starts, keyed by
// their (inclusive) end.
//
// Ranges are expected to be supplied once, at predicate-construction time,
// and never mutated after that, matching the rest of this package's
// factories-return-pure-functions shape.
type rangeSet[K constraints.Float | constraints.Integer] struct {
	tree btree.Map[K, K] // end -> start
}

func newRangeSet[K constraints.Float | constraints.Integer](ranges [][2]K) rangeSet[K] {
	var rs rangeSet[K]
	for _, r := range ranges {
		start, end := r[0], r[1]
		if start > end {
			start, end = end, start
		}
		rs.tree.Set(end, start)
	}
	return rs
}

// contains reports whether x falls within any inserted [start, end] range.
func (rs *rangeSet[K]) contains(x K) bool {
	iter := rs.tree.Iter()
	if !iter.Seek(x) {
		return false
	}
	return x >= iter.Value()
}
