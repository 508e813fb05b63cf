// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package segment

import (
	"github.com/rdelib/segments/dyadic"
	"github.com/rdelib/segments/must"
)

// seenEntry records one already-discovered, maximal dyadic-aligned region as
// (sup, inf): the excluded end is the key, matching the source's
// dyadic-keyed map, because right-to-left scanning needs fast access to the
// entry whose sup is nearest (from above) to a candidate's inf.
type seenEntry struct {
	sup dyadic.Number
	inf dyadic.Number
}

// seenSet is the ordered collection of discovered regions described in the
// design's seen-map, kept sorted in descending order of sup so that a
// linear scan visits entries right to left, as next_candidate and
// find_in_unit require. A balanced tree would give O(log n) insertion, but
// the number of discovered regions in one search is bounded by the number
// of predicate hits, which is small relative to the depth-driven search
// itself, so a plain slice is adequate here.
type seenSet struct {
	entries []seenEntry
}

func (s *seenSet) reset() {
	s.entries = s.entries[:0]
}

// insert records [inf, sup) as discovered, overwriting any existing entry
// whose sup is rationally equal to sup (mirroring the source's map
// assignment semantics).
func (s *seenSet) insert(sup, inf dyadic.Number) {
	idx := 0
	for idx < len(s.entries) && s.entries[idx].sup.Greater(sup) {
		idx++
	}
	if idx < len(s.entries) && dyadic.RationalEqual(s.entries[idx].sup, sup) {
		s.entries[idx].inf = inf
		return
	}
	s.entries = append(s.entries, seenEntry{})
	copy(s.entries[idx+1:], s.entries[idx:])
	s.entries[idx] = seenEntry{sup: sup, inf: inf}
}

// searcher holds the transient state of one Segment call: the predicate
// (already rescaled onto [0, 1)), the seen set, and the two depths that
// bound discovery (maxDepth, aka signal tolerance) and refinement
// (trimDepth, aka trim tolerance).
type searcher struct {
	predicate *scaledPredicate
	maxDepth  int64
	trimDepth int64
	seen      seenSet
}

// nextCandidate steps cur one cell to the left, skipping over any region
// already present in the seen set in a single pass. See the design's
// canonical dyadic-cell enumeration: the seen set is scanned right to
// left (descending sup); once an entry's sup lies below cur's inf, no
// coarser-right entry can overlap either, and the scan stops early.
func (s *searcher) nextCandidate(cur dyadic.DyadicInterval) dyadic.DyadicInterval {
	for _, e := range s.seen.entries {
		curInf := cur.IncludedEnd()
		if curInf.Less(e.inf) {
			continue
		}
		if curInf.Greater(e.sup) {
			break
		}
		switch {
		case cur.N < e.inf.N:
			cur.K = e.inf.K >> uint(e.inf.N-cur.N)
		case cur.N > e.inf.N:
			shiftAmt := cur.N - e.inf.N
			must.Truef(shiftAmt < 63, "segment: seen-set shift %d overflows", shiftAmt)
			cur.K = e.inf.K << uint(shiftAmt)
		default:
			cur.K = e.inf.K
		}
	}
	cur.K--
	return cur
}

// expandLeft grows current leftward from its front. If the front is
// aligned, its whole left sibling is tested first. Then the next candidate
// is split in half repeatedly, testing the half adjacent to the
// already-accepted block: a good half is prepended and the search moves on
// to the other half, a failed half is split further. This continues until
// the candidate reaches trimDepth.
func (s *searcher) expandLeft(current *[]dyadic.DyadicInterval) {
	front := (*current)[0]
	aligned := front.Aligned()
	di := front.LeftSibling()

	if aligned {
		if s.predicate.evalDyadic(di) {
			*current = prepend(*current, di)
			di = di.LeftSibling()
		}
	}

	for di.N < s.trimDepth {
		left := di.ShrinkLeft(1)
		di = di.ShrinkRight(1)
		if s.predicate.evalDyadic(di) {
			*current = prepend(*current, di)
			di = left
		}
	}
}

// expandRight is the mirror of expandLeft, growing current rightward from
// its back. It need not re-check the sibling at the same depth: the
// outer right-to-left search would already have discovered and merged it
// during a prior expandLeft call.
func (s *searcher) expandRight(current *[]dyadic.DyadicInterval) {
	back := (*current)[len(*current)-1]
	di := back.RightSibling()

	for di.N < s.trimDepth {
		right := di.ShrinkRight(1)
		di = di.ShrinkLeft(1)
		if s.predicate.evalDyadic(di) {
			*current = append(*current, di)
			di = right
		}
	}
}

func prepend(s []dyadic.DyadicInterval, v dyadic.DyadicInterval) []dyadic.DyadicInterval {
	s = append(s, dyadic.DyadicInterval{})
	copy(s[1:], s)
	s[0] = v
	return s
}

// expand grows a single good cell into the longest contiguous run of
// trimDepth-or-coarser cells all satisfying the predicate, then records
// the resulting maximal region in the seen set.
func (s *searcher) expand(found dyadic.DyadicInterval) {
	current := []dyadic.DyadicInterval{found}
	s.expandLeft(&current)
	s.expandRight(&current)
	front, back := current[0], current[len(current)-1]
	s.seen.insert(back.ExcludedEnd(), front.IncludedEnd())
}

// findInUnit runs the full depth-by-depth scan over [0, 1) and returns the
// discovered regions in left-to-right order.
func (s *searcher) findInUnit() []dyadic.Interval {
	s.seen.reset()

	for depth := int64(1); depth <= s.maxDepth; depth++ {
		// One past the rightmost cell at this depth; nextCandidate steps it
		// onto the actual rightmost unseen cell.
		cur := s.nextCandidate(dyadic.New(int64(1)<<uint(depth), depth))
		for cur.K >= 0 {
			if s.predicate.evalDyadic(cur) {
				s.expand(cur)
			}
			cur = s.nextCandidate(cur)
		}
	}

	n := len(s.seen.entries)
	result := make([]dyadic.Interval, n)
	for i, e := range s.seen.entries {
		result[n-1-i] = dyadic.NewInterval(e.inf.Float64(), e.sup.Float64())
	}
	return result
}
