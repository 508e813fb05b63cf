// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package segment

import (
	"math"
	"math/rand"

	"github.com/rdelib/segments/dyadic"
	"github.com/rdelib/segments/log"
)

// Index answers overlap and point-containment queries over a set of real
// intervals, typically the regions returned by Segment, in O(log n + k)
// time rather than the O(n) scan a linear search over the result slice
// would need. It is built once from a fixed set of entries and is read-only
// thereafter.
//
// The implementation is a 1-D Kd tree with a randomized surface-area
// heuristic split, the same structure github.com/grailbio/base/intervalmap
// uses for genomic interval queries, adapted here to float64-valued
// dyadic.Interval bounds instead of int64 genomic coordinates. Index is
// not safe for concurrent use: callers that query it from multiple
// goroutines must synchronize externally or use one Index per goroutine.
type Index struct {
	root  indexNode
	hits  []uint32
	visit uint32
}

// Entry is one interval stored in an Index, together with an arbitrary
// caller-supplied payload.
type Entry struct {
	Interval dyadic.Interval
	Data     interface{}
}

type indexEntry struct {
	Entry
	id int
}

const maxEntsInNode = 16

type indexNode struct {
	bounds      dyadic.Interval
	left, right *indexNode
	ents        []*indexEntry
}

// NewIndex builds an Index over ents. The entries may overlap and need not
// be sorted.
func NewIndex(ents []Entry) *Index {
	withIDs := make([]indexEntry, len(ents))
	ptrs := make([]*indexEntry, len(ents))
	for i := range ents {
		withIDs[i] = indexEntry{Entry: ents[i], id: i}
		ptrs[i] = &withIDs[i]
	}
	idx := &Index{hits: make([]uint32, len(ents))}
	r := rand.New(rand.NewSource(0))
	idx.root.init(ptrs, span(ptrs), r)
	return idx
}

func span(ents []*indexEntry) dyadic.Interval {
	if len(ents) == 0 {
		return dyadic.NewInterval(math.Inf(1), math.Inf(-1))
	}
	out := ents[0].Interval
	for _, e := range ents[1:] {
		out = unionInterval(out, e.Interval)
	}
	return out
}

func unionInterval(a, b dyadic.Interval) dyadic.Interval {
	lo := a.Inf
	if b.Inf < lo {
		lo = b.Inf
	}
	hi := a.Sup
	if b.Sup > hi {
		hi = b.Sup
	}
	return dyadic.NewInterval(lo, hi)
}

func intersects(a, b dyadic.Interval) bool {
	return a.Sup > b.Inf && b.Sup > a.Inf
}

func intersect(a, b dyadic.Interval) dyadic.Interval {
	lo := a.Inf
	if b.Inf > lo {
		lo = b.Inf
	}
	hi := a.Sup
	if b.Sup < hi {
		hi = b.Sup
	}
	return dyadic.NewInterval(lo, hi)
}

const maxSample = 8

func randomSample(ents []*indexEntry, r *rand.Rand) []*indexEntry {
	if len(ents) <= maxSample {
		return ents
	}
	for i := 0; i < maxSample-1; i++ {
		j := i + r.Intn(len(ents)-i)
		ents[i], ents[j] = ents[j], ents[i]
	}
	return ents[:maxSample]
}

// split partitions ents into a balanced left/right set around a midpoint
// chosen by the surface-area heuristic: the candidate that minimizes
// (count in left)*(width of left) + (count in right)*(width of right).
func split(ents []*indexEntry, bounds dyadic.Interval, r *rand.Rand) (mid float64, left, right []*indexEntry, ok bool) {
	sample := randomSample(ents, r)
	sampleRange := intersect(span(sample), bounds)
	if sampleRange.Empty() {
		return
	}

	candidates := make([]float64, 0, len(sample)*2)
	for _, e := range sample {
		candidates = append(candidates, e.Interval.Inf, e.Interval.Sup)
	}

	splitAt := func(at float64) (l, r []*indexEntry) {
		leftSide := dyadic.NewInterval(bounds.Inf, at)
		rightSide := dyadic.NewInterval(at, bounds.Sup)
		for _, e := range ents {
			if intersects(e.Interval, leftSide) {
				l = append(l, e)
			}
			if intersects(e.Interval, rightSide) {
				r = append(r, e)
			}
		}
		return
	}

	minCost := math.MaxFloat64
	for _, at := range candidates {
		if at <= sampleRange.Inf || at >= sampleRange.Sup {
			continue
		}
		l, rr := splitAt(at)
		if len(l) == 0 || len(rr) == 0 {
			continue
		}
		cost := float64(len(l))*(at-sampleRange.Inf) + float64(len(rr))*(sampleRange.Sup-at)
		if cost < minCost {
			minCost = cost
			mid, left, right, ok = at, l, rr, true
		}
	}
	if ok && (len(left) == len(ents) || len(right) == len(ents)) {
		ok = false
	}
	return
}

func (n *indexNode) init(ents []*indexEntry, bounds dyadic.Interval, r *rand.Rand) {
	n.bounds = bounds
	if len(ents) <= maxEntsInNode {
		n.ents = ents
		return
	}
	mid, left, right, ok := split(ents, bounds, r)
	if !ok {
		n.ents = ents
		return
	}
	log.Debug.Printf("index: split %v at %v into %d/%d", bounds, mid, len(left), len(right))
	n.left = &indexNode{}
	n.left.init(left, intersect(span(left), dyadic.NewInterval(bounds.Inf, mid)), r)
	n.right = &indexNode{}
	n.right.init(right, intersect(span(right), dyadic.NewInterval(mid, bounds.Sup)), r)
}

func (idx *Index) visitOnce(id int) bool {
	if idx.hits[id] != idx.visit {
		idx.hits[id] = idx.visit
		return true
	}
	return false
}

// Get appends every entry whose interval overlaps query to *out, each at
// most once, and returns the extended slice.
func (idx *Index) Get(query dyadic.Interval, out []Entry) []Entry {
	idx.visit++
	idx.root.get(query, idx, &out)
	return out
}

func (n *indexNode) get(query dyadic.Interval, idx *Index, out *[]Entry) {
	query = intersect(query, n.bounds)
	if query.Empty() {
		return
	}
	if len(n.ents) > 0 {
		for _, e := range n.ents {
			if intersects(query, e.Interval) && idx.visitOnce(e.id) {
				*out = append(*out, e.Entry)
			}
		}
		return
	}
	n.left.get(query, idx, out)
	n.right.get(query, idx, out)
}

// Any reports whether any indexed interval overlaps query.
func (idx *Index) Any(query dyadic.Interval) bool {
	return idx.root.any(query)
}

func (n *indexNode) any(query dyadic.Interval) bool {
	query = intersect(query, n.bounds)
	if query.Empty() {
		return false
	}
	if len(n.ents) > 0 {
		for _, e := range n.ents {
			if intersects(query, e.Interval) {
				return true
			}
		}
		return false
	}
	return n.left.any(query) || n.right.any(query)
}

// Containing returns the entry whose interval contains x, if any. It is a
// convenience wrapper around Get for the common case of a degenerate
// point query against a disjoint partition, such as the output of
// Segment: at most one entry is ever returned in that case.
func (idx *Index) Containing(x float64) (Entry, bool) {
	point := dyadic.NewInterval(x, math.Nextafter(x, math.Inf(1)))
	hits := idx.Get(point, nil)
	for _, e := range hits {
		if e.Interval.Contains(x) {
			return e, true
		}
	}
	return Entry{}, false
}
