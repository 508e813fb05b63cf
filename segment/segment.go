// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package segment computes a dyadic segmentation of a real interval under
// a user-supplied characteristic predicate: given a base interval and a
// predicate over sub-intervals, it finds a minimal, ordered, pairwise
// disjoint sequence of dyadic-aligned sub-intervals approximating the set
// of points on which the predicate holds, to a caller-chosen resolution.
package segment

import (
	"fmt"

	"github.com/rdelib/segments/dyadic"
	"github.com/rdelib/segments/errors"
)

// Predicate reports whether a real interval satisfies the caller's
// characteristic condition.
type Predicate func(dyadic.Interval) bool

// Segment partitions base under predicate, returning the maximal
// dyadic-aligned sub-intervals on which predicate holds, in left-to-right
// order.
//
// signalTolerance bounds the coarsest depth at which the search looks for
// initial matches; trimTolerance bounds the finest depth to which a
// discovered region may be refined. If trimTolerance is less than
// signalTolerance, it is raised to match (the search cannot meaningfully
// refine more coarsely than it searches).
//
// If predicate(base) holds, Segment returns base unchanged without
// exploring further. Segment returns an error if base is empty or either
// tolerance is negative; otherwise it performs no local recovery; a panic
// from predicate (for example via github.com/rdelib/segments/must)
// propagates unchanged.
func Segment(base dyadic.Interval, predicate Predicate, signalTolerance, trimTolerance int64) ([]dyadic.Interval, error) {
	if base.Empty() {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("segment: base interval [%v, %v) is empty or inverted", base.Inf, base.Sup))
	}
	if signalTolerance < 0 || trimTolerance < 0 {
		return nil, errors.E(errors.Invalid, "segment: tolerances must be non-negative")
	}
	if trimTolerance < signalTolerance {
		trimTolerance = signalTolerance
	}

	if predicate(base) {
		return []dyadic.Interval{base}, nil
	}

	scaled := newScaledPredicate(predicate, base.Inf, base.Sup-base.Inf)
	sch := &searcher{predicate: scaled, maxDepth: signalTolerance, trimDepth: trimTolerance}
	found := sch.findInUnit()

	result := make([]dyadic.Interval, len(found))
	for i, itv := range found {
		result[i] = scaled.unscale(itv)
	}
	return result, nil
}

// SegmentDepth is Segment with a single depth used for both the signal and
// trim tolerance.
func SegmentDepth(base dyadic.Interval, predicate Predicate, maxDepth int64) ([]dyadic.Interval, error) {
	return Segment(base, predicate, maxDepth, maxDepth)
}

// SegmentFunc is Segment for callers who would rather supply a predicate
// over the two interval endpoints than construct a dyadic.Interval.
func SegmentFunc(base dyadic.Interval, predicate func(inf, sup float64) bool, signalTolerance, trimTolerance int64) ([]dyadic.Interval, error) {
	return Segment(base, func(i dyadic.Interval) bool { return predicate(i.Inf, i.Sup) }, signalTolerance, trimTolerance)
}
