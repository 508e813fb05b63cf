// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package segment_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rdelib/segments/dyadic"
	"github.com/rdelib/segments/errors"
	"github.com/rdelib/segments/segment"
)

func interval(inf, sup float64) dyadic.Interval { return dyadic.NewInterval(inf, sup) }

// S1: always-false predicate yields no regions.
func TestSegmentAlwaysFalse(t *testing.T) {
	calls := 0
	predicate := func(dyadic.Interval) bool { calls++; return false }
	got, err := segment.SegmentDepth(interval(0, 1), predicate, 3)
	require.NoError(t, err)
	require.Empty(t, got)
	require.True(t, calls > 0)
}

// S2: always-true predicate yields the base interval unchanged, calling the
// predicate exactly once.
func TestSegmentAlwaysTrue(t *testing.T) {
	calls := 0
	predicate := func(dyadic.Interval) bool { calls++; return true }
	got, err := segment.SegmentDepth(interval(0, 1), predicate, 3)
	require.NoError(t, err)
	require.Equal(t, []dyadic.Interval{interval(0, 1)}, got)
	require.Equal(t, 1, calls)
}

// S3.
func TestSegmentMiddleHalf(t *testing.T) {
	predicate := func(i dyadic.Interval) bool {
		return i.Inf >= 0.25 && i.Sup <= 0.75
	}
	got, err := segment.SegmentDepth(interval(0, 1), predicate, 3)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.InDelta(t, 0.25, got[0].Inf, 1e-12)
	require.InDelta(t, 0.75, got[0].Sup, 1e-12)
}

// S4.
func TestSegmentTwoRegions(t *testing.T) {
	predicate := func(i dyadic.Interval) bool {
		return (i.Inf >= 0.1 && i.Sup <= 0.35) || (i.Inf >= 0.55 && i.Sup <= 0.81)
	}
	got, err := segment.SegmentDepth(interval(0, 1), predicate, 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.InDelta(t, 0.125, got[0].Inf, 1e-12)
	require.InDelta(t, 0.25, got[0].Sup, 1e-12)
	require.InDelta(t, 0.625, got[1].Inf, 1e-12)
	require.InDelta(t, 0.75, got[1].Sup, 1e-12)
}

// S5: an irrational target range, approximated to within the grid spacing
// at the requested depth.
func TestSegmentIrrationalTarget(t *testing.T) {
	predicate := func(i dyadic.Interval) bool {
		return math.Pi <= i.Inf && i.Sup <= 2*math.Pi
	}
	const depth = 10
	got, err := segment.SegmentDepth(interval(0, 10), predicate, depth)
	require.NoError(t, err)
	require.Len(t, got, 1)
	tolerance := 10 * math.Pow(2, -depth)
	require.InDelta(t, math.Pi, got[0].Inf, tolerance)
	require.InDelta(t, 2*math.Pi, got[0].Sup, tolerance)
	require.True(t, predicate(got[0]))
}

// S6: many disjoint regions, each predicate cell evaluated at most twice.
func TestSegmentManyRegionsCallBound(t *testing.T) {
	targets := []dyadic.Interval{
		interval(0.1, 0.4),
		interval(0.6, 0.9),
		interval(1.1, 1.4),
		interval(1.6, 1.9),
		interval(2.1, 2.4),
		interval(2.6, 2.9),
		interval(3.1, 3.4),
		interval(3.6, 3.9),
		interval(4.1, 4.4),
		interval(4.6, 4.9),
		interval(5.1, 5.4),
		interval(5.6, 5.9),
		interval(6.1, 6.4),
	}
	calls := map[dyadic.Interval]int{}
	predicate := func(i dyadic.Interval) bool {
		calls[i]++
		for _, target := range targets {
			if target.Inf <= i.Inf && i.Sup <= target.Sup {
				return true
			}
		}
		return false
	}
	got, err := segment.SegmentDepth(interval(0, 10), predicate, 10)
	require.NoError(t, err)
	require.Len(t, got, len(targets))
	for _, c := range calls {
		require.LessOrEqual(t, c, 2)
	}
	for _, r := range got {
		require.True(t, predicate(r))
	}
}

func TestSegmentDisjointAndOrdered(t *testing.T) {
	predicate := func(i dyadic.Interval) bool {
		return (i.Inf >= 0.1 && i.Sup <= 0.35) || (i.Inf >= 0.55 && i.Sup <= 0.81)
	}
	got, err := segment.SegmentDepth(interval(0, 1), predicate, 6)
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		require.Less(t, got[i-1].Sup, got[i].Inf+1e-12)
		require.Less(t, got[i-1].Inf, got[i].Inf)
	}
}

func TestSegmentContainedInBase(t *testing.T) {
	base := interval(2, 10)
	predicate := func(i dyadic.Interval) bool {
		return i.Inf >= 3 && i.Sup <= 7
	}
	got, err := segment.SegmentDepth(base, predicate, 8)
	require.NoError(t, err)
	for _, r := range got {
		require.True(t, base.ContainsInterval(r) || r == base)
	}
}

func TestSegmentIdempotent(t *testing.T) {
	predicate := func(i dyadic.Interval) bool {
		return (i.Inf >= 0.1 && i.Sup <= 0.35) || (i.Inf >= 0.55 && i.Sup <= 0.81)
	}
	const depth = 6
	first, err := segment.SegmentDepth(interval(0, 1), predicate, depth)
	require.NoError(t, err)
	for _, region := range first {
		again, err := segment.SegmentDepth(region, predicate, depth)
		require.NoError(t, err)
		require.Equal(t, []dyadic.Interval{region}, again)
	}
}

func TestSegmentRejectsDegenerateBase(t *testing.T) {
	_, err := segment.SegmentDepth(interval(1, 1), func(dyadic.Interval) bool { return true }, 3)
	require.Error(t, err)
	require.True(t, errors.Is(errors.Invalid, err))
}

func TestSegmentRejectsNegativeTolerance(t *testing.T) {
	_, err := segment.Segment(interval(0, 1), func(dyadic.Interval) bool { return true }, -1, 3)
	require.Error(t, err)
	require.True(t, errors.Is(errors.Invalid, err))
}

func TestSegmentTrimRaisedToSignal(t *testing.T) {
	// trimTolerance < signalTolerance is raised to match, never panics or
	// under-refines below the signal depth.
	predicate := func(i dyadic.Interval) bool {
		return i.Inf >= 0.25 && i.Sup <= 0.75
	}
	got, err := segment.Segment(interval(0, 1), predicate, 3, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestSegmentFunc(t *testing.T) {
	got, err := segment.SegmentFunc(interval(0, 1), func(inf, sup float64) bool {
		return inf >= 0.25 && sup <= 0.75
	}, 3, 3)
	require.NoError(t, err)
	require.Len(t, got, 1)
}
