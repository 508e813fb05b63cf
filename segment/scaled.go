// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package segment

import "github.com/rdelib/segments/dyadic"

// scaledPredicate adapts a user predicate, defined over an arbitrary base
// interval, to the canonical unit interval [0, 1) that the searcher
// explores. unscale maps a sub-interval of [0, 1) back onto base so the
// searcher need never reason about the caller's coordinates.
type scaledPredicate struct {
	predicate func(dyadic.Interval) bool
	shift     float64
	scale     float64
}

func newScaledPredicate(predicate func(dyadic.Interval) bool, shift, scale float64) *scaledPredicate {
	return &scaledPredicate{predicate: predicate, shift: shift, scale: scale}
}

// unscale maps a sub-interval of [0, 1) onto the original base interval:
// y ↦ shift + y*scale.
func (p *scaledPredicate) unscale(scaled dyadic.Interval) dyadic.Interval {
	return dyadic.NewInterval(
		scaled.Inf*p.scale+p.shift,
		scaled.Sup*p.scale+p.shift,
	)
}

func (p *scaledPredicate) evalReal(i dyadic.Interval) bool {
	return p.predicate(p.unscale(i))
}

func (p *scaledPredicate) evalDyadic(di dyadic.DyadicInterval) bool {
	return p.evalReal(dyadic.NewInterval(di.Inf(), di.Sup()))
}
