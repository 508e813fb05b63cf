// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package dyadic

// Interval is a half-open real interval [Inf, Sup), the public interchange
// type between callers and the dyadic machinery. Unlike DyadicInterval it
// is not restricted to dyadic-rational endpoints.
type Interval struct {
	Inf float64
	Sup float64
}

// NewInterval returns the interval [inf, sup). It does not validate that
// sup > inf; callers that need that guarantee (e.g. segment.Segment)
// validate it themselves so that the failure is reported in their terms.
func NewInterval(inf, sup float64) Interval {
	return Interval{Inf: inf, Sup: sup}
}

// IncludedEnd is Inf: the endpoint the interval contains.
func (r Interval) IncludedEnd() float64 { return r.Inf }

// ExcludedEnd is Sup: the endpoint the interval approaches but excludes.
func (r Interval) ExcludedEnd() float64 { return r.Sup }

// Contains reports whether x lies in [r.Inf, r.Sup).
func (r Interval) Contains(x float64) bool {
	return r.Inf <= x && x < r.Sup
}

// IsAssociated reports whether r contains other's included endpoint. In a
// partition of r by clopen sub-intervals, every partitioning interval is
// associated with exactly one cell of r.
func (r Interval) IsAssociated(other Interval) bool {
	return r.Contains(other.IncludedEnd())
}

// ContainsInterval reports whether other lies entirely within r: r must
// be associated with other, and other must not also reach r's excluded
// end (which would mean other spills past r).
func (r Interval) ContainsInterval(other Interval) bool {
	return r.IsAssociated(other) && !other.Contains(r.ExcludedEnd())
}

// Empty reports whether the interval contains no points.
func (r Interval) Empty() bool {
	return r.Sup <= r.Inf
}
