// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package dyadic implements exact dyadic-rational arithmetic and the
// half-open dyadic interval tree built on top of it. A dyadic number is a
// rational of the form k * 2^(-n) with signed integer k and n; every
// comparison, shift, and containment test in this package is performed on
// the integer pair (k, n) so that interval endpoints never drift the way
// floating point values do under repeated subdivision.
//
// Floating point only ever appears at the boundary, when a caller hands in
// a float64 or asks for one back.
package dyadic

import (
	"fmt"
	"math"

	"github.com/rdelib/segments/must"
)

// Number is the dyadic rational k * 2^(-n).
//
// k is the numerator; n is the log2 of the denominator 2^n, so the
// value grows finer (a larger denominator) as n increases. The zero value
// is the dyadic number 0.
type Number struct {
	K int64
	N int64
}

// NewNumber returns the dyadic number k * 2^(-n).
func NewNumber(k, n int64) Number {
	return Number{K: k, N: n}
}

// Float64 converts d to a float64. Large |k| or |n| may lose precision.
func (d Number) Float64() float64 {
	return math.Ldexp(float64(d.K), int(-d.N))
}

func (d Number) String() string {
	return fmt.Sprintf("%d*2^-%d", d.K, d.N)
}

// shiftLeft computes k*2^n, asserting in the manner of the original
// reference implementation that the multiplication did not overflow.
//
// WARNING: n must be non-negative; this is a left shift, not a rebase.
func shiftLeft(k, n int64) int64 {
	must.Truef(n >= 0, "dyadic: shift exponent %d is negative", n)
	if k == 0 || n == 0 {
		return k
	}
	pwr := int64(1) << uint(n)
	ans := k * pwr
	must.Truef(ans/k == pwr, "dyadic: overflow shifting %d left by %d", k, n)
	return ans
}

// floorDiv is integer division rounding toward negative infinity, as
// opposed to Go's native truncation toward zero.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Rebase rewrites d as the dyadic number with the largest denominator
// exponent n' <= resolution such that the rebased value is rationally
// equal to d, and reports whether n' == resolution (i.e. whether d is
// exactly representable at that resolution). No rounding is performed: if
// d cannot be rebased exactly down to resolution, Rebase returns the
// coarsest representable value strictly finer than resolution, with ok
// false.
func (d Number) Rebase(resolution int64) (_ Number, ok bool) {
	if d.K == 0 {
		return Number{K: 0, N: resolution}, true
	}
	if resolution >= d.N {
		return Number{K: shiftLeft(d.K, resolution-d.N), N: resolution}, true
	}
	k, n := d.K, d.N
	for n > resolution && k%2 == 0 {
		k /= 2
		n--
	}
	return Number{K: k, N: n}, n == resolution
}

// RationalEqual reports whether a and b denote the same rational number,
// regardless of how each is represented.
func RationalEqual(a, b Number) bool {
	if a.K == 0 || b.K == 0 {
		return a.K == 0 && b.K == 0
	}
	if ratio := a.K / b.K; a.K%b.K == 0 && ratio >= 1 {
		if rel := a.N - b.N; rel >= 0 {
			return ratio == int64(1)<<uint(rel)
		}
		return false
	}
	if ratio := b.K / a.K; b.K%a.K == 0 && ratio >= 1 {
		if rel := b.N - a.N; rel >= 0 {
			return ratio == int64(1)<<uint(rel)
		}
		return false
	}
	return false
}

// Less implements the rational order on dyadic numbers: both sides are
// brought to the finer (larger) of the two denominator exponents before
// comparison, so it agrees with ordinary rational comparison regardless of
// representation.
func (d Number) Less(other Number) bool {
	max := d.N
	if other.N > max {
		max = other.N
	}
	return shiftLeft(d.K, max-d.N) < shiftLeft(other.K, max-other.N)
}

// Greater is the mirror of Less.
func (d Number) Greater(other Number) bool {
	return other.Less(d)
}
