// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package dyadic

import (
	"math"

	"github.com/rdelib/segments/must"
)

// DyadicInterval is the clopen dyadic interval [k/2^n, (k+1)/2^n). It forms
// an infinite binary tree: every interval has a unique parent and exactly
// two children, and every operation below moves to an adjacent node of
// that tree using only integer arithmetic on (K, N).
//
// Only the clopen orientation is implemented; an opencl (right-included)
// variant would be its exact mirror, swapping included and excluded ends.
type DyadicInterval struct {
	K int64
	N int64
}

// New returns the dyadic interval [k/2^n, (k+1)/2^n).
func New(k, n int64) DyadicInterval {
	return DyadicInterval{K: k, N: n}
}

// Unit is the default dyadic interval [0, 1).
func Unit() DyadicInterval {
	return DyadicInterval{K: 0, N: 0}
}

// FromNumber returns the dyadic interval of length 2^-resolution
// containing the dyadic value d. If d is not exactly representable at
// resolution, the numerator is rounded toward -infinity so that the
// resulting interval still contains d's value (the clopen rounding rule).
func FromNumber(d Number, resolution int64) DyadicInterval {
	rebased, ok := d.Rebase(resolution)
	if ok {
		return DyadicInterval{K: rebased.K, N: resolution}
	}
	shiftAmt := uint(rebased.N - resolution)
	return DyadicInterval{K: floorDiv(rebased.K, int64(1)<<shiftAmt), N: resolution}
}

// FromFloat64 returns the dyadic interval of length 2^-resolution
// containing x. It overflows (and asserts) if x*2^resolution cannot be
// represented as an int64.
func FromFloat64(x float64, resolution int64) DyadicInterval {
	rescaled := math.Ldexp(x, int(resolution))
	must.Truef(math.Abs(rescaled) < math.MaxInt64, "dyadic: %v at resolution %d overflows", x, resolution)
	return DyadicInterval{K: int64(math.Floor(rescaled)), N: resolution}
}

// DyadicBracket returns the unique dyadic interval of length
// 2^-precision containing value.
func DyadicBracket(value float64, precision int64) DyadicInterval {
	return FromFloat64(value, precision)
}

// IncludedEnd is the dyadic number k/2^n: the endpoint the interval
// contains.
func (d DyadicInterval) IncludedEnd() Number { return Number{K: d.K, N: d.N} }

// ExcludedEnd is the dyadic number (k+1)/2^n: the endpoint the interval
// approaches but does not contain.
func (d DyadicInterval) ExcludedEnd() Number { return Number{K: d.K + 1, N: d.N} }

// Inf is the included (left) endpoint, as a float64.
func (d DyadicInterval) Inf() float64 { return d.IncludedEnd().Float64() }

// Sup is the excluded (right) endpoint, as a float64.
func (d DyadicInterval) Sup() float64 { return d.ExcludedEnd().Float64() }

// Aligned reports whether d shares its included endpoint with its parent,
// i.e. whether K is even.
func (d DyadicInterval) Aligned() bool {
	return d.K&1 == 0
}

// Flip toggles d to the sibling interval that shares its parent.
func (d DyadicInterval) Flip() DyadicInterval {
	return DyadicInterval{K: d.K ^ 1, N: d.N}
}

// Parent is the unique dyadic interval at depth N-1 containing d.
func (d DyadicInterval) Parent() DyadicInterval {
	return DyadicInterval{K: d.K >> 1, N: d.N - 1}
}

// LeftChild is the left half of d, at depth N+1.
func (d DyadicInterval) LeftChild() DyadicInterval {
	return DyadicInterval{K: d.K * 2, N: d.N + 1}
}

// RightChild is the right half of d, at depth N+1.
func (d DyadicInterval) RightChild() DyadicInterval {
	return DyadicInterval{K: d.K*2 + 1, N: d.N + 1}
}

// LeftSibling is the adjacent dyadic interval immediately to the left of d,
// at the same depth.
func (d DyadicInterval) LeftSibling() DyadicInterval {
	return DyadicInterval{K: d.K - 1, N: d.N}
}

// RightSibling is the adjacent dyadic interval immediately to the right of
// d, at the same depth.
func (d DyadicInterval) RightSibling() DyadicInterval {
	return DyadicInterval{K: d.K + 1, N: d.N}
}

// ShiftBack translates d left by m cells without changing its length.
func (d DyadicInterval) ShiftBack(m int64) DyadicInterval {
	return DyadicInterval{K: d.K - m, N: d.N}
}

// ShiftForward translates d right by m cells without changing its length.
func (d DyadicInterval) ShiftForward(m int64) DyadicInterval {
	return DyadicInterval{K: d.K + m, N: d.N}
}

// ShrinkToContainedEnd steps d levels deeper toward the included end
// without moving it: the returned interval shares d's included endpoint.
func (d DyadicInterval) ShrinkToContainedEnd(levels int64) DyadicInterval {
	return DyadicInterval{K: shiftLeft(d.K, levels), N: d.N + levels}
}

// ShrinkToOmittedEnd steps one level deeper toward the excluded end: the
// returned interval shares d's excluded endpoint.
func (d DyadicInterval) ShrinkToOmittedEnd() DyadicInterval {
	return d.ShrinkToContainedEnd(1).Flip()
}

// ShrinkLeft steps levels deep without changing the interval's numerical
// inf. For the clopen orientation this is the contained-end shrink.
func (d DyadicInterval) ShrinkLeft(levels int64) DyadicInterval {
	must.Truef(levels >= 0, "dyadic: negative shrink depth %d", levels)
	return d.ShrinkToContainedEnd(levels)
}

// ShrinkRight steps levels deep without changing the interval's numerical
// sup. For the clopen orientation this is the omitted-end shrink, applied
// repeatedly since each level flips which child is adjacent to the
// unchanged sup.
func (d DyadicInterval) ShrinkRight(levels int64) DyadicInterval {
	must.Truef(levels >= 0, "dyadic: negative shrink depth %d", levels)
	result := d
	for i := int64(0); i < levels; i++ {
		result = result.ShrinkToOmittedEnd()
	}
	return result
}

// Expand steps levels levels up: the unique ancestor of d at depth N-levels.
func (d DyadicInterval) Expand(levels int64) DyadicInterval {
	return DyadicInterval{K: d.K >> uint(levels), N: d.N - levels}
}

// Contains reports whether d contains other: other must be at least as
// deep as d, and truncating other's numerator to d's depth must give d's
// numerator.
func (d DyadicInterval) Contains(other DyadicInterval) bool {
	if other.N < d.N {
		return false
	}
	return other.K>>uint(other.N-d.N) == d.K
}

// Equal reports structural equality: (k, n) == (k', n'). Two structurally
// distinct dyadic intervals may still denote the same rational endpoint;
// Equal does not test for that.
func (d DyadicInterval) Equal(other DyadicInterval) bool {
	return d.K == other.K && d.N == other.N
}

// Less implements the total order on dyadic intervals: ascending by
// included-end position, comparing numerators brought to a common depth by
// left-shifting the shallower one. Two intervals that share an included
// end but differ in depth are not equal (Equal is structural); the
// shallower, longer interval sorts first.
func (d DyadicInterval) Less(other DyadicInterval) bool {
	if d.N > other.N {
		return shiftLeft(other.K, d.N-other.N) > d.K
	}
	lhs := shiftLeft(d.K, other.N-d.N)
	if d.N == other.N {
		return other.K > lhs
	}
	return other.K >= lhs
}
