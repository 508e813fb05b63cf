// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package dyadic

import (
	"math"
	"math/bits"
)

// maxShrinkDepth bounds how many levels ToDyadicIntervals will shrink a
// candidate block in a single step, so that 1<<d never overflows int64
// even when the block's start index is exactly 0 (which has no finite
// number of trailing zero bits).
const maxShrinkDepth = 62

// ToDyadicIntervals partitions the real interval [inf, sup) into the
// unique maximal adjacent cover of clopen dyadic intervals each of length
// at least 2^-tolerance, ordered left to right. The partition is
// canonical: enlarging either endpoint by less than 2^-tolerance does not
// change the interior cells. The result is empty if no dyadic cell of
// that length fits inside [inf, sup).
func ToDyadicIntervals(inf, sup float64, tolerance int64) []DyadicInterval {
	if sup <= inf {
		return nil
	}

	scale := math.Ldexp(1, int(tolerance))
	lo := FromFloat64(inf, tolerance)
	hi := FromFloat64(sup, tolerance)

	loK := lo.K
	if float64(loK) < inf*scale {
		// inf does not itself sit on a grid line at this resolution; the
		// partition must start at the next one in.
		loK++
	}
	hiK := hi.K

	if loK >= hiK {
		return nil
	}

	var result []DyadicInterval
	for k := loK; k < hiK; {
		d := int64(maxShrinkDepth)
		if k != 0 {
			if tz := int64(bits.TrailingZeros64(uint64(k))); tz < d {
				d = tz
			}
		}
		for d > 0 && k+(int64(1)<<uint(d)) > hiK {
			d--
		}
		result = append(result, DyadicInterval{K: k >> uint(d), N: tolerance - d})
		k += int64(1) << uint(d)
	}
	return result
}
