// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package dyadic_test

import (
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/rdelib/segments/dyadic"
)

func TestNumberFloat64(t *testing.T) {
	require.Equal(t, 0.5, dyadic.NewNumber(1, 1).Float64())
	require.Equal(t, 0.0, dyadic.NewNumber(0, 0).Float64())
	require.Equal(t, 3.0, dyadic.NewNumber(3, 0).Float64())
	require.Equal(t, -0.25, dyadic.NewNumber(-1, 2).Float64())
}

func TestNumberRebase(t *testing.T) {
	for _, c := range []struct {
		in         dyadic.Number
		resolution int64
		want       dyadic.Number
		ok         bool
	}{
		{dyadic.NewNumber(0, 5), 2, dyadic.NewNumber(0, 2), true},
		{dyadic.NewNumber(1, 0), 3, dyadic.NewNumber(8, 3), true},
		{dyadic.NewNumber(4, 2), 0, dyadic.NewNumber(1, 0), true},
		{dyadic.NewNumber(3, 2), 0, dyadic.NewNumber(3, 2), false},
		{dyadic.NewNumber(6, 2), 1, dyadic.NewNumber(3, 1), true},
	} {
		got, ok := c.in.Rebase(c.resolution)
		require.Equal(t, c.want, got, "rebase %v to %d", c.in, c.resolution)
		require.Equal(t, c.ok, ok, "rebase %v to %d", c.in, c.resolution)
	}
}

func TestRationalEqual(t *testing.T) {
	require.True(t, dyadic.RationalEqual(dyadic.NewNumber(0, 0), dyadic.NewNumber(0, 7)))
	require.True(t, dyadic.RationalEqual(dyadic.NewNumber(1, 0), dyadic.NewNumber(8, 3)))
	require.True(t, dyadic.RationalEqual(dyadic.NewNumber(4, 2), dyadic.NewNumber(1, 0)))
	require.False(t, dyadic.RationalEqual(dyadic.NewNumber(3, 2), dyadic.NewNumber(1, 0)))
	require.False(t, dyadic.RationalEqual(dyadic.NewNumber(1, 0), dyadic.NewNumber(0, 0)))
}

func TestNumberLessTotalOrder(t *testing.T) {
	values := []dyadic.Number{
		dyadic.NewNumber(-3, 1),
		dyadic.NewNumber(0, 0),
		dyadic.NewNumber(1, 3),
		dyadic.NewNumber(1, 0),
		dyadic.NewNumber(8, 3),
		dyadic.NewNumber(5, 2),
	}
	for _, a := range values {
		for _, b := range values {
			lt, gt := a.Less(b), a.Greater(b)
			require.False(t, lt && gt, "%v vs %v", a, b)
			if !dyadic.RationalEqual(a, b) {
				require.True(t, lt || gt, "%v vs %v should be ordered", a, b)
			}
		}
	}
}

func TestNumberLessAgreesWithFloat64(t *testing.T) {
	fz := fuzz.New().NilChance(0).Funcs(func(n *dyadic.Number, c fuzz.Continue) {
		n.K = int64(c.Intn(1 << 16)) - (1 << 15)
		n.N = int64(c.Intn(8))
	})
	for i := 0; i < 500; i++ {
		var a, b dyadic.Number
		fz.Fuzz(&a)
		fz.Fuzz(&b)
		if math.Abs(a.Float64()-b.Float64()) < 1e-12 {
			continue
		}
		require.Equal(t, a.Float64() < b.Float64(), a.Less(b), "%v vs %v", a, b)
	}
}
