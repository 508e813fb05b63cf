// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package must provides fatal assertions for the conditions that the
// dyadic and segment packages treat as programmer error rather than
// caller-reportable failure: int64 overflow in dyadic arithmetic, and
// invariant violations while searching. It is not meant for validating
// caller input — see the errors package for that.
package must

import (
	"fmt"

	"github.com/rdelib/segments/log"
)

// Func is the function called to report an error and interrupt
// execution. Func defaults to log.Panic. It
// should be set before any potential calls to functions in the
// must package.
var Func func(...interface{}) = log.Panic

// Nil asserts that v is nil; v is typically a value of type error.
// If v is not nil, Nil formats a message in the manner of fmt.Sprint
// and calls must.Func. Nil also suffixes the message with the
// fmt.Sprint-formatted value of v.
func Nil(v interface{}, args ...interface{}) {
	if v == nil {
		return
	}
	if len(args) == 0 {
		Func(v)
		return
	}
	Func(fmt.Sprint(args...), ": ", v)
}

// True is a no-op if the value b is true. If it is false, True
// formats a message in the manner of fmt.Sprint and calls Func.
func True(b bool, v ...interface{}) {
	if b {
		return
	}
	if len(v) == 0 {
		Func("must: assertion failed")
		return
	}
	Func(v...)
}

// Truef is a no-op if the value x is true. If it is false, Truef
// formats a message in the manner of fmt.Sprintf and calls Func.
//
// This is the form actually exercised outside this package's own test:
// dyadic.shiftLeft and dyadic.FromFloat64 use it to guard against int64
// overflow in dyadic rational arithmetic, dyadic.ShrinkLeft/ShrinkRight
// use it to reject a negative shrink depth, and
// segment.(*searcher).nextCandidate uses it to guard the seen-set
// candidate shift.
func Truef(x bool, format string, v ...interface{}) {
	if x {
		return
	}
	Func(fmt.Sprintf(format, v...))
}
