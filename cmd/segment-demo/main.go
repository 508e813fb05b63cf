// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Command segment-demo runs the dyadic segmentation search over a base
// interval and a handful of built-in example predicates, printing the
// resulting regions. It exists to exercise the segment package end to end
// from the command line.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rdelib/segments/dyadic"
	"github.com/rdelib/segments/log"
	"github.com/rdelib/segments/segment"
)

var predicates = map[string]segment.Predicate{
	"true": func(dyadic.Interval) bool { return true },
	"false": func(dyadic.Interval) bool { return false },
	"middle-half": func(i dyadic.Interval) bool {
		return i.Inf >= 0.25 && i.Sup <= 0.75
	},
	"pi-to-2pi": func(i dyadic.Interval) bool {
		return math.Pi <= i.Inf && i.Sup <= 2*math.Pi
	},
}

func predicateNames() string {
	names := make([]string, 0, len(predicates))
	for name := range predicates {
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func main() {
	log.AddFlags()
	log.SetFlags(0)
	log.SetPrefix("segment-demo: ")

	inf := flag.Float64("inf", 0, "included end of the base interval")
	sup := flag.Float64("sup", 1, "excluded end of the base interval")
	signalTolerance := flag.Int64("signal-tolerance", 10, "coarsest search depth")
	trimTolerance := flag.Int64("trim-tolerance", 10, "finest refinement depth")
	predicateName := flag.String("predicate", "middle-half", "built-in predicate to segment with: "+predicateNames())

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `usage: segment-demo [flags]

segment-demo partitions [-inf, -sup) under one of a handful of built-in
predicates (-predicate) and prints the resulting dyadic-aligned regions.
`)
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	predicate, ok := predicates[*predicateName]
	if !ok {
		log.Fatalf("unknown predicate %q (want one of: %s)", *predicateName, predicateNames())
	}

	base := dyadic.NewInterval(*inf, *sup)
	results, err := segment.Segment(base, predicate, *signalTolerance, *trimTolerance)
	if err != nil {
		log.Fatalf("segment: %v", err)
	}

	fmt.Printf("segmenting [%v, %v) with %q (signal=%d, trim=%d):\n", base.Inf, base.Sup, *predicateName, *signalTolerance, *trimTolerance)
	if len(results) == 0 {
		fmt.Println("  (no regions found)")
		return
	}
	for _, r := range results {
		fmt.Printf("  [%v, %v)\n", r.Inf, r.Sup)
	}
}
