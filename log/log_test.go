// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package log_test

import (
	"testing"

	"github.com/rdelib/segments/log"
)

type testOutputter struct {
	level    log.Level
	messages map[log.Level][]string
}

func newTestOutputter(level log.Level) *testOutputter {
	return &testOutputter{level, make(map[log.Level][]string)}
}

func (t *testOutputter) Empty() bool {
	for _, m := range t.messages {
		if len(m) != 0 {
			return false
		}
	}
	return true
}

func (t *testOutputter) Next(level log.Level) string {
	if len(t.messages[level]) == 0 {
		return ""
	}
	var m string
	m, t.messages[level] = t.messages[level][0], t.messages[level][1:]
	return m
}

func (t *testOutputter) Level() log.Level {
	return t.level
}

func (t *testOutputter) Output(calldepth int, level log.Level, s string) error {
	t.messages[level] = append(t.messages[level], s)
	return nil
}

// TestLog exercises the shape of segment.Index's own logging: a
// Debug-level Printf call that should be dropped when the outputter
// is only accepting Info and above.
func TestLog(t *testing.T) {
	out := newTestOutputter(log.Info)
	defer log.SetOutputter(log.SetOutputter(out))

	log.Error.Printf("index: split %v at %v into %d/%d", "[0,10)", 5.0, 3, 4)
	if got, want := out.Next(log.Error), "index: split [0,10) at 5 into 3/4"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	log.Debug.Printf("dropped because the outputter only accepts Info and above")
	if got, want := out.Next(log.Debug), ""; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !out.Empty() {
		t.Error("extra messages")
	}
}

func TestLevelString(t *testing.T) {
	for level, want := range map[log.Level]string{
		log.Off:   "off",
		log.Error: "error",
		log.Info:  "info",
		log.Debug: "debug",
	} {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", int(level), got, want)
		}
	}
}

func TestPanic(t *testing.T) {
	out := newTestOutputter(log.Debug)
	defer log.SetOutputter(log.SetOutputter(out))

	defer func() {
		r := recover()
		if r != "segment: bad base interval" {
			t.Errorf("recover() = %v, want %q", r, "segment: bad base interval")
		}
		if got, want := out.Next(log.Error), "segment: bad base interval"; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}()
	log.Panic("segment: bad base interval")
}
