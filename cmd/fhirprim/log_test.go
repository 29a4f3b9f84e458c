package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestLog(t *testing.T) {
	buf := &bytes.Buffer{}
	l := newLog(buf, false)
	l.Info("check", "cases", 2, "failed", 0)
	l.Warn("manifest", "cases", 0)
	l.Debug("hidden")
	want := "msg=check cases=2 failed=0\nlevel=WARN msg=manifest cases=0\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	buf.Reset()
	newLog(buf, true).Debug("shown")
	got := buf.String()
	if !strings.Contains(got, "time=") || !strings.Contains(got, "level=DEBUG msg=shown") {
		t.Errorf("got %q", got)
	}
}
