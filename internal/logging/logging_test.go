package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func newTestLogger(verbose, debug bool) (Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Logger{Verbose: verbose, Debug: debug, Out: &out, Err: &errOut}, &out, &errOut
}

func TestLogger_Levels(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name        string
		verbose     bool
		debug       bool
		wantInfo    bool
		wantDebugOn bool
	}{
		{"quiet", false, false, false, false},
		{"verbose", true, false, true, false},
		{"debug", false, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, out, _ := newTestLogger(tt.verbose, tt.debug)
			l.Infof("hello %s", "info")
			l.Debugf("hello %s", "debug")

			if got := strings.Contains(out.String(), "[info] hello info"); got != tt.wantInfo {
				t.Errorf("info shown = %v, want %v (output %q)", got, tt.wantInfo, out.String())
			}
			if got := strings.Contains(out.String(), "[debug] hello debug"); got != tt.wantDebugOn {
				t.Errorf("debug shown = %v, want %v (output %q)", got, tt.wantDebugOn, out.String())
			}
		})
	}
}

func TestLogger_WarningsGoToStderr(t *testing.T) {
	color.NoColor = true

	l, out, errOut := newTestLogger(false, false)
	l.Warnf("disk %d%% full", 90)
	l.WarnfAlways("registry points at %s", "/tmp/x")
	l.Errorf("boom")

	if out.Len() != 0 {
		t.Errorf("expected nothing on stdout, got %q", out.String())
	}
	for _, want := range []string{"[warn] disk 90% full", "Warning: registry points at /tmp/x", "[error] boom"} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("stderr missing %q: %q", want, errOut.String())
		}
	}
}

func TestLogger_ErrorfAndReturn(t *testing.T) {
	color.NoColor = true

	l, _, errOut := newTestLogger(false, false)
	err := l.ErrorfAndReturn("failed to open %s", "db")
	if err == nil || err.Error() != "failed to open db" {
		t.Fatalf("unexpected error: %v", err)
	}
	if errOut.Len() != 0 {
		t.Errorf("non-debug logger should not print, got %q", errOut.String())
	}

	l, _, errOut = newTestLogger(false, true)
	_ = l.ErrorfAndReturn("failed")
	if !strings.Contains(errOut.String(), "[error] failed") {
		t.Errorf("debug logger should print the error, got %q", errOut.String())
	}
}
