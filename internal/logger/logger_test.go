package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "info level hides debug", debug: false, wantDebug: false},
		{name: "debug level shows debug", debug: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(Options{Debug: tt.debug, Writer: &buf})

			l.Debug("scanning", "root", "src/pages")
			l.Info("indexed pages", "count", 3)

			out := buf.String()
			if got := strings.Contains(out, "scanning"); got != tt.wantDebug {
				t.Errorf("debug line present = %v, want %v: %s", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "indexed pages") || !strings.Contains(out, "count=3") {
				t.Errorf("expected info line with key/value, got %s", out)
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("dropped")
}
