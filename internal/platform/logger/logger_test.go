package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"INFO":    Info,
		"":        Info,
		"warning": Warn,
		"error":   Error,
		"nope":    Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v; expected %v", in, got, want)
		}
	}
}

func TestJSONLoggerIncludesBaseFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "pet-hotel-registry", Output: &buf})

	l.With(map[string]any{"component": "registry"}).Info("pet registered", map[string]any{"pet_id": "42"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v (%s)", err, buf.String())
	}
	for k, want := range map[string]string{
		"msg":       "pet registered",
		"app":       "pet-hotel-registry",
		"component": "registry",
		"pet_id":    "42",
	} {
		if entry[k] != want {
			t.Errorf("%s = %v; expected %q", k, entry[k], want)
		}
	}
}

func TestLevelFiltersLowerEntries(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatText, Output: &buf})

	l.Info("hidden", nil)
	l.Warn("shown", nil)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info entry should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn entry missing: %s", out)
	}
}

func TestSlogSharesHandler(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatText, App: "hotel", Output: &buf})

	sl, ok := l.(*SlogLogger)
	if !ok {
		t.Fatalf("New returned %T", l)
	}
	sl.Slog().Info("from slog")

	if out := buf.String(); !strings.Contains(out, "from slog") || !strings.Contains(out, "app=hotel") {
		t.Fatalf("unexpected output: %s", out)
	}
}
