package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLogger_JSONIncludesBaseAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "pet-adoption", Out: &buf}).
		With(Fields{"request_id": "abc"})

	l.Info("request", Fields{"status": 200, "err": errors.New("boom")})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid json line %q: %v", buf.String(), err)
	}
	if entry["app"] != "pet-adoption" || entry["request_id"] != "abc" {
		t.Fatalf("missing base fields: %#v", entry)
	}
	if entry["msg"] != "request" || entry["level"] != "info" {
		t.Fatalf("unexpected msg/level: %#v", entry)
	}
	if entry["err"] != "boom" {
		t.Fatalf("expected error rendered as string, got %#v", entry["err"])
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Out: &buf})

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	l.Warn("shown", nil)

	if strings.Count(buf.String(), "\n") != 1 {
		t.Fatalf("expected one line, got %q", buf.String())
	}
}

func TestLogger_TextIsSorted(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Out: &buf}).(*stdLogger)
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.Debug("hello", Fields{"b": 2, "a": 1})

	want := "a=1 b=2 level=debug msg=hello ts=2026-01-02T03:04:05Z\n"
	if buf.String() != want {
		t.Fatalf("unexpected line:\n got  %q\n want %q", buf.String(), want)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"debug": Debug, "": Info, "WARNING": Warn, "error": Error, "nope": Info}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
