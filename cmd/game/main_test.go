package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger_JSONWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, false).Info().Str("difficulty", "EASY").Msg("deal")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected a JSON line, got %q: %v", buf.String(), err)
	}
	if line["difficulty"] != "EASY" || line["message"] != "deal" {
		t.Fatalf("unexpected fields %v", line)
	}
}

func TestNewLogger_ConsoleOnTerminal(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, true).Info().Str("difficulty", "EASY").Msg("deal")

	out := buf.String()
	if strings.HasPrefix(out, "{") {
		t.Fatalf("expected console output, got JSON %q", out)
	}
	if !strings.Contains(out, "deal") || !strings.Contains(out, "EASY") {
		t.Fatalf("expected message and field in %q", out)
	}
}
