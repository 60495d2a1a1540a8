package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"text", "json", "cli"} {
		var buf bytes.Buffer
		logger, err := newLogger(&buf, "debug", format)
		if err != nil {
			t.Fatalf("newLogger(%q): %v", format, err)
		}
		logger.WithField("square", "e4").Info("hello")
		if !strings.Contains(buf.String(), "hello") {
			t.Errorf("%s handler wrote %q", format, buf.String())
		}
	}

	if _, err := newLogger(&bytes.Buffer{}, "loud", "text"); err == nil {
		t.Error("unknown level should fail")
	}
	if _, err := newLogger(&bytes.Buffer{}, "info", "xml"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("CHESSCORE_TEST_VALUE", "")
	if got := envOr("CHESSCORE_TEST_VALUE", "fallback"); got != "fallback" {
		t.Errorf("envOr = %q, want fallback", got)
	}
	t.Setenv("CHESSCORE_TEST_VALUE", "set")
	if got := envOr("CHESSCORE_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("envOr = %q, want set", got)
	}
}
