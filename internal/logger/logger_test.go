package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	log := New(zerolog.InfoLevel)
	if log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("level: got %v", log.GetLevel())
	}
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Str("banco", "itau").Msg("extração concluída")

	out := buf.String()
	if !strings.Contains(out, "extração concluída") || !strings.Contains(out, "itau") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestContextRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	ctx := WithContext(context.Background(), log)
	got := FromContext(ctx)
	got.Info().Msg("from context")

	if !strings.Contains(buf.String(), "from context") {
		t.Error("logger from context did not write to the original buffer")
	}
}

func TestFromContextFallback(t *testing.T) {
	log := FromContext(context.Background())
	if log.GetLevel() == zerolog.Disabled {
		t.Error("fallback logger must be enabled")
	}
}
