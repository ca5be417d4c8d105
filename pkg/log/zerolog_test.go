package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf))

	z.Info("range done",
		String("range", "[0,4)"),
		Int("worker", 3),
		Bool("clamped", true),
		Duration("elapsed", time.Second),
		Err(errors.New("boom")),
		Any("sizes", []int{1, 2}),
	)

	out := buf.String()
	for _, want := range []string{
		`"message":"range done"`,
		`"range":"[0,4)"`,
		`"worker":3`,
		`"clamped":true`,
		`"error":"boom"`,
		`"sizes":[1,2]`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestZerologAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	z.Debug("hidden")
	z.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	z.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected warn output, got %q", buf.String())
	}
}
