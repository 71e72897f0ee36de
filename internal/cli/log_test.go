package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	p := newProgress(logger)
	p.done("Analyzed 441 points")

	out := buf.String()
	if !strings.Contains(out, "Analyzed 441 points") {
		t.Errorf("done() output = %q, missing message", out)
	}
	if !strings.Contains(out, "(") || !strings.Contains(out, ")") {
		t.Errorf("done() output = %q, missing elapsed duration", out)
	}
}
