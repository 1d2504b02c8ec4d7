package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tidydown/tidydown/internal/logging"
)

func TestWithLogger_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	ctx := logging.WithLogger(context.Background(), logger)

	if got := logging.FromContext(ctx); got != logger {
		t.Error("FromContext did not return the attached logger")
	}
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	if got := logging.FromContext(context.Background()); got != logging.Default() {
		t.Error("expected default logger for bare context")
	}
}

func TestFromContext_NilContext(t *testing.T) {
	//nolint:staticcheck // Intentionally passing nil to test the fallback
	if got := logging.FromContext(nil); got != logging.Default() {
		t.Error("expected default logger for nil context")
	}
}

func TestWithLogger_NilContext(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	//nolint:staticcheck // Intentionally passing nil to test the fallback
	ctx := logging.WithLogger(nil, logger)

	if got := logging.FromContext(ctx); got != logger {
		t.Error("FromContext did not return the attached logger")
	}
}
