package ui_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/sysgraph/internal/ui"
)

// decodeLines parses one JSON record per line.
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var recs []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		recs = append(recs, rec)
	}
	return recs
}

// The TUI keeps stderr at Error while the log file records everything.
func TestMultiHandler_TerminalAndLogFile(t *testing.T) {
	t.Parallel()

	var stderr, file bytes.Buffer
	logger := slog.New(ui.NewMultiHandler(
		slog.NewTextHandler(&stderr, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewJSONHandler(&file, &slog.HandlerOptions{Level: slog.LevelDebug}),
	))

	logger.Debug("sampler started", "source", "cpu")
	logger.Warn("sample failed", "source", "swap", "error", "no swap configured")
	logger.Error("no samples collected", "monitors", 2)

	assert.NotContains(t, stderr.String(), "sampler started")
	assert.NotContains(t, stderr.String(), "sample failed")
	assert.Contains(t, stderr.String(), "monitors=2")

	recs := decodeLines(t, &file)
	require.Len(t, recs, 3)
	assert.Equal(t, "sampler started", recs[0]["msg"])
	assert.Equal(t, "swap", recs[1]["source"])
	assert.Equal(t, "ERROR", recs[2]["level"])
}

func TestMultiHandler_Enabled(t *testing.T) {
	t.Parallel()

	m := ui.NewMultiHandler(
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	ctx := context.Background()

	assert.False(t, m.Enabled(ctx, slog.LevelInfo))
	assert.True(t, m.Enabled(ctx, slog.LevelWarn))
	assert.True(t, m.Enabled(ctx, slog.LevelError))
	assert.False(t, ui.NewMultiHandler().Enabled(ctx, slog.LevelError))
}

func TestMultiHandler_AttrsAndGroups(t *testing.T) {
	t.Parallel()

	var text, file bytes.Buffer
	m := ui.NewMultiHandler(
		slog.NewTextHandler(&text, nil),
		slog.NewJSONHandler(&file, nil),
	)
	logger := slog.New(m).With("monitor", 1).WithGroup("sample")
	logger.Info("sysgraph.event", "value", 42.5)

	assert.Contains(t, text.String(), "monitor=1")
	assert.Contains(t, text.String(), "sample.value=42.5")

	recs := decodeLines(t, &file)
	require.Len(t, recs, 1)
	assert.InDelta(t, 1.0, recs[0]["monitor"], 1e-9)
	group, ok := recs[0]["sample"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 42.5, group["value"], 1e-9)
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("disk full") }

func TestMultiHandler_JoinsErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ok := slog.NewTextHandler(&buf, nil)
	m := ui.NewMultiHandler(failingHandler{ok}, ok)

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "sample", 0)
	err := m.Handle(context.Background(), rec)
	require.ErrorContains(t, err, "disk full")
	assert.Contains(t, buf.String(), "msg=sample", "healthy handlers still receive the record")
}
