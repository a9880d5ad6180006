package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	logger.InfoContext(context.Background(), "import finished", "players_created", 3, "error", errors.New("boom"))
	require.NoError(t, logger.Sync())

	var line map[string]any
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "import finished", line["msg"])
	assert.Equal(t, "info", line["level"])
	assert.EqualValues(t, 3, line["players_created"])
	assert.Equal(t, "boom", line["error"])
	assert.NotContains(t, line, "trace_id")
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelWarn)

	logger.Info("dropped")
	logger.Debug("dropped too")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), `"kept"`)
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() {
		logger.Info("no-op")
		logger.With("k", "v").Warn("still no-op")
	})
}

func TestZapFields_OddArgs(t *testing.T) {
	fields := zapFields([]any{"a", 1, "dangling"})
	require.Len(t, fields, 2)
	assert.Equal(t, "dangling", fields[1].Key)

	fields = zapFields([]any{42, "value"})
	require.Len(t, fields, 1)
	assert.Equal(t, "arg", fields[0].Key)
}

func TestLogger_MirrorReceivesWrittenEntries(t *testing.T) {
	var got []string
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		got = append(got, level.String()+":"+msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)
	logger.Debug("filtered by level")
	logger.Warn("database circuit state changed", "from", "closed", "to", "open")

	assert.Equal(t, []string{"warn:database circuit state changed"}, got)
}
