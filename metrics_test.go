package colstore

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	mc.RecordIndexBuild("job", 100, 2*time.Millisecond, nil)
	mc.RecordIndexBuild("job", 50, 4*time.Millisecond, errors.New("boom"))
	mc.RecordSelect(10, 4, false, time.Millisecond, nil)
	mc.RecordSelect(0, 0, true, 3*time.Millisecond, nil)
	mc.RecordSelect(0, 0, false, time.Millisecond, errors.New("boom"))

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.IndexBuildCount)
	assert.Equal(t, int64(1), stats.IndexBuildErrors)
	assert.Equal(t, int64(100), stats.IndexBuildRows)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.IndexBuildAvgNanos)
	assert.Equal(t, int64(3), stats.SelectCount)
	assert.Equal(t, int64(1), stats.SelectErrors)
	assert.Equal(t, int64(1), stats.SelectExact)
	assert.Equal(t, int64(10), stats.SelectCandidates)
	assert.Equal(t, int64(4), stats.SelectMatched)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	stats := (&BasicMetricsCollector{}).GetStats()
	assert.Zero(t, stats.IndexBuildAvgNanos)
	assert.Zero(t, stats.SelectAvgNanos)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := context.Background()
	logger.WithColumn("job").LogIndexBuild(ctx, "job", "sparse(8)", 16, time.Millisecond, nil)
	logger.LogSelect(ctx, 2, 10, 3, false, nil)
	logger.LogSelect(ctx, 1, 0, 0, false, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "index build completed")
	assert.Contains(t, out, "index=sparse(8)")
	assert.Contains(t, out, "matched=3")
	assert.Contains(t, out, "select failed")
	assert.Contains(t, out, "error=boom")
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
