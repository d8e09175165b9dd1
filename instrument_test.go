package writer

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/hupe1980/writer/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestInstrument(t *testing.T) {
	t.Run("KeepsValueAndLog", func(t *testing.T) {
		w := Chain(halve(16), halve)

		assertSameRun(t, w, Instrument(w))
	})

	t.Run("RecordsRuns", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}
		w := Instrument(Chain(halve(16), halve), WithMetricsCollector(metrics))

		w.Run()
		w.Run()

		stats := metrics.GetStats()
		assert.Equal(t, int64(2), stats.RunCount)
		assert.Equal(t, int64(0), stats.RunErrors)
		assert.GreaterOrEqual(t, stats.RunAvgNanos, int64(0))
	})

	t.Run("LogsRuns", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		Instrument(halve(4), WithName("halve"), WithLogger(logger)).Run()

		out := buf.String()
		assert.Contains(t, out, "writer run completed")
		assert.Contains(t, out, "name=halve")
	})

	t.Run("RecordsAndRepanics", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}
		var buf bytes.Buffer
		logger := NewLogger(slog.NewJSONHandler(&buf, nil))

		w := Instrument(
			Map(halve(4), func(int) int { panic("boom") }),
			WithMetricsCollector(metrics),
			WithLogger(logger),
		)

		assert.PanicsWithValue(t, "boom", func() { w.Run() })

		stats := metrics.GetStats()
		assert.Equal(t, int64(1), stats.RunCount)
		assert.Equal(t, int64(1), stats.RunErrors)
		assert.Contains(t, buf.String(), "writer run failed")

		_, _, err := w.TryRun()
		assert.ErrorIs(t, err, ErrPanicked)
	})

	t.Run("NilOptions", func(t *testing.T) {
		w := Instrument(Of(1, testutil.Sum(0)), nil, WithLogger(nil), WithMetricsCollector(nil), WithName(""))

		assert.Equal(t, 1, w.Value())
	})
}

func TestApplyOptions(t *testing.T) {
	o := applyOptions(nil)
	assert.Equal(t, defaultName, o.name)
	assert.NotNil(t, o.logger)
	assert.Equal(t, NoopMetricsCollector{}, o.metricsCollector)

	o = applyOptions([]Option{WithName("pipeline"), WithLogLevel(slog.LevelWarn)})
	assert.Equal(t, "pipeline", o.name)
	assert.NotNil(t, o.logger)
}

func TestConcurrentRun(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	w := Instrument(Sequence(halve(64), halve(32), halve(16)), WithMetricsCollector(metrics))
	wantV, wantL := w.Run()

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			v, l, err := w.TryRun()
			if err != nil {
				return err
			}
			assert.Equal(t, wantV, v)
			assert.Equal(t, wantL, l)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(17), metrics.GetStats().RunCount)
}
