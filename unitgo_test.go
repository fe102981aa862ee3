package unitgo

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unitgo/catalog"
	"github.com/hupe1980/unitgo/measurement"
	"github.com/hupe1980/unitgo/storage"
)

func TestParseOp(t *testing.T) {
	op, err := ParseOp("MUL")
	require.NoError(t, err)
	assert.Equal(t, OpMul, op)

	_, err = ParseOp("pow")
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestConvert(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}
	eng := New(WithMetricsCollector(metrics))

	q, err := eng.Convert(ctx, 1, "km", "m")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, q.Value())
	assert.Equal(t, "1000 m", eng.Format(q))

	q, err = eng.Convert(ctx, 36, "km/h", "m/s")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, q.Value(), 1e-12)

	q, err = eng.Convert(ctx, 100, "degC", "degF")
	require.NoError(t, err)
	assert.InDelta(t, 212.0, q.Value(), 1e-9)

	_, err = eng.Convert(ctx, 1, "m", "s")
	assert.Equal(t, KindDimensionMismatch, KindOf(err))

	_, err = eng.Convert(ctx, 1, "smoot", "m")
	assert.Equal(t, KindCatalog, KindOf(err))

	stats := metrics.GetStats()
	assert.Equal(t, int64(5), stats.ConversionCount)
	assert.Equal(t, int64(2), stats.ConversionErrors)
	assert.Equal(t, int64(1), stats.ErrorsByKind[KindDimensionMismatch])
	assert.Equal(t, int64(1), stats.ErrorsByKind[KindCatalog])
}

func TestPropagate(t *testing.T) {
	ctx := context.Background()
	var logs bytes.Buffer
	eng := New(
		WithLogger(NewJSONLoggerTo(&logs, slog.LevelDebug)),
		WithPrecision(4),
	)

	a, err := eng.Measurement(10, 0.5, "m")
	require.NoError(t, err)
	b, err := eng.Measurement(20, 1, "m")
	require.NoError(t, err)

	sum, err := eng.Propagate(ctx, OpAdd, a, b)
	require.NoError(t, err)
	assert.Equal(t, "30 ± 1.118 m", eng.FormatMeasurement(sum))
	assert.Contains(t, logs.String(), `"msg":"propagation completed"`)
	assert.Contains(t, logs.String(), `"op":"add"`)
	assert.Contains(t, logs.String(), `"unit":"m"`)

	s, err := eng.Measurement(2, 0.1, "s")
	require.NoError(t, err)
	v, err := eng.Propagate(ctx, OpDiv, a, s)
	require.NoError(t, err)
	assert.Equal(t, "5 ± 0.3536 m/s", eng.FormatMeasurement(v))

	zero, err := eng.Measurement(0, 0.1, "s")
	require.NoError(t, err)
	_, err = eng.Propagate(ctx, OpDiv, a, zero)
	assert.Equal(t, KindDivisionByZero, KindOf(err))
	assert.Contains(t, logs.String(), `"kind":"division_by_zero"`)
	assert.Contains(t, logs.String(), `"op":"div"`)

	_, err = eng.Propagate(ctx, Op("pow"), a, b)
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestConvertLogsContext(t *testing.T) {
	var logs bytes.Buffer
	eng := New(WithLogger(NewJSONLoggerTo(&logs, slog.LevelDebug)))

	_, err := eng.Convert(context.Background(), 1, "km", "m")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"msg":"conversion completed"`)
	assert.Contains(t, logs.String(), `"op":"convert"`)
	assert.Contains(t, logs.String(), `"unit":"m"`)
	assert.Contains(t, logs.String(), `"from":"km"`)

	logs.Reset()
	_, err = eng.Convert(context.Background(), 1, "m", "s")
	require.Error(t, err)
	assert.Contains(t, logs.String(), `"msg":"conversion failed"`)
	assert.Contains(t, logs.String(), `"unit":"s"`)
	assert.Contains(t, logs.String(), `"kind":"dimension_mismatch"`)
}

func TestLinearModel(t *testing.T) {
	eng := New(WithModel(measurement.Linear))
	a, err := eng.Measurement(10, 0.5, "m")
	require.NoError(t, err)
	b, err := eng.Measurement(20, 1, "m")
	require.NoError(t, err)

	sum, err := eng.Propagate(context.Background(), OpSub, a, b)
	require.NoError(t, err)
	assert.Equal(t, -10.0, sum.Value().Value())
	assert.Equal(t, 1.5, sum.Uncertainty())
}

func TestCustomRegistry(t *testing.T) {
	r := catalog.Default().Clone()
	require.NoError(t, r.Load(strings.NewReader("[[units]]\nname='furlong'\nsymbol='fur'\nof='m'\nnum=201168\nden=1000\n"), catalog.TOML))

	eng := New(WithRegistry(r))
	q, err := eng.Convert(context.Background(), 1, "fur", "m")
	require.NoError(t, err)
	assert.InDelta(t, 201.168, q.Value(), 1e-12)
	assert.Same(t, r, eng.Registry())

	assert.Same(t, catalog.Default(), New(WithRegistry(nil)).Registry())
}

func TestLogPoolStats(t *testing.T) {
	var logs bytes.Buffer
	l := NewTextLoggerTo(&logs, slog.LevelDebug).WithOperation("matmul")

	l.LogPoolStats(context.Background(), storage.Stats{Capacity: 4, Active: 1, Peak: 2})
	assert.Contains(t, logs.String(), "storage pool stats")
	assert.Contains(t, logs.String(), "op=matmul")

	l.WithUnit("m").LogPoolStats(context.Background(), storage.Stats{Capacity: 4, Peak: 4, Fallbacks: 3})
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "fallbacks=3")
	assert.Contains(t, logs.String(), "unit=m")
}
