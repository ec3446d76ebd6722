package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/labora-api/pkg/logger"
)

func TestLogger_RespetaNivel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "warn")

	l.Info().Msg("ignorado")
	assert.Empty(t, buf.String(), "info no debe escribirse con nivel warn")

	l.Warn().Str("quote_id", "q1").Msg("visible")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "q1", entry["quote_id"])
}

func TestLogger_CtxAgregaTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "info")

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	l.Ctx(ctx).Info().Msg("con traza")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", entry["trace_id"])
	assert.Equal(t, "00f067aa0ba902b7", entry["span_id"])
}

func TestLogger_CtxSinSpan(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "info")

	l.Ctx(context.Background()).Info().Msg("sin traza")
	assert.NotContains(t, buf.String(), "trace_id")
}

func TestLogger_NivelDesconocidoCaeAInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "verbose")

	l.Debug().Msg("oculto")
	l.Info().Msg("visible")
	assert.NotContains(t, buf.String(), "oculto")
	assert.Contains(t, buf.String(), "visible")
}

func TestLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "info").Component("lifecycle")

	l.Info().Msg("transición")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "lifecycle", entry["component"])
}
