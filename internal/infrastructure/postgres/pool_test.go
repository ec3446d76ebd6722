package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryLogger_CamposDeConsulta(t *testing.T) {
	var buf bytes.Buffer
	l := queryLogger(zerolog.New(&buf))

	l.Log(context.Background(), tracelog.LogLevelWarn, "Query", map[string]any{
		"sql":  "SELECT 1",
		"time": 15 * time.Millisecond,
		"pid":  uint32(42),
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "Query", entry["message"])
	assert.Equal(t, "SELECT 1", entry["sql"])
	assert.InDelta(t, 15.0, entry["duration"], 0.001, "duración en ms")
	assert.EqualValues(t, 42, entry["pid"])
}

func TestQueryLogger_RespetaNivelDelLogger(t *testing.T) {
	var buf bytes.Buffer
	l := queryLogger(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	l.Log(context.Background(), tracelog.LogLevelInfo, "Query", map[string]any{"sql": "SELECT 1"})
	assert.Empty(t, buf.String())
}

func TestZerologLevel(t *testing.T) {
	assert.Equal(t, zerolog.ErrorLevel, zerologLevel(tracelog.LogLevelError))
	assert.Equal(t, zerolog.DebugLevel, zerologLevel(tracelog.LogLevelDebug))
	assert.Equal(t, zerolog.NoLevel, zerologLevel(tracelog.LogLevelNone))
}
