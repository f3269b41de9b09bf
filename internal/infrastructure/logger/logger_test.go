package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-offer-aggregator/internal/domain"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	return result
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test-service"}, &buf)

	log.Info().Msg("test message")

	result := decodeLine(t, &buf)
	assert.Equal(t, "info", result["level"])
	assert.Equal(t, "test message", result["message"])
	assert.Equal(t, "test-service", result["service"])
	assert.NotEmpty(t, result["time"])
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console", ServiceName: "test-service"}, &buf)

	log.Info().Msg("test message")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "INF")
}

func TestNewLogger_LogLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logged at debug level", "debug", "debug", true},
		{"debug NOT logged at info level", "info", "debug", false},
		{"warn logged at info level", "info", "warn", true},
		{"info NOT logged at warn level", "warn", "info", false},
		{"warn NOT logged at error level", "error", "warn", false},
		{"invalid level falls back to info", "loud", "info", true},
		{"empty level falls back to info", "", "debug", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithOutput(Config{Level: tt.configLevel, Format: "json"}, &buf)

			switch tt.logLevel {
			case "debug":
				log.Debug().Msg("test")
			case "info":
				log.Info().Msg("test")
			case "warn":
				log.Warn().Msg("test")
			}

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String(), "expected log output")
			} else {
				assert.Empty(t, buf.String(), "expected no log output")
			}
		})
	}
}

func TestLogger_WithCaller(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", EnableCaller: true}, &buf)

	log.Info().Msg("test")

	assert.Contains(t, decodeLine(t, &buf), "caller")
}

func TestLogger_ContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithOutput(Config{Level: "info", Format: "json"}, &buf)

	base.WithRequestID("req-1").WithProvider("amadeus").Info().Msg("test")

	result := decodeLine(t, &buf)
	assert.Equal(t, "req-1", result["request_id"])
	assert.Equal(t, "amadeus", result["provider"])
}

func TestLogger_WithSearch(t *testing.T) {
	ret := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)
	req := domain.SearchRequest{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
		Adults:        2,
	}

	t.Run("one way", func(t *testing.T) {
		var buf bytes.Buffer
		NewWithOutput(Config{Level: "info"}, &buf).WithSearch(req).Info().Msg("search")

		result := decodeLine(t, &buf)
		assert.Equal(t, "JFK", result["origin"])
		assert.Equal(t, "LAX", result["destination"])
		assert.Equal(t, "2025-12-15", result["departure_date"])
		assert.Equal(t, float64(2), result["adults"])
		assert.NotContains(t, result, "return_date")
	})

	t.Run("round trip", func(t *testing.T) {
		var buf bytes.Buffer
		rt := req
		rt.ReturnDate = &ret
		NewWithOutput(Config{Level: "info"}, &buf).WithSearch(rt).Info().Msg("search")

		assert.Equal(t, "2025-12-20", decodeLine(t, &buf)["return_date"])
	})
}

func TestLogger_Attach(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info"}, &buf).WithRequestID("req-9")

	ctx := log.Attach(context.Background())
	zerolog.Ctx(ctx).Info().Msg("from context")

	assert.Equal(t, "req-9", decodeLine(t, &buf)["request_id"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Info().Msg("discarded")
	})
	assert.Equal(t, "flight-offer-aggregator", DefaultConfig().ServiceName)
}
