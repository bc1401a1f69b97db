package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hemolink/api/internal/http/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthRouter(h *handlers.HealthHandler) *gin.Engine {
	r := gin.New()
	r.GET("/api/", h.Root)
	r.GET("/api/health", h.Health)
	r.GET("/api/readyz", h.Readyz)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRoot(t *testing.T) {
	w := get(newHealthRouter(handlers.NewHealthHandler(nil, nil)), "/api/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"HemoLink API running","status":"ok"}`, w.Body.String())
}

func TestHealth_FixedClock(t *testing.T) {
	local := time.Date(2026, 3, 1, 14, 30, 0, 500, time.FixedZone("UTC+5", 5*60*60))
	h := handlers.NewHealthHandler(nil, func() time.Time { return local })

	w := get(newHealthRouter(h), "/api/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","time":"2026-03-01T09:30:00.0000005Z"}`, w.Body.String())
}

func TestHealth_TimestampsAreUTCAndNonDecreasing(t *testing.T) {
	r := newHealthRouter(handlers.NewHealthHandler(nil, nil))

	var prev time.Time
	for i := 0; i < 5; i++ {
		w := get(r, "/api/health")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Status string `json:"status"`
			Time   string `json:"time"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body.Status)

		ts, err := time.Parse(time.RFC3339Nano, body.Time)
		require.NoError(t, err)
		_, offset := ts.Zone()
		assert.Zero(t, offset)
		assert.False(t, ts.Before(prev), "timestamps went backwards")
		prev = ts
	}
}

func TestHealth_IgnoresDatabase(t *testing.T) {
	down := func(context.Context) error { return errors.New("down") }

	w := get(newHealthRouter(handlers.NewHealthHandler(down, nil)), "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadyz(t *testing.T) {
	tests := []struct {
		name string
		ping func(context.Context) error
		want int
	}{
		{name: "no database", ping: nil, want: http.StatusOK},
		{name: "database up", ping: func(context.Context) error { return nil }, want: http.StatusOK},
		{name: "database down", ping: func(context.Context) error { return errors.New("dial tcp: refused") }, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(newHealthRouter(handlers.NewHealthHandler(tt.ping, nil)), "/api/readyz")
			assert.Equal(t, tt.want, w.Code, "body=%s", w.Body.String())
		})
	}
}
