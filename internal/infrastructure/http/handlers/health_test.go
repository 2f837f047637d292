package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestReadiness_AllHealthy(t *testing.T) {
	h := NewReadinessHandler(map[string]Pinger{
		"data_dir": DirWritable(t.TempDir()),
		"redis":    PingFunc(func(context.Context) error { return nil }),
	})

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)
	require.NoError(t, h.Readiness(c))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp readinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)
	require.Equal(t, "ok", resp.Dependencies["data_dir"].Status)
}

func TestReadiness_Degraded(t *testing.T) {
	h := NewReadinessHandler(map[string]Pinger{
		"data_dir": DirWritable(filepath.Join(t.TempDir(), "missing")),
		"mongodb":  PingFunc(func(context.Context) error { return errors.New("no primary") }),
	})

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)
	require.NoError(t, h.Readiness(c))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp readinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "degraded", resp.Status)
	require.Equal(t, "no primary", resp.Dependencies["mongodb"].Error)
	require.Equal(t, "unhealthy", resp.Dependencies["data_dir"].Status)
}
