package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestLogger_WritesOneLinePerRequest(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(RequestLogger(zerolog.New(&buf)))
	e.GET("/companies", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"companies": []any{}})
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "company not found: x")
	})

	for _, path := range []string{"/companies", "/boom"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(echo.HeaderXRequestID, "rid-"+path)
		e.ServeHTTP(httptest.NewRecorder(), req)
	}

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("want 2 log lines, got %d: %s", len(lines), buf.String())
	}

	var first, second map[string]any
	if err := json.Unmarshal(lines[0], &first); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if err := json.Unmarshal(lines[1], &second); err != nil {
		t.Fatalf("bad json: %v", err)
	}

	if first["level"] != "info" || first["uri"] != "/companies" || first["status"] != float64(200) {
		t.Fatalf("unexpected first line: %v", first)
	}
	if first["request_id"] != "rid-/companies" {
		t.Fatalf("request id not logged: %v", first)
	}
	if second["level"] != "warn" || second["status"] != float64(404) || second["error"] == nil {
		t.Fatalf("unexpected second line: %v", second)
	}
}
