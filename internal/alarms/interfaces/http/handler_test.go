package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestScanHandlerDetectsCluster(t *testing.T) {
	handler, err := NewScanHandler(nil, nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	body := strings.Join([]string{
		"20240101 00:00:00.000|7|17|15|9|8|7.5|BATT",
		"20240101 00:02:00.000|7|17|15|9|8|7.4|BATT",
		"20240101 00:04:59.000|7|17|15|9|8|7.3|BATT",
	}, "\n")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/telemetry/scan", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var alerts []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &alerts); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0]["severity"] != "RED LOW" {
		t.Fatalf("expected RED LOW, got %v", alerts[0]["severity"])
	}
	if alerts[0]["timestamp"] != "2024-01-01T00:00:00.000Z" {
		t.Fatalf("unexpected timestamp %v", alerts[0]["timestamp"])
	}
}

func TestScanHandlerRejectsMalformedBody(t *testing.T) {
	handler, err := NewScanHandler(nil, nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/telemetry/scan", strings.NewReader("garbage line"))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestScanHandlerMethodNotAllowed(t *testing.T) {
	handler, err := NewScanHandler(nil, nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/telemetry/scan", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.Code)
	}
}
