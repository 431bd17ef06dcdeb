package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	alarms "satellite-monitor/internal/alarms/domain"
	telemetry "satellite-monitor/internal/telemetry/domain"
)

func TestWebhookNotifierPayload(t *testing.T) {
	payloadCh := make(chan webhookPayload, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var payload webhookPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		payloadCh <- payload
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL)
	alert := alarms.Alert{
		SatelliteID: 1000,
		Severity:    alarms.SeverityRedHigh,
		Component:   telemetry.ComponentThermostat,
		Timestamp:   "20180101 23:01:38.001",
	}
	if err := notifier.Notify(context.Background(), alert); err != nil {
		t.Fatalf("notify: %v", err)
	}

	payload := <-payloadCh
	if payload.Alert.SatelliteID != 1000 {
		t.Fatalf("expected satellite 1000, got %d", payload.Alert.SatelliteID)
	}
	if payload.Alert.Severity != "RED HIGH" {
		t.Fatalf("expected RED HIGH, got %q", payload.Alert.Severity)
	}
	if !strings.Contains(payload.Text.Content, "Component: TSTAT") {
		t.Fatalf("expected component in content, got %q", payload.Text.Content)
	}
}

func TestWebhookNotifierNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL)
	err := notifier.Notify(context.Background(), alarms.Alert{})
	if err == nil {
		t.Fatalf("expected error on non-2xx response")
	}
}

func TestMultiNotifierFansOut(t *testing.T) {
	var first, second int
	a := notifierFunc(func(context.Context, alarms.Alert) error { first++; return nil })
	b := notifierFunc(func(context.Context, alarms.Alert) error { second++; return nil })

	multi := NewMultiNotifier(a, nil, b)
	if err := multi.Notify(context.Background(), alarms.Alert{}); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if first != 1 || second != 1 {
		t.Fatalf("expected both notifiers called once, got %d and %d", first, second)
	}
}

type notifierFunc func(ctx context.Context, alert alarms.Alert) error

func (f notifierFunc) Notify(ctx context.Context, alert alarms.Alert) error {
	return f(ctx, alert)
}
