package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	alarms "satellite-monitor/internal/alarms/domain"
)

// WebhookNotifier posts alerts to a webhook URL.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

type webhookPayload struct {
	MsgType string      `json:"msgtype"`
	Text    webhookText `json:"text"`
	Alert   alertBody   `json:"alert"`
}

type webhookText struct {
	Content string `json:"content"`
}

type alertBody struct {
	SatelliteID int    `json:"satelliteId"`
	Severity    string `json:"severity"`
	Component   string `json:"component"`
	Timestamp   string `json:"timestamp"`
}

// NewWebhookNotifier constructs a notifier.
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Notify posts one alert to the webhook.
func (n *WebhookNotifier) Notify(ctx context.Context, alert alarms.Alert) error {
	if n == nil || n.url == "" {
		return errors.New("webhook notifier: empty url")
	}
	payload := webhookPayload{
		MsgType: "text",
		Text:    webhookText{Content: formatAlertContent(alert)},
		Alert: alertBody{
			SatelliteID: alert.SatelliteID,
			Severity:    string(alert.Severity),
			Component:   string(alert.Component),
			Timestamp:   alert.Timestamp,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return errors.New("webhook notifier: non-2xx")
	}
	return nil
}

func formatAlertContent(alert alarms.Alert) string {
	var b strings.Builder
	b.WriteString("[Satellite Alert]\n")
	fmt.Fprintf(&b, "Satellite: %d\n", alert.SatelliteID)
	fmt.Fprintf(&b, "Component: %s\n", alert.Component)
	fmt.Fprintf(&b, "Severity: %s\n", alert.Severity)
	fmt.Fprintf(&b, "Timestamp: %s\n", alert.Timestamp)
	return b.String()
}
