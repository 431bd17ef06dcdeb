package interfaces

import (
	"encoding/json"

	alarms "satellite-monitor/internal/alarms/domain"
	telemetry "satellite-monitor/internal/telemetry/domain"
)

// RenderedAlert is the externally visible alert shape.
type RenderedAlert struct {
	SatelliteID int    `json:"satelliteId"`
	Severity    string `json:"severity"`
	Component   string `json:"component"`
	Timestamp   string `json:"timestamp"`
}

const renderedTimestampLayout = "2006-01-02T15:04:05.000"

// RenderAlerts converts alerts to their output shape. The preserved raw
// timestamp text is re-parsed and rendered at millisecond precision,
// truncated, with a literal Z suffix.
func RenderAlerts(alerts []alarms.Alert) ([]RenderedAlert, error) {
	rendered := make([]RenderedAlert, 0, len(alerts))
	for _, alert := range alerts {
		ts, err := telemetry.ParseTimestamp(alert.Timestamp)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, RenderedAlert{
			SatelliteID: alert.SatelliteID,
			Severity:    string(alert.Severity),
			Component:   string(alert.Component),
			Timestamp:   ts.Format(renderedTimestampLayout) + "Z",
		})
	}
	return rendered, nil
}

// MarshalAlerts renders alerts as an indented JSON array. An empty alert
// set marshals as [], never null.
func MarshalAlerts(alerts []alarms.Alert) ([]byte, error) {
	rendered, err := RenderAlerts(alerts)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(rendered, "", "    ")
}
