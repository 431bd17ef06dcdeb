package alarms

import (
	telemetry "satellite-monitor/internal/telemetry/domain"
)

// Alert is a clustered threshold violation for one satellite component.
//
// Timestamp holds the original text of the first violating reading in the
// triggering cluster. Identity for deduplication is the full 4-tuple, so
// the struct stays comparable.
type Alert struct {
	SatelliteID int
	Severity    Severity
	Component   telemetry.Component
	Timestamp   string
}
