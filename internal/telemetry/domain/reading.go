package telemetry

import "time"

// Component identifies the satellite component a reading belongs to.
type Component string

const (
	ComponentThermostat Component = "TSTAT"
	ComponentBattery    Component = "BATT"
)

// Known reports whether the component has a violation rule defined.
func (c Component) Known() bool {
	switch c {
	case ComponentThermostat, ComponentBattery:
		return true
	default:
		return false
	}
}

// Reading is a single parsed telemetry record.
type Reading struct {
	Timestamp   time.Time
	SatelliteID int
	Component   Component
	Value       float64
	Limit       float64

	// RawTimestamp keeps the record's original timestamp text; alert
	// output is formatted from this text, not from Timestamp.
	RawTimestamp string
}

const (
	timestampLayoutMicros = "20060102 15:04:05.000000"
	timestampLayout       = "20060102 15:04:05"
)

// ParseTimestamp parses a record timestamp, trying the microsecond form
// first and falling back to whole seconds.
func ParseTimestamp(text string) (time.Time, error) {
	ts, err := time.Parse(timestampLayoutMicros, text)
	if err == nil {
		return ts, nil
	}
	ts, err = time.Parse(timestampLayout, text)
	if err != nil {
		return time.Time{}, &ParseError{Field: "timestamp", Value: text}
	}
	return ts, nil
}
