package telemetry

import (
	"fmt"
	"strconv"
	"strings"
)

// Record field order for the pipe-delimited telemetry format.
const (
	fieldTimestamp = iota
	fieldSatelliteID
	fieldRedHighLimit
	fieldYellowHighLimit
	fieldYellowLowLimit
	fieldRedLowLimit
	fieldRawValue
	fieldComponent

	recordFieldCount
)

// ParseError reports a malformed telemetry record field.
type ParseError struct {
	Field string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("telemetry record: invalid %s %q", e.Field, e.Value)
}

// ParseRecord parses one pipe-delimited telemetry record into a Reading.
//
// Limit selection is fixed: thermostat readings carry the red-high limit,
// everything else the red-low limit. Unknown component codes parse fine;
// they just never match a violation rule downstream.
func ParseRecord(line string) (Reading, error) {
	fields := strings.Split(strings.TrimSpace(line), "|")
	if len(fields) != recordFieldCount {
		return Reading{}, &ParseError{Field: "record", Value: line}
	}

	ts, err := ParseTimestamp(fields[fieldTimestamp])
	if err != nil {
		return Reading{}, err
	}

	satelliteID, err := strconv.Atoi(fields[fieldSatelliteID])
	if err != nil {
		return Reading{}, &ParseError{Field: "satellite id", Value: fields[fieldSatelliteID]}
	}

	redHigh, err := parseLimit("red high limit", fields[fieldRedHighLimit])
	if err != nil {
		return Reading{}, err
	}
	if _, err := parseLimit("yellow high limit", fields[fieldYellowHighLimit]); err != nil {
		return Reading{}, err
	}
	if _, err := parseLimit("yellow low limit", fields[fieldYellowLowLimit]); err != nil {
		return Reading{}, err
	}
	redLow, err := parseLimit("red low limit", fields[fieldRedLowLimit])
	if err != nil {
		return Reading{}, err
	}
	value, err := parseLimit("raw value", fields[fieldRawValue])
	if err != nil {
		return Reading{}, err
	}

	component := Component(fields[fieldComponent])
	limit := redLow
	if component == ComponentThermostat {
		limit = redHigh
	}

	return Reading{
		Timestamp:    ts,
		SatelliteID:  satelliteID,
		Component:    component,
		Value:        value,
		Limit:        limit,
		RawTimestamp: fields[fieldTimestamp],
	}, nil
}

func parseLimit(name, text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &ParseError{Field: name, Value: text}
	}
	return v, nil
}
