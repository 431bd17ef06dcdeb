package alarms

import (
	telemetry "satellite-monitor/internal/telemetry/domain"
)

// Severity labels carried on emitted alerts.
type Severity string

const (
	SeverityRedHigh Severity = "RED HIGH"
	SeverityRedLow  Severity = "RED LOW"
)

type Operator string

const (
	OperatorGreater Operator = ">"
	OperatorLess    Operator = "<"
)

// Violates applies the operator to a reading value and its limit. Both
// comparisons are strict: a value exactly at the limit never violates.
func (o Operator) Violates(value, limit float64) bool {
	switch o {
	case OperatorGreater:
		return value > limit
	case OperatorLess:
		return value < limit
	default:
		return false
	}
}

// Rule is the violation predicate and severity for one component kind.
type Rule struct {
	Severity Severity
	Operator Operator
}

// RuleFor returns the violation rule for a component kind. The mapping is
// fixed: thermostats alert above red-high, batteries below red-low. Other
// component codes have no rule and ok is false.
func RuleFor(c telemetry.Component) (Rule, bool) {
	switch c {
	case telemetry.ComponentThermostat:
		return Rule{Severity: SeverityRedHigh, Operator: OperatorGreater}, true
	case telemetry.ComponentBattery:
		return Rule{Severity: SeverityRedLow, Operator: OperatorLess}, true
	default:
		return Rule{}, false
	}
}
