package application

import (
	"sort"
	"time"

	alarms "satellite-monitor/internal/alarms/domain"
	"satellite-monitor/internal/observability/metrics"
	telemetry "satellite-monitor/internal/telemetry/domain"
)

// clusterWindow and clusterSize are fixed by the alerting contract: three
// violating readings whose outer pair lies within five minutes.
const (
	clusterWindow = 5 * time.Minute
	clusterSize   = 3
)

type historyKey struct {
	satelliteID int
	component   telemetry.Component
}

// Monitor accumulates telemetry readings per (satellite, component) pair
// and raises deduplicated alerts for qualifying violation clusters.
//
// A Monitor is a single monitoring session: history grows for its whole
// lifetime and alerts are only ever appended. It is not safe for
// concurrent use; callers ingest one reading at a time.
type Monitor struct {
	history map[historyKey][]telemetry.Reading
	alerts  []alarms.Alert
	seen    map[alarms.Alert]struct{}
}

// NewMonitor constructs an empty monitoring session.
func NewMonitor() *Monitor {
	return &Monitor{
		history: make(map[historyKey][]telemetry.Reading),
		seen:    make(map[alarms.Alert]struct{}),
	}
}

// Ingest records one reading and evaluates its key for a violation
// cluster. Readings for components without a rule are recorded but never
// alert. Ingest never fails for a parsed Reading.
func (m *Monitor) Ingest(r telemetry.Reading) {
	key := historyKey{satelliteID: r.SatelliteID, component: r.Component}
	m.history[key] = append(m.history[key], r)
	metrics.ReadingIngested(string(r.Component))

	rule, ok := alarms.RuleFor(r.Component)
	if !ok {
		return
	}
	m.evaluate(key, rule)
}

// IngestAll feeds readings in order.
func (m *Monitor) IngestAll(readings []telemetry.Reading) {
	for _, r := range readings {
		m.Ingest(r)
	}
}

func (m *Monitor) evaluate(key historyKey, rule alarms.Rule) {
	var violating []telemetry.Reading
	for _, r := range m.history[key] {
		if rule.Operator.Violates(r.Value, r.Limit) {
			violating = append(violating, r)
		}
	}
	if len(violating) < clusterSize {
		return
	}

	// Input is assumed chronological, but re-sort so late arrivals
	// cannot break the outer-pair window check.
	sort.SliceStable(violating, func(i, j int) bool {
		return violating[i].Timestamp.Before(violating[j].Timestamp)
	})

	for i := 0; i+clusterSize-1 < len(violating); i++ {
		first := violating[i]
		last := violating[i+clusterSize-1]
		if last.Timestamp.Sub(first.Timestamp) > clusterWindow {
			continue
		}
		// The middle reading is inside the window by ordering, so the
		// outer pair decides. Only the earliest-starting cluster is
		// reported per evaluation.
		m.raise(alarms.Alert{
			SatelliteID: key.satelliteID,
			Severity:    rule.Severity,
			Component:   key.component,
			Timestamp:   first.RawTimestamp,
		})
		return
	}
}

func (m *Monitor) raise(alert alarms.Alert) {
	if _, dup := m.seen[alert]; dup {
		metrics.AlertSuppressed(string(alert.Severity))
		return
	}
	m.seen[alert] = struct{}{}
	m.alerts = append(m.alerts, alert)
	metrics.AlertRaised(string(alert.Severity))
}

// Alerts returns the emitted alerts in detection order.
func (m *Monitor) Alerts() []alarms.Alert {
	out := make([]alarms.Alert, len(m.alerts))
	copy(out, m.alerts)
	return out
}
