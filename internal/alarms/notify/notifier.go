package notify

import (
	"context"
	"log"

	alarms "satellite-monitor/internal/alarms/domain"
)

// Notifier delivers detected alerts to an external channel.
type Notifier interface {
	Notify(ctx context.Context, alert alarms.Alert) error
}

// MultiNotifier fans alerts out to several notifiers. Delivery failures
// are independent; the last error wins.
type MultiNotifier struct {
	notifiers []Notifier
}

// NewMultiNotifier constructs a MultiNotifier.
func NewMultiNotifier(notifiers ...Notifier) *MultiNotifier {
	return &MultiNotifier{notifiers: notifiers}
}

// Notify forwards the alert to all notifiers.
func (m *MultiNotifier) Notify(ctx context.Context, alert alarms.Alert) error {
	if m == nil {
		return nil
	}
	var last error
	for _, notifier := range m.notifiers {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, alert); err != nil {
			last = err
		}
	}
	return last
}

// LogNotifier writes alerts to a logger.
type LogNotifier struct {
	logger *log.Logger
}

// NewLogNotifier constructs a LogNotifier.
func NewLogNotifier(logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs the alert.
func (n *LogNotifier) Notify(_ context.Context, alert alarms.Alert) error {
	n.logger.Printf("alert: satellite %d component %s severity %s at %s",
		alert.SatelliteID, alert.Component, alert.Severity, alert.Timestamp)
	return nil
}
