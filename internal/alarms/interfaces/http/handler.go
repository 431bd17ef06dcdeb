package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	alarmapp "satellite-monitor/internal/alarms/application"
	alarminterfaces "satellite-monitor/internal/alarms/interfaces"
	"satellite-monitor/internal/alarms/notify"
	"satellite-monitor/internal/observability/metrics"
	"satellite-monitor/internal/telemetry/interfaces/telemetryfile"
)

// ScanHandler runs a violation scan over a posted telemetry batch.
//
// Each request is an independent monitoring session: a fresh tracker is
// built per call and nothing is retained afterwards.
type ScanHandler struct {
	notifier notify.Notifier
	logger   *log.Logger
}

// NewScanHandler constructs a scan handler. The notifier is optional.
func NewScanHandler(notifier notify.Notifier, logger *log.Logger) (*ScanHandler, error) {
	if logger == nil {
		logger = log.Default()
	}
	return &ScanHandler{notifier: notifier, logger: logger}, nil
}

// ServeHTTP handles POST /api/v1/telemetry/scan.
func (h *ScanHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	started := time.Now()
	out, err := h.scan(r)
	metrics.ObserveScan(err, time.Since(started))
	if err != nil {
		h.logger.Printf("telemetry scan: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(out)
}

func (h *ScanHandler) scan(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	readings, err := telemetryfile.Read(r.Body)
	if err != nil {
		return nil, err
	}

	monitor := alarmapp.NewMonitor()
	monitor.IngestAll(readings)
	alerts := monitor.Alerts()

	if h.notifier != nil {
		for _, alert := range alerts {
			if err := h.notifier.Notify(r.Context(), alert); err != nil {
				h.logger.Printf("telemetry scan: notify error: %v", err)
			}
		}
	}

	out, err := alarminterfaces.MarshalAlerts(alerts)
	if err != nil {
		return nil, errors.New("telemetry scan: render error")
	}
	return out, nil
}
