// Command alertserver exposes violation scanning over HTTP: POST a
// pipe-delimited telemetry batch, get the alert array back. Each request
// is its own monitoring session; nothing persists between calls.
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	alarmhttp "satellite-monitor/internal/alarms/interfaces/http"
	"satellite-monitor/internal/alarms/notify"
	"satellite-monitor/internal/auth"
	"satellite-monitor/internal/observability/metrics"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}

	metrics.Init()

	notifiers := []notify.Notifier{notify.NewLogNotifier(logger)}
	if cfg.WebhookURL != "" {
		notifiers = append(notifiers, notify.NewWebhookNotifier(cfg.WebhookURL))
	}
	notifier := notify.NewMultiNotifier(notifiers...)

	scanHandler, err := alarmhttp.NewScanHandler(notifier, logger)
	if err != nil {
		logger.Fatalf("scan handler error: %v", err)
	}

	var scan http.Handler = scanHandler
	if cfg.JWTSecret != "" {
		scan = auth.NewMiddleware([]byte(cfg.JWTSecret)).Wrap(scan)
	} else {
		logger.Printf("warning: ALERTSERVER_JWT_SECRET not set, scan endpoint is unauthenticated")
	}

	mux := http.NewServeMux()
	mux.Handle("/api/v1/telemetry/scan", scan)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           loggingMiddleware(mux, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Printf("alertserver listening on %s", cfg.ListenAddr)
	if err := server.ListenAndServe(); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}

func loggingMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		resp := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(resp, r)
		logger.Printf("http %s %s %d %s", r.Method, r.URL.Path, resp.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
