package main

import (
	"fmt"
	"log"
	"os"

	alarmapp "satellite-monitor/internal/alarms/application"
	alarminterfaces "satellite-monitor/internal/alarms/interfaces"
	"satellite-monitor/internal/telemetry/interfaces/telemetryfile"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: satellite-monitor <input_file>")
		os.Exit(1)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	readings, err := telemetryfile.ReadFile(os.Args[1])
	if err != nil {
		logger.Fatalf("read telemetry: %v", err)
	}

	monitor := alarmapp.NewMonitor()
	monitor.IngestAll(readings)

	out, err := alarminterfaces.MarshalAlerts(monitor.Alerts())
	if err != nil {
		logger.Fatalf("render alerts: %v", err)
	}
	fmt.Println(string(out))
}
