// Command alertreport runs a violation scan over a telemetry file and
// writes the alert set as a JSON, XLSX or PDF report.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	alarmapp "satellite-monitor/internal/alarms/application"
	alarminterfaces "satellite-monitor/internal/alarms/interfaces"
	"satellite-monitor/internal/telemetry/interfaces/telemetryfile"
)

func main() {
	var (
		format = flag.String("format", "json", "report format: json, xlsx or pdf")
		out    = flag.String("out", "", "output path (default stdout for json)")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: alertreport [-format json|xlsx|pdf] [-out path] <input_file>")
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *format, *out); err != nil {
		fmt.Fprintf(os.Stderr, "alertreport: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, format, outPath string) error {
	readings, err := telemetryfile.ReadFile(inputPath)
	if err != nil {
		return err
	}

	monitor := alarmapp.NewMonitor()
	monitor.IngestAll(readings)
	alerts := monitor.Alerts()

	var report []byte
	switch format {
	case "json":
		report, err = alarminterfaces.MarshalAlerts(alerts)
	case "xlsx":
		report, err = alarminterfaces.BuildAlertReportXLSX(alerts, time.Now().UTC())
	case "pdf":
		report, err = alarminterfaces.BuildAlertReportPDF(alerts, time.Now().UTC())
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}

	if outPath == "" {
		if format != "json" {
			return fmt.Errorf("-out is required for %s reports", format)
		}
		fmt.Println(string(report))
		return nil
	}
	return os.WriteFile(outPath, report, 0o644)
}
