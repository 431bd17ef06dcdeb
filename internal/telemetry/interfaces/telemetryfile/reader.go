// Package telemetryfile feeds pipe-delimited telemetry files into the
// record parser, one reading per non-blank line.
package telemetryfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	telemetry "satellite-monitor/internal/telemetry/domain"
)

// Read parses every non-blank line of r in order. A malformed line aborts
// the whole read; there is no skip-and-continue mode.
func Read(r io.Reader) ([]telemetry.Reading, error) {
	var readings []telemetry.Reading
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		reading, err := telemetry.ParseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("telemetry file: line %d: %w", line, err)
		}
		readings = append(readings, reading)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("telemetry file: %w", err)
	}
	return readings, nil
}

// ReadFile reads a telemetry file from disk.
func ReadFile(path string) ([]telemetry.Reading, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
