// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tamzrod/tristar-monitor/internal/rollup"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	m := cfg.Monitor

	if m.Poll.IntervalMs <= 0 {
		return fmt.Errorf("poll.interval_ms must be > 0, got %d", m.Poll.IntervalMs)
	}

	// ------------------------------------------------------------
	// SOURCE
	// ------------------------------------------------------------

	s := m.Source
	switch strings.ToLower(s.Transport) {
	case "rtu":
		if s.Device == "" {
			return fmt.Errorf("source.device is required for rtu transport")
		}
		switch strings.ToUpper(s.Parity) {
		case "N", "E", "O":
		default:
			return fmt.Errorf("source.parity must be one of N, E, O, got %q", s.Parity)
		}
		if s.DataBits < 5 || s.DataBits > 8 {
			return fmt.Errorf("source.data_bits must be 5..8, got %d", s.DataBits)
		}
		if s.StopBits != 1 && s.StopBits != 2 {
			return fmt.Errorf("source.stop_bits must be 1 or 2, got %d", s.StopBits)
		}
		if s.BaudRate <= 0 {
			return fmt.Errorf("source.baud_rate must be > 0, got %d", s.BaudRate)
		}
	case "tcp":
		if s.Endpoint == "" {
			return fmt.Errorf("source.endpoint is required for tcp transport")
		}
	default:
		return fmt.Errorf("source.transport must be rtu or tcp, got %q", s.Transport)
	}
	if s.TimeoutMs < 0 {
		return fmt.Errorf("source.timeout_ms must be >= 0, got %d", s.TimeoutMs)
	}

	if m.Filter.CurrentThreshold <= 0 {
		return fmt.Errorf("filter.current_threshold must be > 0, got %v", m.Filter.CurrentThreshold)
	}

	// ------------------------------------------------------------
	// SINKS (each opt-in)
	// ------------------------------------------------------------

	if t := m.Telemetry; t.Enabled {
		u, err := url.Parse(t.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("telemetry.base_url must be an absolute URL, got %q", t.BaseURL)
		}
		if len(t.Metrics) == 0 {
			return fmt.Errorf("telemetry is enabled but no metrics are defined")
		}
		seen := make(map[int]string)
		for _, mc := range t.Metrics {
			if mc.Metric == "" {
				return fmt.Errorf("telemetry metric with idx %d has no name", mc.Idx)
			}
			if mc.Idx <= 0 {
				return fmt.Errorf("telemetry metric %q: idx must be > 0", mc.Metric)
			}
			if prev, ok := seen[mc.Idx]; ok {
				return fmt.Errorf("telemetry idx collision: idx=%d used by %q and %q", mc.Idx, prev, mc.Metric)
			}
			seen[mc.Idx] = mc.Metric
		}
	}

	if m.SampleLog.Enabled && m.SampleLog.Path == "" {
		return fmt.Errorf("sample_log is enabled but path is empty")
	}
	if m.DailyLog.Enabled {
		if m.DailyLog.Path == "" {
			return fmt.Errorf("daily_log is enabled but path is empty")
		}
		if m.SampleLog.Enabled && m.DailyLog.Path == m.SampleLog.Path {
			return fmt.Errorf("daily_log.path and sample_log.path must differ")
		}
	}
	if _, err := rollup.ParseCutoff(m.DailyLog.At); err != nil {
		return fmt.Errorf("daily_log.at: %w", err)
	}
	if m.History.Enabled && m.History.Path == "" {
		return fmt.Errorf("history is enabled but path is empty")
	}

	switch strings.ToLower(m.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", m.Log.Level)
	}

	return nil
}
