// internal/config/load.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults. These match the reference deployment of the controller.
const (
	DefaultIntervalMs       = 30000
	DefaultTransport        = "rtu"
	DefaultDevice           = "/dev/ttyUSB0"
	DefaultBaudRate         = 9600
	DefaultDataBits         = 8
	DefaultParity           = "N"
	DefaultStopBits         = 1
	DefaultUnitID           = 1
	DefaultSourceTimeoutMs  = 2000
	DefaultCurrentThreshold = 150.0
	DefaultTelemetryTimeout = 5000
	DefaultSampleLogPath    = "tristar_data.csv"
	DefaultDailyLogPath     = "tristar_daily.csv"
	DefaultDailyAt          = "23:55"
	DefaultHistoryPath      = "tristar.db"
	DefaultLogLevel         = "info"
)

// DefaultMetrics is the telemetry binding used when none is configured.
var DefaultMetrics = []MetricConfig{
	{Metric: "battery_voltage", Idx: 77},
	{Metric: "battery_current", Idx: 78},
	{Metric: "charge_state", Idx: 80},
	{Metric: "power_out", Idx: 87},
	{Metric: "battery_voltage_min", Idx: 82},
	{Metric: "battery_voltage_max", Idx: 83},
	{Metric: "amp_hours", Idx: 85},
}

// Load reads a YAML file and fills in defaults.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes YAML bytes and fills in defaults.
// An empty document yields an all-defaults config.
func Parse(raw []byte) (*Config, error) {
	var c Config

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	ApplyDefaults(&c)
	return &c, nil
}

// ApplyDefaults fills zero values. Enable flags are left alone.
func ApplyDefaults(c *Config) {
	m := &c.Monitor

	if m.Poll.IntervalMs == 0 {
		m.Poll.IntervalMs = DefaultIntervalMs
	}

	s := &m.Source
	if s.Transport == "" {
		s.Transport = DefaultTransport
	}
	if s.Transport == DefaultTransport && s.Device == "" {
		s.Device = DefaultDevice
	}
	if s.BaudRate == 0 {
		s.BaudRate = DefaultBaudRate
	}
	if s.DataBits == 0 {
		s.DataBits = DefaultDataBits
	}
	if s.Parity == "" {
		s.Parity = DefaultParity
	}
	if s.StopBits == 0 {
		s.StopBits = DefaultStopBits
	}
	if s.UnitID == 0 {
		s.UnitID = DefaultUnitID
	}
	if s.TimeoutMs == 0 {
		s.TimeoutMs = DefaultSourceTimeoutMs
	}

	if m.Filter.CurrentThreshold == 0 {
		m.Filter.CurrentThreshold = DefaultCurrentThreshold
	}

	if m.Telemetry.TimeoutMs == 0 {
		m.Telemetry.TimeoutMs = DefaultTelemetryTimeout
	}
	if m.Telemetry.Metrics == nil {
		m.Telemetry.Metrics = append([]MetricConfig(nil), DefaultMetrics...)
	}

	if m.SampleLog.Path == "" {
		m.SampleLog.Path = DefaultSampleLogPath
	}
	if m.DailyLog.Path == "" {
		m.DailyLog.Path = DefaultDailyLogPath
	}
	if m.DailyLog.At == "" {
		m.DailyLog.At = DefaultDailyAt
	}
	if m.History.Path == "" {
		m.History.Path = DefaultHistoryPath
	}

	if m.Log.Level == "" {
		m.Log.Level = DefaultLogLevel
	}
}
