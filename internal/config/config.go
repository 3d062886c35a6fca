// internal/config/config.go
package config

type Config struct {
	Monitor MonitorConfig `yaml:"monitor"`
}

type MonitorConfig struct {
	Poll      PollConfig      `yaml:"poll"`
	Source    SourceConfig    `yaml:"source"`
	Filter    FilterConfig    `yaml:"filter"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	SampleLog FileSinkConfig  `yaml:"sample_log"`
	DailyLog  DailyLogConfig  `yaml:"daily_log"`
	History   FileSinkConfig  `yaml:"history"`
	Log       LogConfig       `yaml:"log"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- SOURCE ----

type SourceConfig struct {
	Transport string `yaml:"transport"` // rtu | tcp

	// RTU line settings
	Device   string `yaml:"device"`
	BaudRate int    `yaml:"baud_rate"`
	DataBits int    `yaml:"data_bits"`
	Parity   string `yaml:"parity"`
	StopBits int    `yaml:"stop_bits"`

	// Modbus-TCP gateway
	Endpoint string `yaml:"endpoint"`

	UnitID    uint8 `yaml:"unit_id"`
	TimeoutMs int   `yaml:"timeout_ms"`
}

// ---- FILTER ----

type FilterConfig struct {
	CurrentThreshold float64 `yaml:"current_threshold"`
}

// ---- SINKS ----

type TelemetryConfig struct {
	Enabled   bool           `yaml:"enabled"`
	BaseURL   string         `yaml:"base_url"`
	TimeoutMs int            `yaml:"timeout_ms"`
	Metrics   []MetricConfig `yaml:"metrics"`
}

// MetricConfig binds one measurement field to a remote device index.
type MetricConfig struct {
	Metric string `yaml:"metric"`
	Idx    int    `yaml:"idx"`
}

type FileSinkConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type DailyLogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
	At      string `yaml:"at"` // HH:MM
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}
