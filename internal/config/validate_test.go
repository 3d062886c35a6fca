// internal/config/validate_test.go
package config

import "testing"

// helper to build a valid config quickly
func valid() *Config {
	c := &Config{}
	ApplyDefaults(c)
	c.Monitor.Telemetry.Enabled = true
	c.Monitor.Telemetry.BaseURL = "http://rpi4:8080"
	c.Monitor.SampleLog.Enabled = true
	c.Monitor.DailyLog.Enabled = true
	return c
}

// ---- tests ----

func TestValidate_Defaults(t *testing.T) {
	if err := Validate(valid()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_TCPRequiresEndpoint(t *testing.T) {
	c := valid()
	c.Monitor.Source.Transport = "tcp"

	if err := Validate(c); err == nil {
		t.Fatalf("expected endpoint error, got nil")
	}

	c.Monitor.Source.Endpoint = "10.0.0.5:502"
	if err := Validate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_UnknownTransport(t *testing.T) {
	c := valid()
	c.Monitor.Source.Transport = "ascii"

	if err := Validate(c); err == nil {
		t.Fatalf("expected transport error, got nil")
	}
}

func TestValidate_BadParity(t *testing.T) {
	c := valid()
	c.Monitor.Source.Parity = "X"

	if err := Validate(c); err == nil {
		t.Fatalf("expected parity error, got nil")
	}
}

func TestValidate_TelemetryURL(t *testing.T) {
	c := valid()
	c.Monitor.Telemetry.BaseURL = "rpi4:8080/json"

	if err := Validate(c); err == nil {
		t.Fatalf("expected base_url error, got nil")
	}

	// disabled sink is not checked
	c.Monitor.Telemetry.Enabled = false
	if err := Validate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_TelemetryIdxCollision(t *testing.T) {
	c := valid()
	c.Monitor.Telemetry.Metrics = []MetricConfig{
		{Metric: "battery_voltage", Idx: 77},
		{Metric: "battery_current", Idx: 77},
	}

	if err := Validate(c); err == nil {
		t.Fatalf("expected idx collision error, got nil")
	}
}

func TestValidate_SamePathForBothLogs(t *testing.T) {
	c := valid()
	c.Monitor.DailyLog.Path = c.Monitor.SampleLog.Path

	if err := Validate(c); err == nil {
		t.Fatalf("expected path collision error, got nil")
	}
}

func TestValidate_BadCutoff(t *testing.T) {
	c := valid()
	c.Monitor.DailyLog.At = "24:61"

	if err := Validate(c); err == nil {
		t.Fatalf("expected cutoff error, got nil")
	}
}

func TestValidate_BadLogLevel(t *testing.T) {
	c := valid()
	c.Monitor.Log.Level = "chatty"

	if err := Validate(c); err == nil {
		t.Fatalf("expected log level error, got nil")
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	c := valid()
	c.Monitor.Source.Parity = "n"
	c.Monitor.Telemetry.BaseURL = "http://rpi4:8080/"

	if err := Validate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Monitor.Source.Parity != "n" || c.Monitor.Telemetry.BaseURL != "http://rpi4:8080/" {
		t.Fatalf("Validate mutated config")
	}

	Normalize(c)
	if c.Monitor.Source.Parity != "N" {
		t.Fatalf("parity not normalized: %q", c.Monitor.Source.Parity)
	}
	if c.Monitor.Telemetry.BaseURL != "http://rpi4:8080" {
		t.Fatalf("base_url not normalized: %q", c.Monitor.Telemetry.BaseURL)
	}
}
