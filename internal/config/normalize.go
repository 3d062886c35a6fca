// internal/config/normalize.go
package config

import "strings"

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	m := &cfg.Monitor

	m.Source.Transport = strings.ToLower(m.Source.Transport)
	m.Source.Parity = strings.ToUpper(m.Source.Parity)

	// Requests append "/json.htm"; avoid a double slash.
	m.Telemetry.BaseURL = strings.TrimRight(m.Telemetry.BaseURL, "/")

	m.Log.Level = strings.ToLower(m.Log.Level)
}
