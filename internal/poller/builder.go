// internal/poller/builder.go
package poller

import (
	"time"

	cfg "github.com/tamzrod/tristar-monitor/internal/config"
	pmodbus "github.com/tamzrod/tristar-monitor/internal/poller/modbus"
	"github.com/tamzrod/tristar-monitor/internal/tristar"
)

// Build constructs a Poller over the configured Modbus transport.
// The port is opened lazily by the first cycle, so a missing device at
// start-up is a skipped cycle rather than a fatal error.
func Build(m cfg.MonitorConfig) (*Poller, error) {
	client, err := pmodbus.New(pmodbus.Config{
		Transport: m.Source.Transport,
		Device:    m.Source.Device,
		BaudRate:  m.Source.BaudRate,
		DataBits:  m.Source.DataBits,
		Parity:    m.Source.Parity,
		StopBits:  m.Source.StopBits,
		Endpoint:  m.Source.Endpoint,
		UnitID:    m.Source.UnitID,
		Timeout:   time.Duration(m.Source.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}

	return New(
		Config{
			Interval: time.Duration(m.Poll.IntervalMs) * time.Millisecond,
			Read: ReadBlock{
				Address:  0,
				Quantity: tristar.SnapshotLen,
			},
		},
		client,
	)
}
