// internal/poller/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"
	"github.com/goburrow/serial"
)

// Transport kinds.
const (
	TransportRTU = "rtu"
	TransportTCP = "tcp"
)

// handler is what both goburrow RTU and TCP handlers provide.
type handler interface {
	modbus.ClientHandler
	Connect() error
	Close() error
}

// Client implements poller.Client on top of goburrow/modbus.
// One handler, reused while healthy; Connect reopens it after Close.
type Client struct {
	handler handler
	client  modbus.Client
	desc    string
}

// Config is minimal transport config.
type Config struct {
	Transport string // rtu | tcp

	// RTU
	Device   string
	BaudRate int
	DataBits int
	Parity   string
	StopBits int

	// TCP
	Endpoint string

	UnitID  uint8
	Timeout time.Duration
}

// New builds a client. It does not open the port; the poller connects
// at the start of every cycle.
func New(cfg Config) (*Client, error) {
	var h handler
	var desc string

	switch cfg.Transport {
	case TransportRTU, "":
		if cfg.Device == "" {
			return nil, errors.New("modbus client: serial device required")
		}
		rtu := modbus.NewRTUClientHandler(cfg.Device)
		rtu.Config = serial.Config{
			Address:  cfg.Device,
			BaudRate: cfg.BaudRate,
			DataBits: cfg.DataBits,
			StopBits: cfg.StopBits,
			Parity:   cfg.Parity,
			Timeout:  cfg.Timeout,
		}
		rtu.SlaveId = cfg.UnitID
		h = rtu
		desc = fmt.Sprintf("rtu:%s@%d/%d%s%d", cfg.Device, cfg.BaudRate, cfg.DataBits, cfg.Parity, cfg.StopBits)

	case TransportTCP:
		if cfg.Endpoint == "" {
			return nil, errors.New("modbus client: endpoint required")
		}
		tcp := modbus.NewTCPClientHandler(cfg.Endpoint)
		tcp.Timeout = cfg.Timeout
		tcp.SlaveId = cfg.UnitID
		h = tcp
		desc = "tcp:" + cfg.Endpoint

	default:
		return nil, fmt.Errorf("modbus client: unsupported transport %q", cfg.Transport)
	}

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
		desc:    desc,
	}, nil
}

// Connect opens the port if it is not already open.
func (c *Client) Connect() error {
	if err := c.handler.Connect(); err != nil {
		return fmt.Errorf("modbus client: connect %s: %w", c.desc, err)
	}
	return nil
}

// Close closes the port. Safe to call when not connected.
func (c *Client) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	return c.handler.Close()
}

// ReadHoldingRegisters issues FC 3 and unpacks the big-endian payload.
func (c *Client) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	if qty == 0 {
		return nil, nil
	}
	p, err := c.client.ReadHoldingRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	if len(p)%2 != 0 {
		return nil, errors.New("modbus: read-registers payload length not even")
	}
	return unpackRegisters(p), nil
}

func (c *Client) String() string { return c.desc }

// ---- helpers (pure geometry) ----

func unpackRegisters(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}
