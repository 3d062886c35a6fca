// internal/poller/poller.go
package poller

import (
	"errors"
	"fmt"
	"time"
)

// Client abstracts the register transport.
// Connect must be cheap when already connected.
type Client interface {
	Connect() error
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error)
	Close() error
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Interval time.Duration
	Read     ReadBlock
}

// Poller is a dumb, clock-driven reader.
type Poller struct {
	cfg    Config
	client Client
	now    func() time.Time
}

// New creates a poller with immutable config.
func New(cfg Config, client Client) (*Poller, error) {
	if client == nil {
		return nil, errors.New("poller: client required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if cfg.Read.Quantity == 0 {
		return nil, errors.New("poller: read quantity must be > 0")
	}
	return &Poller{cfg: cfg, client: client, now: time.Now}, nil
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing: a short or failed read yields no registers.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{At: p.now()}

	if err := p.client.Connect(); err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrTransportUnavailable, err)
		return res
	}

	regs, err := p.client.ReadHoldingRegisters(p.cfg.Read.Address, p.cfg.Read.Quantity)
	if err == nil && len(regs) < int(p.cfg.Read.Quantity) {
		err = fmt.Errorf("short read: got %d registers, want %d", len(regs), p.cfg.Read.Quantity)
	}
	if err != nil {
		// Drop the link so the next cycle starts from a fresh connection.
		_ = p.client.Close()
		res.Err = fmt.Errorf("%w: addr=%d qty=%d: %v", ErrReadFailure, p.cfg.Read.Address, p.cfg.Read.Quantity, err)
		return res
	}

	res.Registers = regs
	return res
}

// Close releases the transport.
func (p *Poller) Close() error {
	return p.client.Close()
}
