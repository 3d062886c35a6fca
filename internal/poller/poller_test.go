// internal/poller/poller_test.go
package poller

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeClient struct {
	connectErr error
	readErr    error
	short      bool

	connects int
	reads    int
	closes   int
}

func (f *fakeClient) Connect() error {
	f.connects++
	return f.connectErr
}

func (f *fakeClient) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	f.reads++
	if f.readErr != nil {
		return nil, f.readErr
	}
	if f.short {
		qty--
	}
	out := make([]uint16, qty)
	for i := range out {
		out[i] = addr + uint16(i)
	}
	return out, nil
}

func (f *fakeClient) Close() error {
	f.closes++
	return nil
}

func testConfig() Config {
	return Config{
		Interval: time.Millisecond,
		Read:     ReadBlock{Address: 0, Quantity: 92},
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(testConfig(), nil); err == nil {
		t.Fatalf("expected error for nil client")
	}

	c := testConfig()
	c.Interval = 0
	if _, err := New(c, &fakeClient{}); err == nil {
		t.Fatalf("expected error for zero interval")
	}

	c = testConfig()
	c.Read.Quantity = 0
	if _, err := New(c, &fakeClient{}); err == nil {
		t.Fatalf("expected error for zero quantity")
	}
}

func TestPollOnce_Success(t *testing.T) {
	p, err := New(testConfig(), &fakeClient{})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	res := p.PollOnce()
	if res.Err != nil {
		t.Fatalf("PollOnce err=%v", res.Err)
	}
	if len(res.Registers) != 92 {
		t.Fatalf("expected 92 registers, got %d", len(res.Registers))
	}
	if res.At.IsZero() {
		t.Fatalf("expected timestamp")
	}
}

func TestPollOnce_ConnectFailure(t *testing.T) {
	fc := &fakeClient{connectErr: errors.New("no such device")}
	p, _ := New(testConfig(), fc)

	res := p.PollOnce()
	if !errors.Is(res.Err, ErrTransportUnavailable) {
		t.Fatalf("expected ErrTransportUnavailable, got %v", res.Err)
	}
	if res.Registers != nil {
		t.Fatalf("expected no registers on failure")
	}
	if fc.reads != 0 {
		t.Fatalf("read attempted without connection")
	}
}

func TestPollOnce_ReadFailureClosesClient(t *testing.T) {
	fc := &fakeClient{readErr: errors.New("timeout")}
	p, _ := New(testConfig(), fc)

	res := p.PollOnce()
	if !errors.Is(res.Err, ErrReadFailure) {
		t.Fatalf("expected ErrReadFailure, got %v", res.Err)
	}
	if res.Registers != nil {
		t.Fatalf("expected no registers on failure")
	}
	if fc.closes != 1 {
		t.Fatalf("expected client closed once, got %d", fc.closes)
	}
}

func TestPollOnce_ShortReadIsFailure(t *testing.T) {
	fc := &fakeClient{short: true}
	p, _ := New(testConfig(), fc)

	res := p.PollOnce()
	if !errors.Is(res.Err, ErrReadFailure) {
		t.Fatalf("expected ErrReadFailure, got %v", res.Err)
	}
}

func TestRun_SequentialUntilCancelled(t *testing.T) {
	fc := &fakeClient{}
	p, _ := New(testConfig(), fc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var results []PollResult
	p.Run(ctx, func(res PollResult) {
		results = append(results, res)
		if len(results) == 3 {
			cancel()
		}
	})

	if len(results) != 3 {
		t.Fatalf("expected 3 cycles, got %d", len(results))
	}
	if fc.connects != 3 || fc.reads != 3 {
		t.Fatalf("expected 3 connects and reads, got %d/%d", fc.connects, fc.reads)
	}
}

func TestRun_ContinuesAfterFailures(t *testing.T) {
	fc := &fakeClient{connectErr: errors.New("gone")}
	p, _ := New(testConfig(), fc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := 0
	p.Run(ctx, func(res PollResult) {
		n++
		if n <= 2 && res.Err == nil {
			t.Errorf("expected error result on cycle %d", n)
		}
		if n == 2 {
			fc.connectErr = nil
		}
		if n == 3 {
			if res.Err != nil {
				t.Errorf("expected recovery on cycle 3, got %v", res.Err)
			}
			cancel()
		}
	})
}
