// internal/writer/telemetry/client.go
package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/tristar-monitor/internal/tristar"
)

// Client pushes measurement values to a home-automation server using its
// "update device" command: one idempotent GET per bound metric.
type Client struct {
	base    string
	http    *http.Client
	metrics []boundMetric
	log     logrus.FieldLogger
}

type Config struct {
	BaseURL  string
	Timeout  time.Duration
	Bindings []Binding

	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client
}

// New resolves the bindings up front; an unknown metric name is an error.
func New(cfg Config, log logrus.FieldLogger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("telemetry: base url required")
	}
	metrics, err := resolve(cfg.Bindings)
	if err != nil {
		return nil, err
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		base:    strings.TrimRight(cfg.BaseURL, "/"),
		http:    hc,
		metrics: metrics,
		log:     log,
	}, nil
}

func (c *Client) Name() string { return "telemetry" }

// Write sends every bound metric. A failed request does not stop the rest;
// all failures are returned joined as *RequestError values.
func (c *Client) Write(_ time.Time, m tristar.Measurement) error {
	var errs []error

	for _, bm := range c.metrics {
		if err := c.send(bm, bm.value(m)); err != nil {
			c.log.WithFields(logrus.Fields{
				"metric": bm.Metric,
				"idx":    bm.Idx,
			}).WithError(err).Debug("telemetry request failed")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// URL builds the update request for one device.
func (c *Client) URL(idx int, svalue string) string {
	return fmt.Sprintf("%s/json.htm?type=command&param=udevice&idx=%d&nvalue=0&svalue=%s",
		c.base, idx, url.QueryEscape(svalue))
}

func (c *Client) send(bm boundMetric, svalue string) error {
	u := c.URL(bm.Idx, svalue)
	c.log.Debugf("URL: %s", u)

	fail := func(code int, err error) error {
		return &RequestError{Metric: bm.Metric, Idx: bm.Idx, StatusCode: code, Err: err}
	}

	resp, err := c.http.Get(u)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fail(resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status))
	}

	// The server answers 200 with {"status":"ERR"} for unknown devices.
	var reply struct {
		Status string `json:"status"`
		Title  string `json:"title"`
	}
	if json.Unmarshal(body, &reply) == nil && strings.EqualFold(reply.Status, "ERR") {
		return fail(resp.StatusCode, fmt.Errorf("server rejected update: %s", reply.Title))
	}

	return nil
}

// RequestError is one failed update request.
type RequestError struct {
	Metric     string
	Idx        int
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("telemetry: metric=%s idx=%d: %v", e.Metric, e.Idx, e.Err)
	}
	return fmt.Sprintf("telemetry: metric=%s idx=%d status=%d: %v", e.Metric, e.Idx, e.StatusCode, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }
