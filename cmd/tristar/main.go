// cmd/tristar/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	arg "github.com/alexflint/go-arg"
	"github.com/sirupsen/logrus"

	"github.com/tamzrod/tristar-monitor/internal/config"
	"github.com/tamzrod/tristar-monitor/internal/filter"
	"github.com/tamzrod/tristar-monitor/internal/monitor"
	"github.com/tamzrod/tristar-monitor/internal/poller"
	"github.com/tamzrod/tristar-monitor/internal/rollup"
	"github.com/tamzrod/tristar-monitor/internal/writer"
)

var version = "No version provided"

var log = logrus.New()

type argSpec struct {
	Config   string `arg:"-c, --config" default:"/etc/tristar/tristar.yaml" help:"Path to the YAML config file"`
	LogLevel string `arg:"-l, --log-level" help:"Override log.level from the config (debug, info, warn, error)"`
}

func (argSpec) Version() string {
	return version
}

func procArgs() argSpec {
	var args argSpec
	arg.MustParse(&args)
	return args
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "info":
		log.SetLevel(logrus.InfoLevel)
	case "warn", "warning":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
		log.Warn("Unknown log level, defaulting to info")
	}
}

func main() {
	err := runMain()
	if err != nil {
		log.Fatal(err.Error())
	}
}

func runMain() error {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.DateTime})
	args := procArgs()

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(args.Config)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)
	m := cfg.Monitor

	level := m.Log.Level
	if args.LogLevel != "" {
		level = args.LogLevel
	}
	setLogLevel(level)

	if m.Log.File != "" {
		f, err := os.OpenFile(m.Log.File, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	log.Info("Running version: ", version)
	log.Warn("(re)started monitoring")

	// --------------------
	// Build pipeline
	// --------------------

	p, err := poller.Build(m)
	if err != nil {
		return fmt.Errorf("poller build failed: %w", err)
	}
	defer p.Close()

	plan, closeSinks, err := writer.BuildPlan(m, log)
	if err != nil {
		return fmt.Errorf("writer plan failed: %w", err)
	}
	defer func() {
		if err := closeSinks(); err != nil {
			log.WithError(err).Warn("sink close failed")
		}
	}()

	cutoff, err := rollup.ParseCutoff(m.DailyLog.At)
	if err != nil {
		return err
	}

	rollups := rollup.New(time.Now(), cutoff)

	mon := monitor.New(
		filter.NewGlitchFilter(m.Filter.CurrentThreshold),
		rollups,
		writer.New(plan),
		log,
	)

	log.WithFields(logrus.Fields{
		"transport":     m.Source.Transport,
		"interval_ms":   m.Poll.IntervalMs,
		"sample_sinks":  len(plan.Samples),
		"rollup_sinks":  len(plan.Rollups),
		"next_rollup":   rollups.Next().Format(time.RFC3339),
		"threshold_amp": m.Filter.CurrentThreshold,
	}).Info("monitor configured")

	// --------------------
	// Run until signalled
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p.Run(ctx, mon.Handle)

	log.Info("monitoring stopped")
	return nil
}
