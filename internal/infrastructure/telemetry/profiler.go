package telemetry

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"
)

// ProfilerConfig configures Pyroscope continuous profiling
type ProfilerConfig struct {
	Enabled         bool
	ServerAddress   string
	ApplicationName string
	Version         string
}

// Mutex and block profiles need runtime sampling rates, so they stay off
var profileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseObjects,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
}

type Profiler struct {
	profiler *pyroscope.Profiler
	logger   *zap.Logger
	stopOnce sync.Once
	stopErr  error
}

// NewProfiler starts pushing profiles to Pyroscope. A disabled config yields
// a Profiler whose Stop does nothing.
func NewProfiler(cfg ProfilerConfig, logger *zap.Logger) (*Profiler, error) {
	p := &Profiler{logger: logger}
	if !cfg.Enabled {
		logger.Info("Profiling disabled")
		return p, nil
	}

	switch {
	case cfg.ServerAddress == "":
		return nil, errors.New("profiler: server address is required")
	case cfg.ApplicationName == "":
		return nil, errors.New("profiler: application name is required")
	}

	tags := make(map[string]string, 2)
	if host := os.Getenv("HOSTNAME"); host != "" {
		tags["hostname"] = host
	}
	if cfg.Version != "" {
		tags["version"] = cfg.Version
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: cfg.ApplicationName,
		ServerAddress:   cfg.ServerAddress,
		Logger:          logger.Named("pyroscope").Sugar(),
		Tags:            tags,
		ProfileTypes:    profileTypes,
	})
	if err != nil {
		return nil, fmt.Errorf("start pyroscope: %w", err)
	}
	p.profiler = profiler

	logger.Info("Profiling enabled",
		zap.String("server_address", cfg.ServerAddress),
		zap.String("application_name", cfg.ApplicationName),
	)
	return p, nil
}

// Stop flushes the last profiles. Later calls return the first result.
func (p *Profiler) Stop() error {
	if p.profiler == nil {
		return nil
	}
	p.stopOnce.Do(func() {
		if err := p.profiler.Stop(); err != nil {
			p.logger.Error("Profiler stop failed", zap.Error(err))
			p.stopErr = fmt.Errorf("stop pyroscope: %w", err)
			return
		}
		p.logger.Info("Profiler stopped")
	})
	return p.stopErr
}

func (p *Profiler) IsEnabled() bool {
	return p.profiler != nil
}
