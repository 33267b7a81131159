package location

import (
	"context"
	"log/slog"
	"time"

	"github.com/montagezeit/reminder-engine/internal/app"
)

// StaticProvider serves a configured fix. It stands in for the device
// location subsystem in development and test deployments; the real provider
// runs on the device side and is out of scope here.
type StaticProvider struct {
	fix     app.RawFix
	hasFix  bool
	latency time.Duration
}

type StaticProviderConfig struct {
	Lat            float64
	Lon            float64
	AccuracyMeters float64
	Latency        time.Duration
}

func NewStaticProvider(cfg StaticProviderConfig) *StaticProvider {
	return &StaticProvider{
		fix: app.RawFix{
			Lat:            cfg.Lat,
			Lon:            cfg.Lon,
			AccuracyMeters: cfg.AccuracyMeters,
		},
		hasFix:  true,
		latency: cfg.Latency,
	}
}

func (p *StaticProvider) LastKnown(_ context.Context) (app.RawFix, bool, error) {
	return p.fix, p.hasFix, nil
}

func (p *StaticProvider) Acquire(ctx context.Context, priority app.AcquisitionPriority, timeout time.Duration) (app.RawFix, error) {
	if p.latency > timeout {
		return app.RawFix{}, app.ErrPositionTimeout
	}

	if p.latency > 0 {
		select {
		case <-ctx.Done():
			return app.RawFix{}, ctx.Err()
		case <-time.After(p.latency):
		}
	}

	slog.Debug("static position fix served",
		"priority", string(priority),
		"accuracy_m", p.fix.AccuracyMeters,
	)

	return p.fix, nil
}

// UnavailableProvider reports every request as unservable. It is the default
// when no provider is configured.
type UnavailableProvider struct{}

func NewUnavailableProvider() *UnavailableProvider {
	return &UnavailableProvider{}
}

func (UnavailableProvider) LastKnown(_ context.Context) (app.RawFix, bool, error) {
	return app.RawFix{}, false, nil
}

func (UnavailableProvider) Acquire(_ context.Context, _ app.AcquisitionPriority, _ time.Duration) (app.RawFix, error) {
	return app.RawFix{}, app.ErrPositionUnavailable
}
