package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// HostMetrics reports how long the relayer process has been running.
type HostMetrics struct {
	startedAt   time.Time
	uptimeGauge metric.Float64ObservableGauge
}

func NewHostMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*HostMetrics, error) {
	m := &HostMetrics{
		startedAt: time.Now(),
	}

	uptimeGauge, err := meter.Float64ObservableGauge(
		"relayer.UptimeSeconds",
		metric.WithDescription("Seconds since the relayer process started"),
		metric.WithUnit("s"),
		metric.WithFloat64Callback(func(ctx context.Context, result metric.Float64Observer) error {
			result.Observe(m.Uptime().Seconds(), opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	m.uptimeGauge = uptimeGauge

	return m, nil
}

func (m *HostMetrics) Uptime() time.Duration {
	return time.Since(m.startedAt)
}
