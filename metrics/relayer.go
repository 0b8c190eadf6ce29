package metrics

import (
	"context"
	"slices"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	ORDER_TTL = time.Hour
)

type RelayerMetrics struct {
	*HostMetrics

	attributes []attribute.KeyValue

	depositCounter    metric.Int64Counter
	rejectionCounter  metric.Int64Counter
	gateCounter       metric.Int64Counter
	fillCounter       metric.Int64Counter
	fillTimeHistogram metric.Float64Histogram
	depositTimeCache  *ttlcache.Cache[string, time.Time]
}

// NewRelayerMetrics initializes metrics tracking orders through the relayer
func NewRelayerMetrics(ctx context.Context, meter metric.Meter, name, version string) (*RelayerMetrics, error) {
	attributes := []attribute.KeyValue{
		attribute.String("relayer.name", name),
		attribute.String("relayer.version", version),
	}

	hostMetrics, err := NewHostMetrics(ctx, meter, metric.WithAttributes(attributes...))
	if err != nil {
		return nil, err
	}

	depositCounter, err := meter.Int64Counter(
		"relayer.DepositsSeen",
		metric.WithDescription("Number of unique deposits received from source chains"),
	)
	if err != nil {
		return nil, err
	}
	rejectionCounter, err := meter.Int64Counter(
		"relayer.DepositsRejected",
		metric.WithDescription("Number of deposits the relayer is not willing to fill"),
	)
	if err != nil {
		return nil, err
	}
	gateCounter, err := meter.Int64Counter(
		"relayer.ConfirmationDecisions",
		metric.WithDescription("Confirmation gate decisions by state and reason"),
	)
	if err != nil {
		return nil, err
	}
	fillCounter, err := meter.Int64Counter(
		"relayer.Fills",
		metric.WithDescription("Fill outcomes by destination chain"),
	)
	if err != nil {
		return nil, err
	}
	fillTimeHistogram, err := meter.Float64Histogram(
		"relayer.FillTime",
		metric.WithDescription("Seconds between receiving a deposit and the fill outcome"),
	)
	if err != nil {
		return nil, err
	}

	return &RelayerMetrics{
		HostMetrics:       hostMetrics,
		attributes:        attributes,
		depositCounter:    depositCounter,
		rejectionCounter:  rejectionCounter,
		gateCounter:       gateCounter,
		fillCounter:       fillCounter,
		fillTimeHistogram: fillTimeHistogram,
		depositTimeCache: ttlcache.New(
			ttlcache.WithTTL[string, time.Time](ORDER_TTL),
		),
	}, nil
}

func (m *RelayerMetrics) with(attributes ...attribute.KeyValue) metric.MeasurementOption {
	return metric.WithAttributes(append(slices.Clone(m.attributes), attributes...)...)
}

func (m *RelayerMetrics) TrackDeposit(origin uint64, key string) {
	m.depositTimeCache.Set(key, time.Now(), ttlcache.DefaultTTL)
	m.depositCounter.Add(
		context.Background(),
		1,
		m.with(attribute.Int64("origin", int64(origin))),
	)
}

func (m *RelayerMetrics) TrackRejection(origin uint64, reason string) {
	m.rejectionCounter.Add(
		context.Background(),
		1,
		m.with(
			attribute.Int64("origin", int64(origin)),
			attribute.String("reason", reason),
		),
	)
}

func (m *RelayerMetrics) TrackConfirmation(origin uint64, state string, reason string) {
	m.gateCounter.Add(
		context.Background(),
		1,
		m.with(
			attribute.Int64("origin", int64(origin)),
			attribute.String("state", state),
			attribute.String("reason", reason),
		),
	)
}

func (m *RelayerMetrics) TrackFill(destination uint64, key string, outcome string) {
	m.fillCounter.Add(
		context.Background(),
		1,
		m.with(
			attribute.Int64("destination", int64(destination)),
			attribute.String("outcome", outcome),
		),
	)

	depositTime := m.depositTimeCache.Get(key)
	if depositTime == nil {
		log.Warn().Msgf("Deposit time for order %s not found", key)
		return
	}
	m.depositTimeCache.Delete(key)

	m.fillTimeHistogram.Record(context.Background(), time.Since(depositTime.Value()).Seconds(), m.with())
}
