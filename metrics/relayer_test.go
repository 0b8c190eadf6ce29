package metrics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/sprintertech/across-relayer/metrics"
)

type RelayerMetricsTestSuite struct {
	suite.Suite

	reader  sdkmetric.Reader
	metrics *metrics.RelayerMetrics
}

func TestRunRelayerMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(RelayerMetricsTestSuite))
}

func (s *RelayerMetricsTestSuite) SetupTest() {
	s.reader = sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(s.reader))

	m, err := metrics.NewRelayerMetrics(context.Background(), provider.Meter("test"), "test", "0.0.1")
	s.Nil(err)
	s.metrics = m
}

func (s *RelayerMetricsTestSuite) collect() map[string]metricdata.Metrics {
	rm := metricdata.ResourceMetrics{}
	err := s.reader.Collect(context.Background(), &rm)
	s.Nil(err)

	collected := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			collected[m.Name] = m
		}
	}
	return collected
}

func (s *RelayerMetricsTestSuite) sum(m metricdata.Metrics) int64 {
	data, ok := m.Data.(metricdata.Sum[int64])
	s.True(ok)

	total := int64(0)
	for _, dp := range data.DataPoints {
		total += dp.Value
	}
	return total
}

func (s *RelayerMetricsTestSuite) Test_TrackOrderLifecycle() {
	s.metrics.TrackDeposit(10, "10-1")
	s.metrics.TrackDeposit(10, "10-2")
	s.metrics.TrackRejection(10, "no-matching-token")
	s.metrics.TrackConfirmation(10, "released", "")
	s.metrics.TrackFill(42161, "10-1", "simulated")

	collected := s.collect()

	s.Equal(int64(2), s.sum(collected["relayer.DepositsSeen"]))
	s.Equal(int64(1), s.sum(collected["relayer.DepositsRejected"]))
	s.Equal(int64(1), s.sum(collected["relayer.ConfirmationDecisions"]))
	s.Equal(int64(1), s.sum(collected["relayer.Fills"]))

	histogram, ok := collected["relayer.FillTime"].Data.(metricdata.Histogram[float64])
	s.True(ok)
	s.Len(histogram.DataPoints, 1)
	s.Equal(uint64(1), histogram.DataPoints[0].Count)
}

func (s *RelayerMetricsTestSuite) Test_TrackFill_UnknownOrder() {
	s.metrics.TrackFill(42161, "10-3", "reverted")

	collected := s.collect()

	s.Equal(int64(1), s.sum(collected["relayer.Fills"]))
}

func (s *RelayerMetricsTestSuite) Test_UptimeGauge() {
	collected := s.collect()

	gauge, ok := collected["relayer.UptimeSeconds"].Data.(metricdata.Gauge[float64])
	s.True(ok)
	s.Len(gauge.DataPoints, 1)
	s.GreaterOrEqual(gauge.DataPoints[0].Value, float64(0))
	s.LessOrEqual(gauge.DataPoints[0].Value, s.metrics.Uptime().Seconds())

	name, ok := gauge.DataPoints[0].Attributes.Value("relayer.name")
	s.True(ok)
	s.Equal("test", name.AsString())
}
