package commands_test

import (
	"errors"
	"testing"
	"time"

	"opsworker/internal/core/application/usecases/commands"
	"opsworker/internal/core/domain/model/network"
	"opsworker/internal/core/ports"
	"opsworker/internal/pkg/clock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateOverSpeedMetricsCommandHandler_Handle(t *testing.T) {
	now := time.Date(2024, 5, 14, 13, 0, 0, 0, jakarta)
	config := commands.OverSpeedMetricsConfig{
		MetricName: "over_speed_blocked_subscriber",
		FilePath:   "/tmp/metric.txt",
		Threshold:  1000000,
		Window:     4 * time.Hour,
	}

	t.Run("should export each over speed subscriber once", func(t *testing.T) {
		ctx := t.Context()
		links := new(MockGraphLinkRepository)
		monitor := new(MockGraphMonitor)
		writer := new(MockMetricFileWriter)

		links.On("ListBlockedSubscriberGraphs", ctx).Return([]network.SubscriberGraph{
			{Subscriber: network.Subscriber{CSID: "10", Account: "acme"}, GraphID: 1},
			{Subscriber: network.Subscriber{CSID: "10", Account: "acme"}, GraphID: 2},
			{Subscriber: network.Subscriber{CSID: "20", Account: "globex"}, GraphID: 3},
			{Subscriber: network.Subscriber{CSID: "30", Account: "quiet"}, GraphID: 4},
		}, nil).Once()
		monitor.On("OverSpeedGraphs", ctx, []network.GraphID{1, 2, 3, 4}, uint64(1000000), now.Add(-4*time.Hour)).
			Return([]network.GraphID{1, 2, 3}, nil).Once()
		writer.On("WriteGauges", ctx, "/tmp/metric.txt", ports.GaugeFamily{
			Name:       "over_speed_blocked_subscriber",
			Help:       "Blocked subscribers with traffic above the speed threshold.",
			LabelNames: []string{"csid", "acc"},
			Samples: []ports.GaugeSample{
				{LabelValues: []string{"10", "acme"}, Value: 1},
				{LabelValues: []string{"20", "globex"}, Value: 1},
			},
		}).Return(nil).Once()

		handler := commands.NewGenerateOverSpeedMetricsCommandHandler(
			links, monitor, writer, clock.Fixed(now), config, discardLogger())
		err := handler.Handle(ctx, commands.NewGenerateOverSpeedMetricsCommand())

		require.NoError(t, err)
		links.AssertExpectations(t)
		monitor.AssertExpectations(t)
		writer.AssertExpectations(t)
	})

	t.Run("should write an empty family when nobody is blocked", func(t *testing.T) {
		ctx := t.Context()
		links := new(MockGraphLinkRepository)
		monitor := new(MockGraphMonitor)
		writer := new(MockMetricFileWriter)

		links.On("ListBlockedSubscriberGraphs", ctx).Return([]network.SubscriberGraph{}, nil).Once()
		writer.On("WriteGauges", ctx, "/tmp/metric.txt", mock.MatchedBy(func(f ports.GaugeFamily) bool {
			return len(f.Samples) == 0
		})).Return(nil).Once()

		handler := commands.NewGenerateOverSpeedMetricsCommandHandler(
			links, monitor, writer, clock.Fixed(now), config, discardLogger())
		err := handler.Handle(ctx, commands.NewGenerateOverSpeedMetricsCommand())

		require.NoError(t, err)
		monitor.AssertNotCalled(t, "OverSpeedGraphs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		writer.AssertExpectations(t)
	})

	t.Run("should return monitoring errors without writing", func(t *testing.T) {
		ctx := t.Context()
		links := new(MockGraphLinkRepository)
		monitor := new(MockGraphMonitor)
		writer := new(MockMetricFileWriter)
		monitorErr := errors.New("query timeout")

		links.On("ListBlockedSubscriberGraphs", ctx).Return([]network.SubscriberGraph{
			{Subscriber: network.Subscriber{CSID: "10", Account: "acme"}, GraphID: 1},
		}, nil).Once()
		monitor.On("OverSpeedGraphs", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return([]network.GraphID(nil), monitorErr).Once()

		handler := commands.NewGenerateOverSpeedMetricsCommandHandler(
			links, monitor, writer, clock.Fixed(now), config, discardLogger())
		err := handler.Handle(ctx, commands.NewGenerateOverSpeedMetricsCommand())

		require.ErrorIs(t, err, monitorErr)
		writer.AssertNotCalled(t, "WriteGauges", mock.Anything, mock.Anything, mock.Anything)
	})
}
