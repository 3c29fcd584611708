package commands_test

import (
	"errors"
	"testing"
	"time"

	"opsworker/internal/core/application/usecases/commands"
	"opsworker/internal/core/domain/model/alert"
	"opsworker/internal/core/domain/services"
	"opsworker/internal/core/ports"
	"opsworker/internal/pkg/clock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateGamasMetricsCommandHandler_Handle(t *testing.T) {
	now := time.Date(2024, 5, 14, 13, 0, 0, 0, jakarta)
	config := commands.GamasMetricsConfig{
		MetricName: "gamas",
		FilePath:   "/tmp/gamas.txt",
		Location:   jakarta,
	}
	grouper, err := services.NewIncidentGrouper(time.Minute, 7*24*time.Hour, 2)
	require.NoError(t, err)

	firing := func(host, link string, startsAt time.Time) alert.Alert {
		return alert.Alert{
			StartsAt: startsAt,
			Labels:   map[string]string{"host": host, "link": link, "region": "medan"},
		}
	}

	t.Run("should export groups above the threshold", func(t *testing.T) {
		ctx := t.Context()
		alerts := new(MockAlertSource)
		writer := new(MockMetricFileWriter)
		start := now.Add(-time.Hour).UTC()

		alerts.On("FetchAlerts", ctx).Return([]alert.Alert{
			firing("ont-1", "olt-a", start),
			firing("ont-2", "olt-a", start.Add(20*time.Second)),
			firing("ont-3", "olt-a", start.Add(50*time.Second)),
			firing("ont-3", "olt-a", start.Add(55*time.Second)),
			firing("ont-9", "olt-b", start),
		}, nil).Once()
		writer.On("WriteGauges", ctx, "/tmp/gamas.txt", ports.GaugeFamily{
			Name:       "gamas",
			Help:       "Hosts affected by a mass incident on one link.",
			LabelNames: []string{"region", "link", "start"},
			Samples: []ports.GaugeSample{
				{LabelValues: []string{"medan", "olt-a", "2024-05-14 12:00"}, Value: 3},
			},
		}).Return(nil).Once()

		handler := commands.NewGenerateGamasMetricsCommandHandler(
			alerts, grouper, writer, clock.Fixed(now), config, discardLogger())
		err := handler.Handle(ctx, commands.NewGenerateGamasMetricsCommand())

		require.NoError(t, err)
		alerts.AssertExpectations(t)
		writer.AssertExpectations(t)
	})

	t.Run("should return alert manager errors without writing", func(t *testing.T) {
		ctx := t.Context()
		alerts := new(MockAlertSource)
		writer := new(MockMetricFileWriter)
		fetchErr := errors.New("503 service unavailable")
		alerts.On("FetchAlerts", ctx).Return([]alert.Alert(nil), fetchErr).Once()

		handler := commands.NewGenerateGamasMetricsCommandHandler(
			alerts, grouper, writer, clock.Fixed(now), config, discardLogger())
		err := handler.Handle(ctx, commands.NewGenerateGamasMetricsCommand())

		require.ErrorIs(t, err, fetchErr)
		writer.AssertNotCalled(t, "WriteGauges", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should return write errors", func(t *testing.T) {
		ctx := t.Context()
		alerts := new(MockAlertSource)
		writer := new(MockMetricFileWriter)
		writeErr := errors.New("read-only file system")
		alerts.On("FetchAlerts", ctx).Return([]alert.Alert{}, nil).Once()
		writer.On("WriteGauges", ctx, "/tmp/gamas.txt", mock.Anything).Return(writeErr).Once()

		handler := commands.NewGenerateGamasMetricsCommandHandler(
			alerts, grouper, writer, clock.Fixed(now), config, discardLogger())
		err := handler.Handle(ctx, commands.NewGenerateGamasMetricsCommand())

		require.ErrorIs(t, err, writeErr)
	})
}
