package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/storefront-dashboard-api/internal/config"
	"github.com/vfg2006/storefront-dashboard-api/internal/domain"
	"github.com/vfg2006/storefront-dashboard-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

func newDigestConfig(enabled bool, cron string) *config.Config {
	return &config.Config{
		DailyDigest: config.DailyDigest{
			CronSchedule: cron,
			Enabled:      enabled,
		},
	}
}

func TestDailyDigestService_runDigest(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(aggregator *mocks.MockDashboarder)
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "guarda o último resumo",
			setup: func(aggregator *mocks.MockDashboarder) {
				aggregator.EXPECT().
					AggregateStats(gomock.Any()).
					Return(domain.DashboardStats{RevenueToday: 500, RevenueChange: 25, NewOrders: 2}, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				digest, ok := status["last_digest"].(*domain.DashboardStats)
				require.True(t, ok)
				assert.Equal(t, 500.0, digest.RevenueToday)
				assert.Equal(t, 2, digest.NewOrders)
				assert.Empty(t, status["last_error"])
				assert.Equal(t, false, status["running"])
			},
		},
		{
			name: "falha fica registrada e não gera resumo",
			setup: func(aggregator *mocks.MockDashboarder) {
				aggregator.EXPECT().
					AggregateStats(gomock.Any()).
					Return(domain.DashboardStats{}, errors.New("payload indisponível"))
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Nil(t, status["last_digest"])
				assert.Equal(t, "payload indisponível", status["last_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			aggregator := mocks.NewMockDashboarder(ctrl)
			tt.setup(aggregator)

			service := NewDailyDigestService(aggregator, newDigestConfig(true, "55 23 * * *"))
			service.runDigest(context.Background())

			tt.validate(t, service.GetStatus())
		})
	}
}

func TestDailyDigestService_runDigest_SkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	aggregator := mocks.NewMockDashboarder(ctrl)

	service := NewDailyDigestService(aggregator, newDigestConfig(true, "55 23 * * *"))
	service.digestRunning = true

	// Nenhuma chamada ao agregador é esperada
	service.runDigest(context.Background())

	assert.Equal(t, true, service.GetStatus()["running"])
}

func TestDailyDigestService_Start(t *testing.T) {
	t.Run("desabilitado não agenda nada", func(t *testing.T) {
		service := NewDailyDigestService(nil, newDigestConfig(false, "55 23 * * *"))

		assert.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("expressão cron inválida", func(t *testing.T) {
		service := NewDailyDigestService(nil, newDigestConfig(true, "todo dia"))

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("agenda e para com o contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		service := NewDailyDigestService(nil, newDigestConfig(true, "55 23 * * *"))

		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)
		assert.True(t, service.scheduler.IsRunning())

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}
