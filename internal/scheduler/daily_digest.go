package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-dashboard-api/internal/config"
	"github.com/vfg2006/storefront-dashboard-api/internal/domain"
	"github.com/vfg2006/storefront-dashboard-api/pkg/utils"
)

// StatsAggregator calcula os indicadores do painel sem aplicar o substituto em caso de falha
type StatsAggregator interface {
	AggregateStats(ctx context.Context) (domain.DashboardStats, error)
}

// DailyDigestConfig representa a configuração do resumo diário
type DailyDigestConfig struct {
	CronSchedule string
	Enabled      bool
}

// DailyDigestService agenda e registra no log o resumo diário dos indicadores
type DailyDigestService struct {
	scheduler       *gocron.Scheduler
	config          DailyDigestConfig
	aggregator      StatsAggregator
	digestRunning   bool
	digestMutex     sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
	lastDigest      *domain.DashboardStats
	digestTimeout   time.Duration
}

func NewDailyDigestService(aggregator StatsAggregator, appConfig *config.Config) *DailyDigestService {
	digestConfig := DailyDigestConfig{
		CronSchedule: appConfig.DailyDigest.CronSchedule,
		Enabled:      appConfig.DailyDigest.Enabled,
	}

	// Os dias são recortados em UTC, então o agendamento também
	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
		"enabled":       digestConfig.Enabled,
	}).Info("Configuração do resumo diário carregada")

	return &DailyDigestService{
		scheduler:     scheduler,
		config:        digestConfig,
		aggregator:    aggregator,
		digestTimeout: 2 * time.Minute,
	}
}

// Start inicia o agendador
func (s *DailyDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Resumo diário desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do resumo diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDigest(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do resumo diário")
		s.scheduler.Stop()
	}()

	return nil
}

// runDigest calcula os indicadores e registra uma linha de resumo. Execuções concorrentes são ignoradas.
func (s *DailyDigestService) runDigest(ctx context.Context) {
	s.digestMutex.Lock()
	if s.digestRunning {
		s.digestMutex.Unlock()
		logrus.Info("Resumo diário já em andamento, ignorando")
		return
	}
	s.digestRunning = true
	s.lastStartedAt = time.Now()
	s.digestMutex.Unlock()

	defer func() {
		s.digestMutex.Lock()
		s.digestRunning = false
		s.lastCompletedAt = time.Now()
		s.digestMutex.Unlock()
	}()

	digestCtx, cancel := context.WithTimeout(ctx, s.digestTimeout)
	defer cancel()

	stats, err := s.aggregator.AggregateStats(digestCtx)
	if err != nil {
		logrus.WithError(err).Error("Falha ao calcular o resumo diário")
		s.digestMutex.Lock()
		s.lastError = err.Error()
		s.digestMutex.Unlock()
		return
	}

	logrus.WithFields(logrus.Fields{
		"revenue_today":    stats.RevenueToday,
		"revenue_change":   utils.RoundWithTwoDecimalPlace(stats.RevenueChange),
		"new_orders":       stats.NewOrders,
		"orders_change":    utils.RoundWithTwoDecimalPlace(stats.OrdersChange),
		"active_customers": stats.ActiveCustomers,
	}).Info("Resumo diário do painel")

	s.digestMutex.Lock()
	s.lastError = ""
	s.lastDigest = &stats
	s.digestMutex.Unlock()
}

// TriggerManualDigest executa o resumo fora do agendamento
func (s *DailyDigestService) TriggerManualDigest() {
	s.digestMutex.Lock()
	if s.digestRunning {
		s.digestMutex.Unlock()
		logrus.Info("Resumo diário já em andamento, ignorando solicitação manual")
		return
	}
	s.digestMutex.Unlock()

	logrus.Info("Iniciando resumo diário manual")
	go s.runDigest(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *DailyDigestService) GetStatus() map[string]any {
	s.digestMutex.Lock()
	defer s.digestMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"running":           s.digestRunning,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_error":        s.lastError,
		"last_digest":       s.lastDigest,
	}
}
