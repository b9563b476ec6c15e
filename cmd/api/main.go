package main

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-dashboard-api/infrastructure/integrator/payload"
	"github.com/vfg2006/storefront-dashboard-api/infrastructure/integrator/payload/payloadclient"
	"github.com/vfg2006/storefront-dashboard-api/internal/api"
	"github.com/vfg2006/storefront-dashboard-api/internal/api/handler"
	"github.com/vfg2006/storefront-dashboard-api/internal/config"
	"github.com/vfg2006/storefront-dashboard-api/internal/scheduler"
	"github.com/vfg2006/storefront-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/storefront-dashboard-api/pkg/log"
	"github.com/vfg2006/storefront-dashboard-api/pkg/metrics"
)

func main() {
	// Formato provisório até a configuração ser lida
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Configuração inválida")
	}

	logCloser := log.Setup(log.Options{
		Level:      cfg.App.LogLevel,
		File:       cfg.App.LogFile,
		MaxSizeMB:  cfg.App.LogFileMaxSizeMB,
		MaxBackups: cfg.App.LogFileMaxBackups,
		MaxAgeDays: cfg.App.LogFileMaxAgeDays,
	})
	defer logCloser.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics.Register(registry)

	payloadClient := payloadclient.NewClient(cfg)
	payloadIntegrator := payload.New(payloadClient)

	dashboardService := dashboarding.NewService(payloadIntegrator, cfg)

	dailyDigestService := scheduler.NewDailyDigestService(dashboardService, cfg)
	if err := dailyDigestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo diário")
	}

	server := api.New(
		cfg,
		dashboardService,
		handler.CronJobServices{DailyDigestService: dailyDigestService},
		registry,
	)

	logrus.WithField("payload_url", cfg.Payload.URL).Info("Painel configurado")

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
