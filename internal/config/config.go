package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	ErrPayloadURLRequired = errors.New("config: PAYLOAD_API_URL is not set")
	ErrPayloadURLInvalid  = errors.New("config: PAYLOAD_API_URL must be an absolute http(s) URL")
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Payload     Payload     `mapstructure:",squash"`
	Dashboard   Dashboard   `mapstructure:",squash"`
	DailyDigest DailyDigest `mapstructure:",squash"`
	RateLimit   RateLimit   `mapstructure:",squash"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel          string `mapstructure:"log_level"`
	LogFile           string `mapstructure:"log_file"`
	LogFileMaxSizeMB  int    `mapstructure:"log_file_max_size_mb"`
	LogFileMaxBackups int    `mapstructure:"log_file_max_backups"`
	LogFileMaxAgeDays int    `mapstructure:"log_file_max_age_days"`
}

// Payload configura o cliente da API de coleções remota
type Payload struct {
	URL               string        `mapstructure:"payload_api_url"`
	APIKey            string        `mapstructure:"payload_api_key"`
	Timeout           time.Duration `mapstructure:"payload_timeout"`
	RequestsPerSecond float64       `mapstructure:"payload_requests_per_second"`
	Burst             int           `mapstructure:"payload_burst"`
}

type Dashboard struct {
	StatsPageSize        int `mapstructure:"dashboard_stats_page_size"`
	RecentOrdersLimit    int `mapstructure:"dashboard_recent_orders_limit"`
	ListPageSize         int `mapstructure:"dashboard_list_page_size"`
	AnalyticsDefaultDays int `mapstructure:"dashboard_analytics_default_days"`
}

type DailyDigest struct {
	CronSchedule string `mapstructure:"daily_digest_cron"`
	Enabled      bool   `mapstructure:"daily_digest_enabled"`
}

type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"api_rate_limit_per_second"`
	Burst             int     `mapstructure:"api_rate_limit_burst"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LOG_FILE_MAX_SIZE_MB", 50)
	v.SetDefault("LOG_FILE_MAX_BACKUPS", 5)
	v.SetDefault("LOG_FILE_MAX_AGE_DAYS", 14)

	// PAYLOAD_API_URL não tem default: sem ele o processo não sobe
	v.SetDefault("PAYLOAD_API_URL", "")
	v.SetDefault("PAYLOAD_API_KEY", "")
	v.SetDefault("PAYLOAD_TIMEOUT", "30s")
	v.SetDefault("PAYLOAD_REQUESTS_PER_SECOND", 10)
	v.SetDefault("PAYLOAD_BURST", 20)

	v.SetDefault("DASHBOARD_STATS_PAGE_SIZE", 1000)
	v.SetDefault("DASHBOARD_RECENT_ORDERS_LIMIT", 10)
	v.SetDefault("DASHBOARD_LIST_PAGE_SIZE", 100)
	v.SetDefault("DASHBOARD_ANALYTICS_DEFAULT_DAYS", 30)

	v.SetDefault("DAILY_DIGEST_CRON", "55 23 * * *") // Todos os dias às 23h55, antes da virada do período
	v.SetDefault("DAILY_DIGEST_ENABLED", false)

	v.SetDefault("API_RATE_LIMIT_PER_SECOND", 5)
	v.SetDefault("API_RATE_LIMIT_BURST", 10)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	v := viper.GetViper()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return Load(v)
}

// Load decodifica e valida a configuração a partir de uma instância do viper
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Payload.URL = strings.TrimRight(config.Payload.URL, "/")

	return config, nil
}

// Validate falha rápido quando a URL base do Payload não foi configurada
func (c *Config) Validate() error {
	raw := strings.TrimSpace(c.Payload.URL)
	if raw == "" {
		return ErrPayloadURLRequired
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrPayloadURLInvalid, raw)
	}

	if c.Dashboard.StatsPageSize <= 0 || c.Dashboard.RecentOrdersLimit <= 0 || c.Dashboard.ListPageSize <= 0 {
		return errors.New("config: dashboard page sizes must be positive")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
