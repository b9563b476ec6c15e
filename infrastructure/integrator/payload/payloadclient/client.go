package payloadclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/storefront-dashboard-api/infrastructure/integrator/payload/payloaddomain"
	"github.com/vfg2006/storefront-dashboard-api/internal/config"
	"golang.org/x/time/rate"
)

// Client é o contrato da API de coleções do Payload
type Client interface {
	Find(ctx context.Context, collection string, query Query) (*payloaddomain.Envelope, error)
	FindByID(ctx context.Context, collection, id string) (payloaddomain.RawDocument, error)
	Create(ctx context.Context, collection string, data map[string]any) (payloaddomain.RawDocument, error)
	Update(ctx context.Context, collection, id string, data map[string]any) (payloaddomain.RawDocument, error)
	Delete(ctx context.Context, collection, id string) error
}

type PayloadClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient cria o cliente a partir da configuração já validada (URL base obrigatória)
func NewClient(cfg *config.Config) Client {
	limit := rate.Inf
	if cfg.Payload.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.Payload.RequestsPerSecond)
	}

	burst := cfg.Payload.Burst
	if burst <= 0 {
		burst = 1
	}

	return &PayloadClient{
		httpClient: &http.Client{
			Timeout: cfg.Payload.Timeout,
		},
		baseURL: strings.TrimRight(cfg.Payload.URL, "/"),
		apiKey:  cfg.Payload.APIKey,
		limiter: rate.NewLimiter(limit, burst),
	}
}
