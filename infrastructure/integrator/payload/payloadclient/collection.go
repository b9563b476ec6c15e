package payloadclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/storefront-dashboard-api/infrastructure/integrator/payload/payloaddomain"
	"github.com/vfg2006/storefront-dashboard-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxErrorBody = 512

func (c *PayloadClient) Find(ctx context.Context, collection string, query Query) (*payloaddomain.Envelope, error) {
	body, err := c.do(ctx, http.MethodGet, collection, "", query.Values(), nil)
	if err != nil {
		return nil, err
	}

	var envelope payloaddomain.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrapf(ErrMalformedResponse, "decode %s envelope: %v", collection, err)
	}

	// docs ausente é tratado como lista vazia
	if envelope.Docs == nil {
		envelope.Docs = []payloaddomain.RawDocument{}
	}

	return &envelope, nil
}

func (c *PayloadClient) FindByID(ctx context.Context, collection, id string) (payloaddomain.RawDocument, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, collection, id, nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeDocument(collection, body, false)
}

func (c *PayloadClient) Create(ctx context.Context, collection string, data map[string]any) (payloaddomain.RawDocument, error) {
	body, err := c.do(ctx, http.MethodPost, collection, "", nil, data)
	if err != nil {
		return nil, err
	}

	return decodeDocument(collection, body, true)
}

func (c *PayloadClient) Update(ctx context.Context, collection, id string, data map[string]any) (payloaddomain.RawDocument, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPatch, collection, id, nil, data)
	if err != nil {
		return nil, err
	}

	return decodeDocument(collection, body, true)
}

func (c *PayloadClient) Delete(ctx context.Context, collection, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	_, err := c.do(ctx, http.MethodDelete, collection, id, nil, nil)
	return err
}

// validateID garante que o ID ocupa exatamente um segmento abaixo da coleção
func validateID(id string) error {
	if id == "" || id == "." || id == ".." || strings.Contains(id, "/") {
		return errors.Wrapf(ErrInvalidID, "%q", id)
	}
	return nil
}

// decodeDocument lê um documento simples ou, em respostas de escrita, o campo "doc" do envelope
func decodeDocument(collection string, body []byte, unwrapDoc bool) (payloaddomain.RawDocument, error) {
	var doc payloaddomain.RawDocument
	if err := json.Unmarshal(body, &doc); err != nil || doc == nil {
		return nil, errors.Wrapf(ErrMalformedResponse, "decode %s document: %v", collection, err)
	}

	if unwrapDoc {
		if inner, ok := doc["doc"].(map[string]any); ok {
			return payloaddomain.RawDocument(inner), nil
		}
	}

	return doc, nil
}

func (c *PayloadClient) do(
	ctx context.Context,
	method string,
	collection string,
	id string,
	query url.Values,
	payload map[string]any,
) (body []byte, err error) {
	started := time.Now()
	defer func() {
		metrics.ObservePayloadRequest(collection, method, started, err)
	}()

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "payload: invalid base URL")
	}
	segments := []string{collection}
	if id != "" {
		segments = append(segments, url.PathEscape(id))
	}
	endpoint = endpoint.JoinPath(segments...)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "payload: encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrapf(ErrTransport, "rate limiter: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "payload: create request")
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "users API-Key "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrTransport, "%s %s: %v", method, endpoint.Path, err)
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(ErrTransport, "read %s %s: %v", method, endpoint.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &StatusError{
			Method:     method,
			Path:       endpoint.Path,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
