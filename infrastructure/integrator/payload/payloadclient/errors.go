package payloadclient

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrTransport indica falha de rede, timeout ou cancelamento
	ErrTransport = errors.New("payload: transport failure")
	// ErrMalformedResponse indica corpo ausente ou fora do formato esperado
	ErrMalformedResponse = errors.New("payload: malformed response")
	// ErrInvalidID indica um ID que não pode ser usado como segmento de caminho
	ErrInvalidID = errors.New("payload: invalid document ID")
)

// StatusError é devolvido quando o Payload responde com status fora da faixa 2xx
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("payload: %s %s failed with status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// IsNotFound indica se o erro é um 404 do Payload
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == 404
}
