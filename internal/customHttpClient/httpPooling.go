package customHttpClient

import (
	"net/http"

	"github.com/akolanti/PolicyAPI/internal/config"
)

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

// GetPooledClient reuses connections across the per-chunk analysis calls. The
// fan-out hits the same LLM host dozens of times per document, so fresh TLS
// handshakes per call would dominate latency.
func GetPooledClient() *http.Client {
	return &http.Client{Transport: customTransport}
}
