package httpapi

import (
	"time"

	"github.com/valyala/fasthttp"
)

// ServerConfig holds the fasthttp server settings.
type ServerConfig struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestSize int
	Concurrency    int // 0 means the fasthttp default
}

// NewServer creates a fasthttp server serving h.
func NewServer(h *Handler, cfg ServerConfig) *fasthttp.Server {
	return &fasthttp.Server{
		Handler:               h.HandleRequest,
		Name:                  "PalindromeServer",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		MaxRequestBodySize:    cfg.MaxRequestSize,
		Concurrency:           cfg.Concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
		Logger:                nil, // requests are logged by the handler
	}
}
