package api

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultListenAddr matches the address the service has always listened on.
	DefaultListenAddr = "127.0.0.1:3000"

	// MaxInFlightRequests bounds the requests admitted into the pipeline at once.
	MaxInFlightRequests = 1024

	// RequestTimeout bounds each request from pipeline entry.
	RequestTimeout = 10 * time.Second
)

// HTTPServerConfig contains all configuration parameters for the HTTP server.
type HTTPServerConfig struct {
	// ListenAddr is the address and port the HTTP server will listen on.
	ListenAddr string `validate:"required,hostname_port"`

	// MetricsAddr is the address and port for the metrics server.
	// If empty, metrics server will not be started.
	MetricsAddr string `validate:"omitempty,hostname_port"`

	// EnablePprof enables the pprof debugging API when true.
	EnablePprof bool

	// Log is the structured logger for server operations.
	Log *slog.Logger `validate:"required"`

	// MaxInFlight is the admission limit. Requests beyond it are shed with 503.
	MaxInFlight int64 `validate:"gt=0"`

	// RequestTimeout bounds handler execution. Exceeding it yields 408.
	RequestTimeout time.Duration `validate:"gt=0"`

	// DrainDuration is the time to wait after marking server not ready
	// before shutting down, allowing load balancers to detect the change.
	DrainDuration time.Duration `validate:"gte=0"`

	// GracefulShutdownDuration is the maximum time to wait for in-flight
	// requests to complete during shutdown.
	GracefulShutdownDuration time.Duration `validate:"gt=0"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body.
	ReadTimeout time.Duration `validate:"gt=0"`

	// WriteTimeout is the maximum duration before timing out writes of
	// the response. It must leave room for RequestTimeout.
	WriteTimeout time.Duration `validate:"gtfield=RequestTimeout"`
}

var configValidator = validator.New()

// Validate checks the configuration before the server is built.
func (cfg *HTTPServerConfig) Validate() error {
	if err := configValidator.Struct(cfg); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}
	return nil
}
