/*
Package httpserver implements the HTTP server of the fee recipient registry.

It mounts the handlers from api/handlers behind a resilience pipeline and
runs a separate Prometheus metrics listener.

# Request Pipeline

Every API and health route passes through, from the outside in:

 1. Request logging (flashbots go-utils httplogger)
 2. Recoverer - a handler panic becomes 500 "Unhandled internal error: ..."
 3. LoadShedder - at most MaxInFlight requests run at once; the next one is
    refused immediately with 503 "service is overloaded, try again later"
 4. Timeout - each request is bounded by RequestTimeout from pipeline entry;
    on expiry the client receives 408 "request timed out"

A request is either shed or admitted, and an admitted request either
completes or times out. Timing out does not undo a registry write the
handler already made; the client simply never sees the confirmation.
WritePipelineError is the single translation point from pipeline
conditions to status codes.

# Endpoints

  - GET /healthcheck - Liveness text served by the registry handler
  - GET|POST /api/pubkey/{pubkey} - Read or write one payout address
  - GET /api/mev - All registered payout addresses
  - GET /livez - Liveness check
  - GET /readyz - Readiness check, 503 while draining or saturated
  - GET /drain - Gracefully mark server as not ready
  - GET /undrain - Mark server as ready
  - /debug/* - pprof, only with EnablePprof, outside the pipeline

Example usage:

	reg := registry.NewMemoryRegistry()
	handler := handlers.NewHandler(reg, logger)

	cfg := &api.HTTPServerConfig{
		ListenAddr:               api.DefaultListenAddr,
		MetricsAddr:              "127.0.0.1:8090",
		Log:                      logger,
		MaxInFlight:              api.MaxInFlightRequests,
		RequestTimeout:           api.RequestTimeout,
		DrainDuration:            45 * time.Second,
		GracefulShutdownDuration: 30 * time.Second,
		ReadTimeout:              60 * time.Second,
		WriteTimeout:             30 * time.Second,
	}

	srv, err := httpserver.New(cfg, handler, reg)
	if err != nil {
		return err
	}
	srv.RunInBackground()
	defer srv.Shutdown()
*/
package httpserver
