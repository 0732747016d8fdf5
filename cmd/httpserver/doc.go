// Package main (cmd/httpserver) runs the fee recipient registry server.
//
// The server keeps a volatile, in-memory mapping from validator BLS public
// keys to payout addresses and exposes it over HTTP. Restarting the process
// loses every entry.
//
// Configuration is handled through command-line flags. Log verbosity can
// also be raised with the LOG_DEBUG environment variable.
//
// The server implements graceful shutdown on receiving termination signals
// (SIGINT/SIGTERM) and supports health checks, Prometheus metrics and
// optional profiling endpoints.
//
// Example usage:
//
//	fee-recipient-registry --listen-addr=127.0.0.1:3000 \
//	    --metrics-addr=127.0.0.1:8090 \
//	    --log-json
package main
