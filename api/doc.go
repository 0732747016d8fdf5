// Package api holds the types shared by the fee recipient registry server,
// its handlers and its clients: server configuration, route patterns,
// response bodies and protocol constants.
//
// HTTP surface:
//
//	GET  /healthcheck          200 "Application is live"
//	GET  /api/pubkey/{pubkey}  200 normalized address, 400 invalid key, 404 unknown key
//	POST /api/pubkey/{pubkey}  200 "Inserted", 400 invalid key or address, 413 body too large
//	GET  /api/mev              200 JSON object of key to address
//
// Every route may additionally answer 408 when the request exceeds
// RequestTimeout, 503 when MaxInFlightRequests requests are already being
// served, and 500 on an unhandled internal failure.
package api
