/*
Package handlers implements request processing for the fee recipient registry.

Handler maps the HTTP operations onto an injected interfaces.Registry:

  - GET /healthcheck - fixed liveness text, no registry access
  - GET /api/pubkey/{pubkey} - read one payout address
  - POST /api/pubkey/{pubkey} - write one payout address from the raw body
  - GET /api/mev - read every entry as a JSON object

# Validation

Path parameters and bodies are parsed with interfaces.NewValidatorKey and
interfaces.NewPayoutAddress. Validation failures answer 400 with the
validator's message, for example "The length of pubkey should be 98".
Uploads larger than api.MaxBodySize are refused with 413 before any
validation runs.

# Concurrency

Handlers hold no state of their own. All validation and JSON encoding
happens outside the registry lock; each handler performs exactly one
registry call.

Timeouts, admission limits and panic recovery are applied by the
httpserver package around these handlers.
*/
package handlers
