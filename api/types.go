package api

import (
	"github.com/ruteri/fee-recipient-registry/interfaces"
)

const (
	// MaxBodySize is the largest accepted payout address upload.
	MaxBodySize = 1024 * 5_000

	// HealthcheckResponse is returned by GET /healthcheck.
	HealthcheckResponse = "Application is live"

	// InsertedResponse confirms a successful POST /api/pubkey/{pubkey}.
	InsertedResponse = "Inserted"
)

// Route patterns served by the handlers.
const (
	HealthcheckPath = "/healthcheck"
	PubkeyPath      = "/api/pubkey/{pubkey}"
	ListPath        = "/api/mev"
)

// PayoutMap is the body of GET /api/mev: normalized validator keys mapped to
// normalized payout addresses.
type PayoutMap map[interfaces.ValidatorKey]interfaces.PayoutAddress
