package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ruteri/fee-recipient-registry/api"
	"github.com/ruteri/fee-recipient-registry/interfaces"
)

var errBodyTooLarge = fmt.Errorf("request body exceeds %d bytes", api.MaxBodySize)

// Handler serves the fee recipient registry API. The registry is injected
// so the handler can be exercised without a transport.
type Handler struct {
	registry interfaces.Registry
	log      *slog.Logger
}

// NewHandler creates a new HTTP request handler backed by registry.
func NewHandler(registry interfaces.Registry, log *slog.Logger) *Handler {
	return &Handler{
		registry: registry,
		log:      log,
	}
}

// RegisterRoutes configures the HTTP router with the registry endpoints:
//   - GET /healthcheck
//   - GET /api/pubkey/{pubkey}
//   - POST /api/pubkey/{pubkey}
//   - GET /api/mev
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get(api.HealthcheckPath, h.HandleHealthcheck)
	r.Get(api.PubkeyPath, h.HandleGetPayout)
	r.Post(api.PubkeyPath, h.HandleSetPayout)
	r.Get(api.ListPath, h.HandleListPayouts)
}

// HandleHealthcheck reports liveness. It never touches the registry.
func (h *Handler) HandleHealthcheck(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, api.HealthcheckResponse)
}

// HandleGetPayout returns the payout address registered for a validator.
//
// URL format: GET /api/pubkey/{pubkey}
//
// Status codes:
//   - 200 OK: plain-text normalized payout address
//   - 400 Bad Request: pubkey fails validation
//   - 404 Not Found: pubkey has no registered address
func (h *Handler) HandleGetPayout(w http.ResponseWriter, r *http.Request) {
	key, err := interfaces.NewValidatorKey(pubkeyParam(r))
	if err != nil {
		h.log.Debug("Invalid pubkey", "err", err)
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	address, found := h.registry.Get(key)
	if !found {
		writeError(w, r, http.StatusNotFound, fmt.Errorf("no payout address registered for %s", key))
		return
	}

	render.PlainText(w, r, address.String())
}

// HandleSetPayout registers or replaces the payout address of a validator.
//
// URL format: POST /api/pubkey/{pubkey}
//
// Request body: the payout address as raw text, at most api.MaxBodySize bytes.
//
// Status codes:
//   - 200 OK: "Inserted"
//   - 400 Bad Request: pubkey or address fails validation
//   - 413 Request Entity Too Large: body exceeds api.MaxBodySize
//
// Both inputs are validated before the registry is written, so a failed
// request never leaves a partial entry.
func (h *Handler) HandleSetPayout(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > api.MaxBodySize {
		writeError(w, r, http.StatusRequestEntityTooLarge, errBodyTooLarge)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, api.MaxBodySize))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, http.StatusRequestEntityTooLarge, errBodyTooLarge)
			return
		}
		h.log.Warn("Failed to read request body", "err", err)
		writeError(w, r, http.StatusBadRequest, errors.New("failed to read request body"))
		return
	}

	key, err := interfaces.NewValidatorKey(pubkeyParam(r))
	if err != nil {
		h.log.Debug("Invalid pubkey", "err", err)
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	address, err := interfaces.NewPayoutAddress(string(body))
	if err != nil {
		h.log.Debug("Invalid payout address", "err", err, "pubkey", key.String())
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	h.registry.Set(key, address)
	h.log.Info("Payout address registered", "pubkey", key.String(), "address", address.String())

	render.PlainText(w, r, api.InsertedResponse)
}

// HandleListPayouts returns every registered entry as a JSON object.
//
// URL format: GET /api/mev
//
// The snapshot is taken first and encoded afterwards, so encoding never
// holds the registry lock.
func (h *Handler) HandleListPayouts(w http.ResponseWriter, r *http.Request) {
	snapshot := api.PayoutMap(h.registry.Snapshot())
	render.JSON(w, r, snapshot)
}

// pubkeyParam returns the decoded pubkey path segment. chi routes on the
// escaped path when one is set, so the parameter may still carry escapes.
func pubkeyParam(r *http.Request) string {
	raw := chi.URLParam(r, "pubkey")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.PlainText(w, r, err.Error())
}
