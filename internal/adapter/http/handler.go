package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fundraise-ledger/internal/core/domain"
	"fundraise-ledger/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the fundraise use case and a logger for structured logging. Routes
// are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc    port.FundraiseUseCase
	logger *slog.Logger
	router chi.Router
	now    func() time.Time
	// nonces holds the signed request nonces accepted per account.
	nonces *cache.Cache
}

// NewHandler creates a handler with all routes configured. Mutating routes
// sit behind signed request authentication; reads are public.
func NewHandler(svc port.FundraiseUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger, now: time.Now, nonces: newNonceCache()}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/fundraises/{id}", h.handleGetFundraise)
		r.Get("/fundraises/{id}/events", h.handleEvents)
		r.Get("/creators/{address}/fundraises", h.handleCreatorFundraises)
		r.Get("/price/eth", h.handleEthPrice)
		r.Get("/price/convert", h.handleConvert)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)
			r.Post("/fundraises", h.handleCreateFundraise)
			r.Post("/fundraises/{id}/fund", h.handleFund)
			r.Post("/fundraises/{id}/withdraw", h.handleWithdraw)
		})
	})
	r.Handle("/metrics", promhttp.Handler())
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

var statuses = []struct {
	err    error
	status int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrNotFundraiseOwner, http.StatusForbidden},
	{domain.ErrCannotWithdraw, http.StatusConflict},
	{domain.ErrAlreadyWithdrawn, http.StatusConflict},
	{domain.ErrInvalidTarget, http.StatusBadRequest},
	{domain.ErrTransferPending, http.StatusAccepted},
	{domain.ErrTransferFailed, http.StatusPaymentRequired},
	{domain.ErrOracleUnavailable, http.StatusServiceUnavailable},
	{domain.ErrArithmeticOverflow, http.StatusUnprocessableEntity},
}

// statusFor maps a ledger error kind to an HTTP status.
func statusFor(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Internal errors
// are not echoed to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		http.Error(w, "internal error", status)
		return
	}
	h.logger.Debug("request rejected",
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err))
	http.Error(w, err.Error(), status)
}

// writeEvent answers with the event of a mutating call. A call whose transfer
// is still unconfirmed was recorded and answers 202 with its event.
func (h *Handler) writeEvent(w http.ResponseWriter, r *http.Request, ev domain.Event, err error) {
	if err != nil && (!errors.Is(err, domain.ErrTransferPending) || ev.ID == uuid.Nil) {
		h.writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if err != nil {
		h.logger.Warn("transfer not confirmed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		status = http.StatusAccepted
	}
	h.writeJSON(w, status, toEventResponse(ev))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
