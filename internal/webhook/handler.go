package webhook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wisepayru/banking/internal/auth"
	"github.com/wisepayru/banking/internal/event"
	"github.com/wisepayru/banking/internal/sink"
	"github.com/wisepayru/banking/pkg/httpx"
)

const maxWebhookBodyBytes = 1 << 20 // 1MB

// Handler routes provider webhooks: authenticate, decode, hand off, ack.
// Each request is fully synchronous and touches no mutable shared state.
type Handler struct {
	auth   *auth.Authenticator
	sink   sink.Sink
	logger *slog.Logger
}

func NewHandler(a *auth.Authenticator, s sink.Sink, logger *slog.Logger) *Handler {
	return &Handler{auth: a, sink: s, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/tbank/oper-feed-operation", h.HandleOperationFeed)
	r.Post("/tbank/payment-status", h.HandlePaymentStatus)
}

// HandleOperationFeed receives notifications about new incoming payments on
// the company accounts.
func (h *Handler) HandleOperationFeed(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, event.KindOperationFeed, "operationId", func(body []byte) (event.Event, error) {
		return event.DecodeOperationFeed(body)
	})
}

// HandlePaymentStatus receives status updates on payments that were made via
// the provider API.
func (h *Handler) HandlePaymentStatus(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, event.KindPaymentStatus, "paymentId", func(body []byte) (event.Event, error) {
		return event.DecodePaymentStatus(body)
	})
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, category, idField string, decode func([]byte) (event.Event, error)) {
	// Reject before touching the body: no parsing work for unauthorized callers.
	if err := h.auth.Authenticate(r.Header.Get("Authorization")); err != nil {
		w.Header().Set("WWW-Authenticate", "Bearer")
		httpx.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid authentication token", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpx.WriteError(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "payload exceeds 1MB limit", nil)
			return
		}
		httpx.WriteError(w, http.StatusBadRequest, "BAD_BODY", "failed to read request body", nil)
		return
	}

	evt, err := decode(body)
	if err != nil {
		var se *event.SchemaError
		if errors.As(err, &se) {
			httpx.WriteError(w, http.StatusUnprocessableEntity, "SCHEMA_VIOLATION", se.Error(), map[string]any{"field": se.Field})
			return
		}
		httpx.WriteError(w, http.StatusUnprocessableEntity, "SCHEMA_VIOLATION", "invalid payload", nil)
		return
	}

	if err := h.deliver(r.Context(), evt); err != nil {
		h.logger.ErrorContext(r.Context(), "sink hand-off failed",
			"category", category, "id", evt.ID(), "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "PROCESSING_ERROR",
			fmt.Sprintf("error while processing '%s' webhook", category), nil)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": fmt.Sprintf("'%s' webhook has been received and processed", category),
		idField:   evt.ID(),
	})
}

// deliver isolates the sink call: a panic inside the sink must not cross the
// handler boundary, it is converted into an ordinary processing failure.
func (h *Handler) deliver(ctx context.Context, evt event.Event) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("sink panic: %v", p)
		}
	}()
	return h.sink.Receive(ctx, evt)
}
