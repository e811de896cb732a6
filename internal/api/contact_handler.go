package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mzimmersmith/portfolio-api/internal/contact"
	"github.com/mzimmersmith/portfolio-api/internal/dispatch"
	"github.com/mzimmersmith/portfolio-api/internal/pkg/logger"
	"github.com/mzimmersmith/portfolio-api/internal/ratelimit"
)

const (
	errInvalidPayload  = "Invalid payload"
	errRateLimited     = "You may only submit one message every 24 hours."
	errSendFallback    = "Failed to send email"
	errInternalGeneric = "Internal Server Error"
)

// HandleContact relays one contact-form submission to the email provider.
//
//	POST /api/contact
//
// Responses: 200 {id}, 400/405/429/500/502 {error}. Nothing after the
// method gate can escape: panics and unexpected errors are converted to a
// 500 here so the transport layer never sees them.
func (h *Handlers) HandleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("contact handler panic", "panic", rec)
			if err, ok := rec.(error); ok {
				respondError(w, http.StatusInternalServerError, err.Error())
				return
			}
			respondError(w, http.StatusInternalServerError, errInternalGeneric)
		}
	}()

	// A missing or malformed body is treated as an empty submission and
	// fails validation like any other bad payload.
	var sub contact.Submission
	_ = json.NewDecoder(r.Body).Decode(&sub)
	sub = sub.Normalize()

	if !sub.Valid() {
		respondError(w, http.StatusBadRequest, errInvalidPayload)
		return
	}

	ctx := r.Context()
	identifier := ratelimit.Identify(r, sub.Email)

	limited, err := h.limiter.Check(ctx, identifier)
	if err != nil {
		h.respondInternal(w, err)
		return
	}
	if limited {
		respondError(w, http.StatusTooManyRequests, errRateLimited)
		return
	}

	result, err := h.dispatcher.Send(ctx, &dispatch.Message{
		From:    h.contact.From,
		To:      h.contact.To,
		Subject: sub.DeriveSubject(),
		HTML:    sub.BodyHTML(),
		ReplyTo: sub.Email,
	})
	if err != nil {
		var provErr *dispatch.ProviderError
		if errors.As(err, &provErr) {
			// Provider-reported failure. The quota is not consumed so the
			// sender can retry once the provider recovers.
			logger.Warn("email provider rejected dispatch",
				"status", provErr.StatusCode, "error", provErr.Message)
			msg := provErr.Message
			if msg == "" {
				msg = errSendFallback
			}
			respondError(w, http.StatusBadGateway, msg)
			return
		}
		h.respondInternal(w, err)
		return
	}

	// Only a confirmed send consumes the 24h quota.
	if err := h.limiter.Record(ctx, identifier); err != nil {
		h.respondInternal(w, err)
		return
	}

	logger.Info("contact submission relayed", "id", result.ID, "reply_to", sub.Email)

	id := result.ID
	if id == "" {
		id = "ok"
	}
	respondJSON(w, http.StatusOK, map[string]string{"id": id})
}

// respondInternal logs the raw error and answers 500 with its message.
// ratelimit.ErrNoSalt deliberately keeps its distinct text so operators can
// spot the misconfiguration immediately.
func (h *Handlers) respondInternal(w http.ResponseWriter, err error) {
	logger.Error("contact handler error", "error", err)
	respondError(w, http.StatusInternalServerError, err.Error())
}
