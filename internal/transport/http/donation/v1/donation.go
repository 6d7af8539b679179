package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"

	donationv1 "github.com/you-humble/donation-checkout/internal/api/donation/v1"
	"github.com/you-humble/donation-checkout/internal/converter"
	"github.com/you-humble/donation-checkout/internal/model"
	"github.com/you-humble/donation-checkout/platform/logger"
)

const maxBodyBytes = 1 << 20

type DonationService interface {
	CreateCheckout(ctx context.Context, req model.DonationRequest) (model.CheckoutResult, error)
}

type VerificationService interface {
	IsPaid(ctx context.Context, orderID string) (bool, error)
}

type WebhookService interface {
	Handle(ctx context.Context, body []byte) error
}

type RedirectPages struct {
	Success string
	Error   string
}

type handler struct {
	donations DonationService
	verifier  VerificationService
	webhooks  WebhookService
	pages     RedirectPages
}

func NewDonationHandler(
	donations DonationService,
	verifier VerificationService,
	webhooks WebhookService,
	pages RedirectPages,
) *handler {
	return &handler{
		donations: donations,
		verifier:  verifier,
		webhooks:  webhooks,
		pages:     pages,
	}
}

// POST /create-donation-order
func (h *handler) CreateDonationOrder(w http.ResponseWriter, r *http.Request) {
	var req donationv1.CreateDonationOrderRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(r.Context(), w, http.StatusBadRequest, donationv1.ErrorResponse{Error: "invalid JSON body"})
		return
	}

	params, err := converter.CreateDonationOrderRequestToModel(&req, clientIP(r))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	res, err := h.donations.CreateCheckout(r.Context(), params)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, converter.CheckoutResultToResponse(res))
}

// GET /cartpanda_return?order_id=
func (h *handler) CartPandaReturn(w http.ResponseWriter, r *http.Request) {
	paid, err := h.verifier.IsPaid(r.Context(), r.URL.Query().Get("order_id"))
	if err != nil || !paid {
		http.Redirect(w, r, h.pages.Error, http.StatusFound)
		return
	}

	http.Redirect(w, r, h.pages.Success, http.StatusFound)
}

// POST /cartpanda-webhook
func (h *handler) CartPandaWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		logger.Error(r.Context(), "read webhook body", logger.ErrorF(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := h.webhooks.Handle(r.Context(), body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(ctx, w, http.StatusBadRequest, donationv1.ErrorResponse{Error: verr.Message})
	case errors.Is(err, model.ErrValidation):
		writeJSON(ctx, w, http.StatusBadRequest, donationv1.ErrorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrCheckoutURLMissing):
		writeJSON(ctx, w, http.StatusInternalServerError, donationv1.ErrorResponse{
			Error: "checkout provider did not return a checkout URL",
		})
	case errors.Is(err, model.ErrBadGateway):
		writeJSON(ctx, w, http.StatusInternalServerError, donationv1.ErrorResponse{
			Error: "failed to create checkout order",
		})
	default:
		logger.Error(ctx, "unexpected error", logger.ErrorF(err))
		writeJSON(ctx, w, http.StatusInternalServerError, donationv1.ErrorResponse{
			Error: "internal server error",
		})
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "write response", logger.ErrorF(err))
	}
}

// clientIP expects chi's RealIP middleware to have rewritten RemoteAddr
// when the service runs behind a proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
