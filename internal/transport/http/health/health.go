package health

import (
	"encoding/json"
	"net/http"

	donationv1 "github.com/you-humble/donation-checkout/internal/api/donation/v1"
	"github.com/you-humble/donation-checkout/platform/logger"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(donationv1.HealthResponse{Status: "OK"}); err != nil {
		logger.Error(r.Context(), "health check", logger.ErrorF(err))
	}
}
