package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitcoach-io/fitcoach/internal/analysis"
	"github.com/fitcoach-io/fitcoach/internal/auth"
	"github.com/fitcoach-io/fitcoach/internal/checkout"
	"github.com/fitcoach-io/fitcoach/internal/diet"
	"github.com/fitcoach-io/fitcoach/internal/models"
	"github.com/fitcoach-io/fitcoach/internal/subscription"
	"github.com/fitcoach-io/fitcoach/internal/workout"
	log "github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{"error": msg})
}

// paymentRequired routes the client to the plan flow.
func paymentRequired(w http.ResponseWriter, feature string) {
	writeJSON(w, http.StatusPaymentRequired, map[string]interface{}{
		"error":   "subscription_required",
		"feature": feature,
		"plans":   subscription.Catalog(),
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}

// writeServiceError maps domain errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var fields models.FieldErrors
	switch {
	case errors.As(err, &fields):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation_failed",
			"fields": fields,
		})
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, diet.ErrMealNotFound),
		errors.Is(err, analysis.ErrVideoNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, auth.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, subscription.ErrNoSubscription),
		errors.Is(err, subscription.ErrLimitReached):
		paymentRequired(w, "plans")
	case errors.Is(err, subscription.ErrDowngradeLocked),
		errors.Is(err, checkout.ErrInvalidTransition),
		errors.Is(err, checkout.ErrNoCheckout):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, checkout.ErrPaymentDeclined):
		writeError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, checkout.ErrOrderExpired):
		writeError(w, http.StatusGone, err.Error())
	case errors.Is(err, analysis.ErrFileTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, analysis.ErrUnsupportedFileType):
		writeError(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, subscription.ErrNotLowerTier),
		errors.Is(err, checkout.ErrUnknownPlan),
		errors.Is(err, diet.ErrEmptyChange),
		errors.Is(err, diet.ErrInvalidMealCount),
		errors.Is(err, analysis.ErrNoPhotos),
		errors.Is(err, workout.ErrUnknownDay),
		errors.Is(err, workout.ErrUnknownExercise),
		errors.Is(err, workout.ErrUnknownSet):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).Error("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
