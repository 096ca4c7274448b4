package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/auth"
	"github.com/fitcoach-io/fitcoach/internal/models"
	"github.com/fitcoach-io/fitcoach/internal/subscription"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

type ctxKey int

const userKey ctxKey = iota

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.WithFields(log.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start),
			"request_id": middleware.GetReqID(r.Context()),
		}).Info("request")
	})
}

// loadUser resolves the token's user and brings their subscription up to
// date before any handler looks at it.
func (api *Api) loadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.GetUserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		u, err := api.store.GetUser(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		now := api.now()
		if subscription.Refresh(u, now) {
			u.UpdatedAt = now
			if err := api.store.SaveUser(r.Context(), u); err != nil {
				log.WithError(err).WithField("user_id", u.ID).Warn("failed to save refreshed subscription")
			}
		}

		ctx := context.WithValue(r.Context(), userKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func currentUser(r *http.Request) *models.User {
	u, _ := r.Context().Value(userKey).(*models.User)
	return u
}

// requireEntitlement answers 402 when check fails for the current user.
func (api *Api) requireEntitlement(feature string, check func(*models.User, time.Time) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !check(currentUser(r), api.now()) {
				paymentRequired(w, feature)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
