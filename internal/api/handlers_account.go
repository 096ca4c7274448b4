package api

import (
	"net/http"

	"github.com/fitcoach-io/fitcoach/internal/analysis"
	"github.com/fitcoach-io/fitcoach/internal/auth"
	"github.com/fitcoach-io/fitcoach/internal/models"
	"github.com/fitcoach-io/fitcoach/internal/storage"
	"github.com/fitcoach-io/fitcoach/internal/subscription"
)

func (api *Api) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req auth.Registration
	if !decodeJSON(w, r, &req) {
		return
	}

	user, token, err := api.auth.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"token": token, "user": user})
}

func (api *Api) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	user, token, err := api.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"token": token, "user": user})
}

func (api *Api) CatalogHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"plans": subscription.Catalog()})
}

func (api *Api) MeHandler(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":         u,
		"entitlements": subscription.Evaluate(u, api.now()),
	})
}

func (api *Api) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	var p models.Profile
	if !decodeJSON(w, r, &p) {
		return
	}
	if err := p.Validate(); err != nil {
		writeServiceError(w, err)
		return
	}
	if p.ProfilePhoto == "" && u.Profile != nil {
		p.ProfilePhoto = u.Profile.ProfilePhoto
	}

	u.Profile = &p
	u.UpdatedAt = api.now()
	if err := api.store.SaveUser(r.Context(), u); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": u})
}

func (api *Api) ProfilePhotoHandler(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	r.Body = http.MaxBytesReader(w, r.Body, analysis.MaxProfilePhotoSize+1<<20)
	file, header, ok := formFile(w, r, "photo")
	if !ok {
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if err := analysis.ValidateImage(contentType, header.Size, analysis.MaxProfilePhotoSize); err != nil {
		writeServiceError(w, err)
		return
	}

	url, err := api.objects.Put(r.Context(), storage.PhotoKey(u.ID, "profile", header.Filename), file, header.Size, contentType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if u.Profile == nil {
		u.Profile = &models.Profile{}
	}
	u.Profile.ProfilePhoto = url
	u.UpdatedAt = api.now()
	if err := api.store.SaveUser(r.Context(), u); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"profilePhoto": url})
}

func (api *Api) SubscriptionHandler(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	now := api.now()

	resp := map[string]interface{}{
		"subscription": u.Subscription,
		"active":       subscription.HasActiveSubscription(u, now),
		"limits":       subscription.GetSubscriptionLimits(u, now),
		"usage":        subscription.GetUsageStatus(u, now),
		"canDowngrade": subscription.CanDowngrade(u, now),
	}
	if u.Subscription != nil {
		if plan, ok := subscription.Plan(u.Subscription.Plan); ok {
			resp["plan"] = plan
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (api *Api) DowngradeHandler(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	var req struct {
		Plan string `json:"plan"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	target, err := models.ParsePlanID(req.Plan)
	if err != nil {
		writeServiceError(w, models.FieldErrors{"plan": err.Error()})
		return
	}

	now := api.now()
	if err := subscription.Downgrade(u, target, now); err != nil {
		writeServiceError(w, err)
		return
	}
	u.UpdatedAt = now
	if err := api.store.SaveUser(r.Context(), u); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"subscription": u.Subscription})
}
