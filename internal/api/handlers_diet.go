package api

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/fitcoach-io/fitcoach/internal/analysis"
	"github.com/fitcoach-io/fitcoach/internal/models"
	"github.com/fitcoach-io/fitcoach/internal/subscription"
	"github.com/fitcoach-io/fitcoach/internal/workout"
	log "github.com/sirupsen/logrus"
)

// formFile reads one multipart file, answering 413 when the body limit
// was hit and 400 when the field is missing.
func formFile(w http.ResponseWriter, r *http.Request, field string) (multipart.File, *multipart.FileHeader, bool) {
	file, header, err := r.FormFile(field)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeServiceError(w, analysis.ErrFileTooLarge)
			return nil, nil, false
		}
		writeError(w, http.StatusBadRequest, field+" file is required")
		return nil, nil, false
	}
	return file, header, true
}

// GeneratePlansHandler builds whichever of diet and workout the user's
// quota still allows.
func (api *Api) GeneratePlansHandler(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	now := api.now()

	var req struct {
		Meals []models.MealEntry `json:"meals"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if u.Profile == nil {
		writeServiceError(w, models.FieldErrors{"profile": "Complete seu perfil antes de gerar o plano"})
		return
	}
	var logged []models.MealEntry
	for _, m := range req.Meals {
		if m.Validate() == nil {
			logged = append(logged, m)
		}
	}
	if len(logged) == 0 {
		writeServiceError(w, models.FieldErrors{"meals": "Adicione pelo menos uma refeição completa"})
		return
	}

	if !subscription.HasActiveSubscription(u, now) {
		paymentRequired(w, "plans")
		return
	}
	canDiet := subscription.CanUseDiet(u, now)
	canWorkout := subscription.CanUseWorkout(u, now)
	if !canDiet && !canWorkout {
		paymentRequired(w, "plan_generation")
		return
	}

	resp := map[string]interface{}{}
	if canDiet {
		plan, err := api.diet.Generate(r.Context(), u, logged)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if err := subscription.RecordDietUse(u, now); err != nil {
			writeServiceError(w, err)
			return
		}
		resp["diet"] = plan
	}
	if canWorkout {
		plan := workout.Generate(u.ID, u.Profile, now)
		if err := api.store.UpsertWorkoutPlan(r.Context(), plan); err != nil {
			writeServiceError(w, err)
			return
		}
		if err := subscription.RecordWorkoutUse(u, now); err != nil {
			writeServiceError(w, err)
			return
		}
		resp["workout"] = plan
	}

	u.UpdatedAt = now
	if err := api.store.SaveUser(r.Context(), u); err != nil {
		writeServiceError(w, err)
		return
	}
	log.WithFields(log.Fields{"user_id": u.ID, "diet": canDiet, "workout": canWorkout}).Info("plans generated")

	resp["usage"] = subscription.GetUsageStatus(u, now)
	writeJSON(w, http.StatusCreated, resp)
}

func (api *Api) DietHandler(w http.ResponseWriter, r *http.Request) {
	plan, err := api.diet.Current(r.Context(), currentUser(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"diet": plan})
}

func (api *Api) EditMealHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Meal   string `json:"meal"`
		Change string `json:"change"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	plan, msg, err := api.diet.Edit(r.Context(), currentUser(r), req.Meal, req.Change)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"diet": plan, "message": msg})
}

func (api *Api) ReshapeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Meals int `json:"meals"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	plan, err := api.diet.Reshape(r.Context(), currentUser(r), req.Meals)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"diet": plan})
}

func (api *Api) DietChatHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Meal    string `json:"meal"`
		Message string `json:"message"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	plan, msg, err := api.diet.Chat(r.Context(), currentUser(r), req.Meal, req.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"diet": plan, "message": msg})
}

func (api *Api) ExtractDietHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, analysis.MaxDietFileSize+1<<20)
	file, header, ok := formFile(w, r, "file")
	if !ok {
		return
	}
	file.Close()

	f := analysis.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}
	if err := analysis.ValidateDietFile(f); err != nil {
		writeServiceError(w, err)
		return
	}

	meals, err := api.extractor.Extract(r.Context(), f)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"meals": meals})
}
