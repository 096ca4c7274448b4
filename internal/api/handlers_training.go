package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/analysis"
	"github.com/fitcoach-io/fitcoach/internal/models"
	"github.com/fitcoach-io/fitcoach/internal/storage"
	"github.com/fitcoach-io/fitcoach/internal/workout"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var photoSides = []string{"front", "back", "left", "right"}

func (api *Api) BodyAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	r.Body = http.MaxBytesReader(w, r.Body, int64(len(photoSides))*analysis.MaxBodyPhotoSize+1<<20)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeServiceError(w, analysis.ErrFileTooLarge)
			return
		}
		writeServiceError(w, analysis.ErrNoPhotos)
		return
	}

	urls := map[string]string{}
	for _, side := range photoSides {
		headers := r.MultipartForm.File[side]
		if len(headers) == 0 {
			continue
		}
		header := headers[0]
		contentType := header.Header.Get("Content-Type")
		if err := analysis.ValidateImage(contentType, header.Size, analysis.MaxBodyPhotoSize); err != nil {
			writeServiceError(w, err)
			return
		}

		file, err := header.Open()
		if err != nil {
			writeServiceError(w, err)
			return
		}
		url, err := api.objects.Put(r.Context(), storage.PhotoKey(u.ID, side, header.Filename), file, header.Size, contentType)
		file.Close()
		if err != nil {
			writeServiceError(w, err)
			return
		}
		urls[side] = url
	}

	photos := models.PhotoSet{Front: urls["front"], Back: urls["back"], Left: urls["left"], Right: urls["right"]}
	result, err := api.analyzer.Analyze(r.Context(), photos)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	record := &models.BodyAnalysis{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Photos:    photos,
		Analysis:  *result,
		CreatedAt: api.now(),
	}
	if err := api.store.SaveBodyAnalysis(r.Context(), record); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"analysis": record})
}

func (api *Api) LatestBodyAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	record, err := api.store.LatestBodyAnalysis(r.Context(), currentUser(r).ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"analysis": record})
}

func (api *Api) WorkoutHandler(w http.ResponseWriter, r *http.Request) {
	plan, err := api.store.GetWorkoutPlan(r.Context(), currentUser(r).ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"workout": plan})
}

// WorkoutProgressHandler returns the day's log, creating it from the plan
// the first time the day is opened.
func (api *Api) WorkoutProgressHandler(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	date := r.URL.Query().Get("date")
	if date == "" {
		date = api.now().Format(dateLayout)
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		writeServiceError(w, models.FieldErrors{"date": "Formato: AAAA-MM-DD"})
		return
	}

	prog, err := api.store.GetWorkoutProgress(r.Context(), u.ID, date)
	if errors.Is(err, models.ErrNotFound) {
		var plan *models.WorkoutPlan
		plan, err = api.store.GetWorkoutPlan(r.Context(), u.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		prog, err = workout.NewProgress(plan, workout.DayFor(plan, day), date, api.now())
		if err == nil {
			err = api.store.SaveWorkoutProgress(r.Context(), prog)
		}
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeProgress(w, prog)
}

func (api *Api) UpdateWorkoutProgressHandler(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	var req struct {
		Date string `json:"date"`
		workout.SetUpdate
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	prog, err := api.store.GetWorkoutProgress(r.Context(), u.ID, req.Date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := workout.ApplyUpdate(prog, req.SetUpdate, api.now()); err != nil {
		writeServiceError(w, err)
		return
	}
	if err := api.store.SaveWorkoutProgress(r.Context(), prog); err != nil {
		writeServiceError(w, err)
		return
	}

	writeProgress(w, prog)
}

func writeProgress(w http.ResponseWriter, prog *models.WorkoutProgress) {
	done, total, summary := workout.Summary(prog)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"progress":  prog,
		"completed": done,
		"total":     total,
		"summary":   summary,
	})
}

func (api *Api) ExerciseVideoHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	url, err := api.videos.FindVideo(r.Context(), name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"exercise": name, "url": url})
}

func (api *Api) CoachHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Question == "" {
		writeServiceError(w, models.FieldErrors{"question": "Digite sua pergunta"})
		return
	}

	answer := api.coach.Answer(req.Question)
	writeJSON(w, http.StatusOK, answer)
}
