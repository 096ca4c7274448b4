package api

import (
	"net/http"

	"github.com/fitcoach-io/fitcoach/internal/checkout"
	"github.com/fitcoach-io/fitcoach/internal/models"
)

func (api *Api) StartCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	var req struct {
		Plan string `json:"plan"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	flow, order, err := api.checkout.Start(r.Context(), u, models.PlanID(req.Plan))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"flow": flow, "order": order})
}

func (api *Api) PayHandler(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	var form checkout.PaymentForm
	if !decodeJSON(w, r, &form) {
		return
	}

	sub, order, err := api.checkout.Pay(r.Context(), u, form)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"subscription": sub, "order": order})
}

func (api *Api) AbandonCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := api.checkout.Abandon(r.Context(), currentUser(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
