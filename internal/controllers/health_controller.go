package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"
)

type HealthController struct{}

type healthResponse struct {
	Status string `json:"status"`
}

// Health is a liveness probe and touches no stored state.
func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	gson, err := json.Marshal(healthResponse{Status: "ok"})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, gson)
}

func NewHealthController() *HealthController {
	return &HealthController{}
}
