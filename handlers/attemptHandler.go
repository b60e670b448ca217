package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"studysets/models"
	"studysets/services"

	"github.com/gorilla/mux"
)

type AttemptHandler struct {
	service *services.AttemptService
}

func NewAttemptHandler(service *services.AttemptService) *AttemptHandler {
	return &AttemptHandler{service: service}
}

func (h *AttemptHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/attempts", h.RecordAttempt).Methods("POST")
	router.HandleFunc("/api/study-sets/{id:[0-9]+}/performance", h.GetPerformance).Methods("GET")
}

func (h *AttemptHandler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	var req models.RecordAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	attempt, err := h.service.RecordAttempt(&req)
	if err != nil {
		if containsNotFound(err.Error()) {
			h.writeErrorResponse(w, http.StatusNotFound, err.Error())
		} else {
			h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, attempt)
}

func (h *AttemptHandler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid study set ID")
		return
	}

	report, err := h.service.GetPerformance(id)
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to compute performance report")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, report)
}

func (h *AttemptHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *AttemptHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
