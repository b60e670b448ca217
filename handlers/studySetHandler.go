package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"studysets/models"
	"studysets/services"

	"github.com/gorilla/mux"
)

type StudySetHandler struct {
	service *services.StudySetService
}

func NewStudySetHandler(service *services.StudySetService) *StudySetHandler {
	return &StudySetHandler{service: service}
}

func (h *StudySetHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/study-sets", h.CreateStudySet).Methods("POST")
	router.HandleFunc("/api/study-sets", h.GetAllStudySets).Methods("GET")
	router.HandleFunc("/api/study-sets/{id:[0-9]+}", h.GetStudySetByID).Methods("GET")
	router.HandleFunc("/api/study-sets/{id:[0-9]+}", h.UpdateStudySet).Methods("PUT")
	router.HandleFunc("/api/study-sets/{id:[0-9]+}", h.DeleteStudySet).Methods("DELETE")
}

func (h *StudySetHandler) CreateStudySet(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudySetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	set, err := h.service.CreateStudySet(&req)
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, set)
}

func (h *StudySetHandler) GetAllStudySets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.service.GetAllStudySets()
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve study sets")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, sets)
}

func (h *StudySetHandler) GetStudySetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid study set ID")
		return
	}

	set, err := h.service.GetStudySetByID(id)
	if err != nil {
		if containsNotFound(err.Error()) {
			h.writeErrorResponse(w, http.StatusNotFound, err.Error())
		} else {
			h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve study set")
		}
		return
	}

	h.writeJSONResponse(w, http.StatusOK, set)
}

func (h *StudySetHandler) UpdateStudySet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid study set ID")
		return
	}

	var req models.UpdateStudySetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	set, err := h.service.UpdateStudySet(id, &req)
	if err != nil {
		if containsNotFound(err.Error()) {
			h.writeErrorResponse(w, http.StatusNotFound, err.Error())
		} else {
			h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	h.writeJSONResponse(w, http.StatusOK, set)
}

func (h *StudySetHandler) DeleteStudySet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid study set ID")
		return
	}

	if err := h.service.DeleteStudySet(id); err != nil {
		if containsNotFound(err.Error()) {
			h.writeErrorResponse(w, http.StatusNotFound, err.Error())
		} else {
			h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to delete study set")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func containsNotFound(message string) bool {
	return strings.Contains(message, "not found")
}

func (h *StudySetHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *StudySetHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
