package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"studysets/services"

	"github.com/gorilla/mux"
)

type QuestionHandler struct {
	service *services.QuestionStoreService
}

func NewQuestionHandler(service *services.QuestionStoreService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

func (h *QuestionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/study-sets/{id:[0-9]+}/questions", h.GetQuestionsByStudySet).Methods("GET")
	router.HandleFunc("/api/questions/search", h.SearchQuestions).Methods("GET")
	router.HandleFunc("/api/questions/{id:[0-9]+}/study-set", h.UnlinkQuestion).Methods("DELETE")
}

func (h *QuestionHandler) GetQuestionsByStudySet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid study set ID")
		return
	}

	questions, err := h.service.GetQuestionsByStudySet(id)
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve questions")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, questions)
}

func (h *QuestionHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	questions, err := h.service.SearchQuestions(query)
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to search questions")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, questions)
}

func (h *QuestionHandler) UnlinkQuestion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	if err := h.service.UnlinkQuestion(id); err != nil {
		if containsNotFound(err.Error()) {
			h.writeErrorResponse(w, http.StatusNotFound, err.Error())
		} else {
			h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to unlink question")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *QuestionHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *QuestionHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
