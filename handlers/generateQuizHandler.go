package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"studysets/services/extract"
	"studysets/services/quiz"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	maxUploadSize        = 32 << 20 // 32 MB
	defaultQuestionCount = 5
)

type GenerateQuizResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
	JobID   string `json:"jobId"`
}

type GenerateQuizHandler struct {
	quizService    *quiz.Service
	extractService *extract.Service
}

func NewGenerateQuizHandler(quizService *quiz.Service, extractService *extract.Service) *GenerateQuizHandler {
	return &GenerateQuizHandler{
		quizService:    quizService,
		extractService: extractService,
	}
}

func (h *GenerateQuizHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/generate-quiz", h.GenerateQuiz).Methods("POST")
}

func (h *GenerateQuizHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	jobID := uuid.NewString()
	log.Printf("[INFO] Received quiz generation request, job %s", jobID)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Printf("[ERROR] Failed to parse multipart form for job %s: %v", jobID, err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	studySetID, err := strconv.Atoi(r.FormValue("studySetId"))
	if err != nil || studySetID <= 0 {
		log.Printf("[ERROR] Missing or invalid studySetId for job %s", jobID)
		h.writeErrorResponse(w, http.StatusBadRequest, "studySetId is required")
		return
	}

	numQuestions := defaultQuestionCount
	if raw := r.FormValue("numQuestions"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			numQuestions = parsed
		}
	}

	fileName := r.FormValue("fileName")
	fileType := r.FormValue("fileType")
	content := r.FormValue("fileContent")

	imageURL := ""
	if url := r.FormValue("fileUrl"); url != "" && isImageType(fileType, fileName) {
		imageURL = url
	}

	if content == "" && imageURL == "" {
		file, header, err := r.FormFile("file")
		if err != nil {
			log.Printf("[ERROR] No usable content supplied for job %s", jobID)
			h.writeErrorResponse(w, http.StatusBadRequest, "file, fileContent, or fileUrl is required")
			return
		}
		defer file.Close()

		if fileName == "" {
			fileName = header.Filename
		}

		content, err = h.extractService.ExtractText(file, fileName, fileType)
		if err != nil {
			log.Printf("[ERROR] Failed to extract text for job %s: %v", jobID, err)
			h.writeErrorResponse(w, http.StatusBadRequest, "Failed to extract text from uploaded file")
			return
		}
	}

	result, err := h.quizService.GenerateQuiz(r.Context(), quiz.GenerateRequest{
		StudySetID:   studySetID,
		Content:      content,
		ImageURL:     imageURL,
		NumQuestions: numQuestions,
		JobID:        jobID,
	})
	if err != nil {
		log.Printf("[ERROR] Quiz generation failed for job %s: %v", jobID, err)
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Printf("[INFO] Quiz generation completed for job %s: %d questions saved", jobID, result.Saved)
	h.writeJSONResponse(w, http.StatusOK, GenerateQuizResponse{
		Success: true,
		Message: result.Message,
		Count:   result.Saved,
		JobID:   jobID,
	})
}

func isImageType(fileType string, fileName string) bool {
	if strings.HasPrefix(strings.ToLower(fileType), "image/") {
		return true
	}
	lower := strings.ToLower(fileName)
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".webp"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func (h *GenerateQuizHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *GenerateQuizHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
