package main

import (
	"fmt"
	"log"
	"net/http"

	"studysets/config"
	"studysets/db"
	"studysets/handlers"
	"studysets/services"
	"studysets/services/extract"
	"studysets/services/quiz"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DB_URL environment variable is required")
	}

	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is required")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer conn.Close()

	studySetRepo := db.NewPostgresStudySetRepository(conn)
	questionRepo := db.NewPostgresQuestionRepository(conn)
	categoryRepo := db.NewPostgresCategoryRepository(conn)
	attemptRepo := db.NewPostgresAttemptRepository(conn)

	studySetService := services.NewStudySetService(studySetRepo)
	studySetHandler := handlers.NewStudySetHandler(studySetService)

	categoryService := services.NewCategoryService(categoryRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	questionStoreService := services.NewQuestionStoreService(questionRepo)
	questionHandler := handlers.NewQuestionHandler(questionStoreService)

	attemptService := services.NewAttemptService(attemptRepo, questionStoreService)
	attemptHandler := handlers.NewAttemptHandler(attemptService)

	extractService, err := extract.NewService(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize extraction service: %v", err)
	}

	quizService, err := quiz.NewService(questionStoreService, categoryService, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize quiz service: %v", err)
	}
	generateQuizHandler := handlers.NewGenerateQuizHandler(quizService, extractService)

	router := mux.NewRouter()

	router.Use(corsMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	studySetHandler.RegisterRoutes(router)
	categoryHandler.RegisterRoutes(router)
	questionHandler.RegisterRoutes(router)
	attemptHandler.RegisterRoutes(router)
	generateQuizHandler.RegisterRoutes(router)

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
