// Package handler provides HTTP handlers for the API.
package handler

import (
	"net/http"

	"doc-summarizer/internal/config"
	"doc-summarizer/web"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"doc-summarizer"}`))
	}).Methods("GET")

	// Initialize handlers
	summarizeHandler := NewSummarizeHandler(
		container.GetSummaryService(),
		container.GetConfig().GetMaxFileSize(),
		container.GetLogger(),
	)

	router.HandleFunc("/summarize", summarizeHandler.Summarize).Methods("POST")

	// Embedded browser client
	router.PathPrefix("/").Handler(http.FileServer(http.FS(web.StaticFS()))).Methods("GET")

	router.Use(mux.MiddlewareFunc(LoggingMiddleware(container.GetLogger())))

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: container.GetConfig().GetAllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
