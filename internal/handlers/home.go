package handlers

import (
	"net/http"
	"time"
)

type HomeHandler struct{}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{
		"message": "Learning Buddy API is running",
		"version": "2.0.0",
		"features": []string{
			"user accounts",
			"assistant chat",
			"learning goals",
			"study tracking",
		},
	})
}

func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{
		"status":    "healthy",
		"service":   "learning-buddy",
		"timestamp": time.Now().Format("2006-01-02 15:04:05"),
	})
}
