package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lzhang/learning-buddy/internal/ai"
	"github.com/lzhang/learning-buddy/internal/stats"
	"github.com/lzhang/learning-buddy/internal/store"
)

// NewRouter builds the static route table. Any method+path pair outside
// the table gets a 404 envelope. gen may be nil; chat then runs entirely
// on fallback replies.
func NewRouter(s store.Store, gen ai.Generator) *mux.Router {
	aggregator := &stats.Aggregator{Store: s}

	authHandler := &AuthHandler{Store: s}
	chatHandler := &ChatHandler{Store: s, AI: gen}
	goalHandler := &GoalHandler{Store: s, Stats: aggregator}
	studyHandler := &StudyHandler{Store: s, Stats: aggregator}
	homeHandler := &HomeHandler{}

	r := mux.NewRouter()

	r.HandleFunc("/", homeHandler.Home).Methods("GET")
	r.HandleFunc("/api/health", homeHandler.Health).Methods("GET")

	r.HandleFunc("/api/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/login", authHandler.Login).Methods("POST")

	r.HandleFunc("/api/chat", chatHandler.Chat).Methods("POST")
	r.HandleFunc("/api/chat/history", chatHandler.History).Methods("GET")

	r.HandleFunc("/api/goals", goalHandler.List).Methods("GET")
	r.HandleFunc("/api/goals", goalHandler.Create).Methods("POST")
	r.HandleFunc("/api/goals", goalHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/goals/status", goalHandler.UpdateStatus).Methods("PUT")
	r.HandleFunc("/api/goals/progress", goalHandler.Progress).Methods("GET")

	r.HandleFunc("/api/study/session", studyHandler.AddSession).Methods("POST")
	r.HandleFunc("/api/study/sessions", studyHandler.Sessions).Methods("GET")
	r.HandleFunc("/api/study/statistics", studyHandler.Statistics).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(notFound)

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "no such endpoint")
}
