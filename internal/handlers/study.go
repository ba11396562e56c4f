package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/lzhang/learning-buddy/internal/stats"
	"github.com/lzhang/learning-buddy/internal/store"
)

type StudyHandler struct {
	Store store.Store
	Stats *stats.Aggregator
}

type addSessionRequest struct {
	UserID          int64  `json:"user_id"`
	Subject         string `json:"subject"`
	DurationMinutes int    `json:"duration_minutes"`
	GoalID          *int64 `json:"goal_id"`
	Notes           string `json:"notes"`
}

func (h *StudyHandler) AddSession(w http.ResponseWriter, r *http.Request) {
	var req addSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Subject = strings.TrimSpace(req.Subject)
	if req.UserID == 0 || req.Subject == "" || req.DurationMinutes <= 0 {
		respondFailure(w, "user_id, subject and a positive duration_minutes are required")
		return
	}

	sessionID, err := h.Store.AddStudySession(req.UserID, req.Subject, req.DurationMinutes,
		req.GoalID, strings.TrimSpace(req.Notes))
	if err != nil {
		respondFailure(w, err.Error())
		return
	}

	respondSuccess(w, envelope{
		"message":    "study session logged",
		"session_id": sessionID,
	})
}

func (h *StudyHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryInt64(r, "user_id")
	if !ok {
		respondFailure(w, "user_id is required")
		return
	}

	days := 7
	if v, ok := queryInt(r, "days"); ok {
		days = v
	}

	sessions, err := h.Store.GetStudySessions(userID, days)
	if err != nil {
		respondFailure(w, err.Error())
		return
	}

	respondSuccess(w, envelope{"sessions": sessions})
}

func (h *StudyHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryInt64(r, "user_id")
	if !ok {
		respondFailure(w, "user_id is required")
		return
	}

	days := 30
	if v, ok := queryInt(r, "days"); ok {
		days = v
	}

	statistics, err := h.Stats.StudyStatistics(userID, days)
	if err != nil {
		respondFailure(w, err.Error())
		return
	}

	respondSuccess(w, envelope{"statistics": statistics})
}
