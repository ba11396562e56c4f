package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/lzhang/learning-buddy/internal/stats"
	"github.com/lzhang/learning-buddy/internal/store"
)

type GoalHandler struct {
	Store store.Store
	Stats *stats.Aggregator
}

type createGoalRequest struct {
	UserID      int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    int    `json:"priority"`
	TargetDate  string `json:"target_date"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.UserID == 0 || req.Title == "" {
		respondFailure(w, "user_id and title are required")
		return
	}

	goalID, err := h.Store.CreateGoal(req.UserID, req.Title, strings.TrimSpace(req.Description),
		req.Category, req.Priority, req.TargetDate)
	if err != nil {
		respondFailure(w, err.Error())
		return
	}

	respondSuccess(w, envelope{
		"message": "goal created",
		"goal_id": goalID,
	})
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryInt64(r, "user_id")
	if !ok {
		respondFailure(w, "user_id is required")
		return
	}

	goals, err := h.Store.GetGoals(userID, r.URL.Query().Get("status"))
	if err != nil {
		respondFailure(w, err.Error())
		return
	}

	respondSuccess(w, envelope{"goals": goals})
}

func (h *GoalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GoalID int64  `json:"goal_id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.GoalID == 0 || req.Status == "" {
		respondFailure(w, "goal_id and status are required")
		return
	}

	// The goal id is trusted as supplied; ownership is not verified.
	updated, err := h.Store.UpdateGoalStatus(req.GoalID, req.Status)
	if err != nil {
		respondFailure(w, err.Error())
		return
	}
	if !updated {
		respondFailure(w, "goal not found")
		return
	}

	respondSuccess(w, envelope{"message": "goal status updated"})
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	goalID, ok := queryInt64(r, "goal_id")
	if !ok {
		respondFailure(w, "goal_id is required")
		return
	}

	deleted, err := h.Store.DeleteGoal(goalID)
	if err != nil {
		respondFailure(w, err.Error())
		return
	}
	if !deleted {
		respondFailure(w, "goal not found")
		return
	}

	respondSuccess(w, envelope{"message": "goal deleted"})
}

func (h *GoalHandler) Progress(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryInt64(r, "user_id")
	if !ok {
		respondFailure(w, "user_id is required")
		return
	}

	progress, err := h.Stats.GoalProgress(userID)
	if err != nil {
		respondFailure(w, err.Error())
		return
	}

	respondSuccess(w, envelope{"progress": progress})
}
