package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/lzhang/learning-buddy/internal/ai"
	"github.com/lzhang/learning-buddy/internal/store"
)

const defaultHistoryLimit = 10

type ChatHandler struct {
	Store store.Store
	AI    ai.Generator // nil when no credential is configured
}

type chatTurnRequest struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.UserID == 0 || req.Message == "" {
		respondFailure(w, "user_id and message are required")
		return
	}

	reply := ""
	if h.AI != nil {
		generated, err := h.AI.GenerateReply(req.Message)
		if err != nil {
			log.Printf("reply generation failed, using fallback: %v", err)
		} else {
			reply = generated
		}
	}
	if reply == "" {
		reply = ai.FallbackReply(req.Message)
	}

	if err := h.Store.AddChatMessage(req.UserID, req.Message, reply); err != nil {
		respondFailure(w, err.Error())
		return
	}

	history, err := h.Store.GetChatHistory(req.UserID, defaultHistoryLimit)
	if err != nil {
		respondFailure(w, err.Error())
		return
	}

	respondSuccess(w, envelope{
		"response": reply,
		"history":  history,
	})
}

func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryInt64(r, "user_id")
	if !ok {
		respondFailure(w, "user_id is required")
		return
	}

	limit := defaultHistoryLimit
	if v, ok := queryInt(r, "limit"); ok {
		limit = v
	}

	history, err := h.Store.GetChatHistory(userID, limit)
	if err != nil {
		respondFailure(w, err.Error())
		return
	}

	respondSuccess(w, envelope{"history": history})
}
