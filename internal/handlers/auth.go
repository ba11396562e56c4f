package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/lzhang/learning-buddy/internal/store"
)

const welcomeMessage = "👋 Welcome to Learning Buddy! I'm your study companion."

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthHandler struct {
	Store store.Store
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	creds.Username = strings.TrimSpace(creds.Username)
	creds.Password = strings.TrimSpace(creds.Password)
	if creds.Username == "" || creds.Password == "" {
		respondFailure(w, "username and password are required")
		return
	}

	userID, err := h.Store.CreateUser(creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			respondFailure(w, "username already exists")
			return
		}
		respondFailure(w, err.Error())
		return
	}

	// Seed the account with a greeting so the first visit to the chat
	// screen is not empty.
	if err := h.Store.AddChatMessage(userID, "system", welcomeMessage); err != nil {
		log.Printf("seed welcome message: %v", err)
	}

	respondSuccess(w, envelope{
		"message": "registration successful",
		"user_id": userID,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	creds.Username = strings.TrimSpace(creds.Username)
	creds.Password = strings.TrimSpace(creds.Password)
	if creds.Username == "" || creds.Password == "" {
		respondFailure(w, "username and password are required")
		return
	}

	user, err := h.Store.VerifyUser(creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondFailure(w, "invalid username or password")
			return
		}
		respondFailure(w, err.Error())
		return
	}

	respondSuccess(w, envelope{
		"message": "login successful",
		"user":    user,
	})
}
