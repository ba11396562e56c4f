package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
)

// envelope is the uniform response body: success plus either payload
// fields or an error message.
type envelope map[string]interface{}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}

func respondSuccess(w http.ResponseWriter, fields envelope) {
	body := envelope{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

// respondFailure reports an application-level failure inside a 200
// envelope. Transport-level statuses are reserved for unmatched routes
// and malformed bodies.
func respondFailure(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, envelope{"success": false, "error": msg})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{"success": false, "error": msg})
}

func queryInt64(r *http.Request, name string) (int64, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func queryInt(r *http.Request, name string) (int, bool) {
	n, ok := queryInt64(r, name)
	return int(n), ok
}
