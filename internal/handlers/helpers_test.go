package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", rr.Body.String(), err)
	}
	return body
}

func jsonBody(payload interface{}) (*bytes.Buffer, error) {
	b, err := json.Marshal(payload)
	return bytes.NewBuffer(b), err
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := jsonBody(payload)
	req := httptest.NewRequest("POST", path, body)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}
