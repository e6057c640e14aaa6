package http

import (
	"encoding/json"
	"net/http"
)

// envelope is the success shape of every JSON endpoint.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// listPage wraps list payloads; the admin frontend expects the nested
// data-in-data shape with the page totals alongside.
type listPage struct {
	Data  interface{} `json:"data"`
	Total int32       `json:"total,omitempty"`
	Page  int32       `json:"page,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondData(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, envelope{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
