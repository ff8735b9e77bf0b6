package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"uptimestatus/app/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.Err(message))
}

func nowMs() int64 {
	return time.Now().UnixMilli()
}
