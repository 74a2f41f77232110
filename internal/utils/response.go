package utils

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/grishaff/LuminaShare/internal/logger"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("could not encode response: %v", err)
	}
}

// Error renvoie {"error": msg}; la cause éventuelle n'est que loggée
func Error(w http.ResponseWriter, status int, msg string, causes ...error) {
	for _, err := range causes {
		if err != nil {
			logger.Error("[%d] %s: %v", status, msg, err)
		}
	}
	JSON(w, status, ErrorResponse{Error: msg})
}

// MethodNotAllowed répond 405 avec l'en-tête Allow
func MethodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	JSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
}
