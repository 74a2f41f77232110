package middleware

import (
	"net/http"
	"time"

	"github.com/grishaff/LuminaShare/internal/logger"
)

// LoggerMiddleware log chaque requête avec son statut, sa taille et sa durée
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		logger.Request(r.Method, r.URL.Path, rec.status, rec.size, time.Since(start))
	})
}
