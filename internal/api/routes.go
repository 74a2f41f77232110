package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/grishaff/LuminaShare/internal/handler"
	"github.com/grishaff/LuminaShare/internal/logger"
	"github.com/grishaff/LuminaShare/internal/middleware"
	"github.com/grishaff/LuminaShare/internal/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter déclare toutes les routes de l'API.
// Les routes qui doivent répondre 405 avec Allow vérifient la méthode elles-mêmes.
func SetupRouter(h *handler.Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)
	r.Use(middleware.Metrics)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Ranking
	r.HandleFunc("/ranking", h.GetRanking)
	r.HandleFunc("/announcements/{id}/ranking", h.GetAnnouncementRanking).Methods(http.MethodGet)

	// Announcements
	r.HandleFunc("/announcements", h.Announcements)

	// Donations
	r.HandleFunc("/donate", h.Donate)

	// Users
	r.HandleFunc("/users", h.Users)
	r.HandleFunc("/users/by-username", h.GetUserByUsername)
	r.HandleFunc("/profile", h.GetProfile)

	// Images
	r.HandleFunc("/upload", h.UploadImage)

	// Health check & metrics
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// mux n'applique r.Use qu'aux routes trouvées: 404 et 405 sont enveloppés à la main
	r.NotFoundHandler = instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warning("404 Not Found: %s %s", r.Method, r.URL.Path)
		utils.Error(w, http.StatusNotFound, "route not found")
	}))
	r.MethodNotAllowedHandler = instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	}))

	return r
}

func instrument(h http.Handler) http.Handler {
	return middleware.LoggerMiddleware(middleware.Metrics(h))
}
