package handler

import (
	"net/http"

	"github.com/grishaff/LuminaShare/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "LuminaShare API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"ranking": []map[string]string{
				{"method": "GET", "path": "/ranking", "description": "Classement des donateurs (Stars puis TON)"},
				{"method": "GET", "path": "/announcements/{id}/ranking", "description": "Classement des donateurs d'une annonce (params: limit)"},
			},
			"announcements": []map[string]string{
				{"method": "GET", "path": "/announcements", "description": "Récupérer toutes les annonces"},
				{"method": "POST", "path": "/announcements", "description": "Créer une annonce"},
			},
			"donations": []map[string]string{
				{"method": "POST", "path": "/donate", "description": "Enregistrer un don (TON ou Stars)"},
			},
			"users": []map[string]string{
				{"method": "GET", "path": "/users?tgId=", "description": "Récupérer un profil par identifiant Telegram"},
				{"method": "POST", "path": "/users", "description": "Créer ou mettre à jour un profil"},
				{"method": "PUT", "path": "/users", "description": "Modifier un profil"},
				{"method": "GET", "path": "/users/by-username?username=", "description": "Profil, total de Stars et rang"},
				{"method": "GET", "path": "/profile?id=", "description": "Profil et dernières annonces"},
			},
			"upload": []map[string]string{
				{"method": "POST", "path": "/upload", "description": "Upload d'une image d'annonce (champ image)"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
				{"method": "GET", "path": "/metrics", "description": "Métriques Prometheus"},
			},
		},
	}

	utils.JSON(w, http.StatusOK, routes)
}
