package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/denmor86/pedidos-sync/internal/logger"
	"github.com/denmor86/pedidos-sync/internal/models"
	"go.uber.org/zap"
)

// HealthHandler - проверка доступности сервиса
func HealthHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.StatusResponse{Status: "API Online"})
	})
}

func writeJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
	}
}
