package handlers

import (
	"net/http"
	"strconv"

	"github.com/denmor86/pedidos-sync/internal/logger"
	"github.com/denmor86/pedidos-sync/internal/services"
	"go.uber.org/zap"
)

// SummaryHandler - помесячные итоги и рейтинг франчайзи (?top=N)
func SummaryHandler(s services.ReportsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		top := 0
		if raw := r.URL.Query().Get("top"); raw != "" {
			value, err := strconv.Atoi(raw)
			if err != nil || value <= 0 {
				logger.Warn("Invalid top parameter", raw)
				http.Error(w, "Invalid top parameter", http.StatusBadRequest)
				return
			}
			top = value
		}

		summary, err := s.Summary(r.Context(), top)
		if err != nil {
			logger.Error("Failed to get summary:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	})
}
