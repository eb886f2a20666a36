package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/denmor86/pedidos-sync/internal/logger"
	"github.com/denmor86/pedidos-sync/internal/models"
	"github.com/denmor86/pedidos-sync/internal/services"
	"github.com/denmor86/pedidos-sync/internal/validators"
	"go.uber.org/zap"
)

// Сообщения ответа по итогу запуска
var outcomeMessages = map[string]string{
	models.OutcomeDone:           "Pedidos processados com sucesso",
	models.OutcomeNoData:         "Nenhum pedido para processar",
	models.OutcomeInvalidPayload: "Resposta da API em formato inesperado",
	models.OutcomeFailed:         "Falha ao processar pedidos",
}

// RunPipelineHandler - ручной запуск загрузки заказов за период (?periodo=YYYY-MM-DD, по умолчанию сегодня)
func RunPipelineHandler(s services.PipelineService, loc *time.Location) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period, err := validators.ResolvePeriod(r.URL.Query().Get("periodo"), time.Now(), loc)
		if err != nil {
			logger.Warn("Invalid period:", zap.Error(err))
			if errors.Is(err, validators.ErrInvalidPeriod) {
				http.Error(w, "Invalid period format, expected YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		// загрузка доводится до конца, даже если клиент отключился
		report := s.Run(context.WithoutCancel(r.Context()), period)

		status := http.StatusOK
		if report.Failed() {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, models.PipelineResponse{
			Message: outcomeMessages[report.Outcome],
			Report:  report,
		})
	})
}
