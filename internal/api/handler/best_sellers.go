package handler

import (
	"net/http"

	"github.com/minimarket/backoffice-api/internal/usecases/ranking"
	"github.com/minimarket/backoffice-api/pkg/apiErrors"
	"github.com/minimarket/backoffice-api/pkg/log"
)

// GetBestSellers retorna o relatório de mais vendidos calculado ao vivo
func GetBestSellers(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entries, err := service.GetBestSellers()
		if err != nil {
			logger.WithError(err).Error("reports: failed to compute best sellers")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular produtos mais vendidos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetBestSellerSnapshot retorna o último snapshot persistido do ranking
func GetBestSellerSnapshot(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot, err := service.GetSnapshot()
		if err != nil {
			logger.WithError(err).Error("reports: failed to get best seller snapshot")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar snapshot de mais vendidos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
