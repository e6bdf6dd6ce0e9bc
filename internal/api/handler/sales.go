package handler

import (
	"net/http"

	"github.com/minimarket/backoffice-api/internal/domain"
	"github.com/minimarket/backoffice-api/internal/usecases/selling"
	"github.com/minimarket/backoffice-api/pkg/apiErrors"
	"github.com/minimarket/backoffice-api/pkg/log"
	"github.com/pkg/errors"
)

// CreateSale registra uma nova venda. O corpo é o array de linhas da venda
func CreateSale(service selling.SellingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var lines []*domain.NewSaleLine
		if err := json.NewDecoder(r.Body).Decode(&lines); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if len(lines) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum produto informado para a venda", nil)
			return
		}

		sale, err := service.CreateSale(r.Context(), lines)
		if err != nil {
			if errors.Is(err, selling.ErrEmptySale) || errors.Is(err, selling.ErrInvalidQuantity) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("sales: failed to create sale")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar a venda", nil)
			return
		}

		logger.WithFields(log.Fields{
			"sale_id":      sale.ID,
			"receipt_code": sale.ReceiptCode,
		}).Info("sales: sale created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(sale); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
		}
	})
}
