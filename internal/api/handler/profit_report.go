package handler

import (
	"net/http"

	"github.com/minimarket/backoffice-api/internal/domain"
	"github.com/minimarket/backoffice-api/internal/usecases/reporting"
	"github.com/minimarket/backoffice-api/pkg/apiErrors"
	"github.com/minimarket/backoffice-api/pkg/log"
	"github.com/pkg/errors"
)

// GetProfitReport retorna o calendário de lucros diários do período informado
// (query params start_date e end_date em "MM/DD/YYYY", ausentes = mês corrente)
func GetProfitReport(service reporting.ProfitReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := &domain.ProfitFilters{
			StartDate: r.URL.Query().Get("start_date"),
			EndDate:   r.URL.Query().Get("end_date"),
		}

		logger.WithFields(log.Fields{
			"start_date": filters.StartDate,
			"end_date":   filters.EndDate,
		}).Debug("reports: computing daily profit report")

		report, err := service.ComputeProfitReport(filters)
		if err != nil {
			if errors.Is(err, reporting.ErrMalformedTimestamp) {
				logger.WithError(err).Warn("reports: malformed sale timestamp")
				apiErrors.WriteError(w, apiErrors.ErrMalformedSaleTimestamp, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("reports: failed to compute profit report")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular relatório de lucros", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
