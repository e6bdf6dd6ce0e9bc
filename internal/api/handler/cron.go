package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/minimarket/backoffice-api/internal/scheduler"
	"github.com/minimarket/backoffice-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeBestSellers = "best-sellers"
	CronJobTypeAll         = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	BestSellerSnapshotSyncService *scheduler.BestSellerSnapshotService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeBestSellers:
			if services.BestSellerSnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshot de mais vendidos não disponível", nil)
				return
			}
			services.BestSellerSnapshotSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.BestSellerSnapshotSyncService != nil {
				services.BestSellerSnapshotSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: best-sellers, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"best-sellers": services.BestSellerSnapshotSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
