package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeScanVerdicts = "scan-verdicts"
	CronJobTypeInsights     = "insights"
	CronJobTypeAll          = "all"
)

// CronJob é um agendador que aceita execução manual
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ScanVerdictSyncService CronJob
	InsightSnapshotService CronJob
}

// RunCronJob executa manualmente uma cron job específica.
// A restrição a administradores fica no middleware da rota.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeScanVerdicts:
			if services.ScanVerdictSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de vereditos de antivírus não disponível", nil)
				return
			}
			services.ScanVerdictSyncService.TriggerManualSync()

		case CronJobTypeInsights:
			if services.InsightSnapshotService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retrato da loja não disponível", nil)
				return
			}
			services.InsightSnapshotService.TriggerManualSync()

		case CronJobTypeAll:
			if services.ScanVerdictSyncService != nil {
				services.ScanVerdictSyncService.TriggerManualSync()
			}
			if services.InsightSnapshotService != nil {
				services.InsightSnapshotService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: scan-verdicts, insights, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.ScanVerdictSyncService != nil {
			status[CronJobTypeScanVerdicts] = services.ScanVerdictSyncService.GetStatus()
		}
		if services.InsightSnapshotService != nil {
			status[CronJobTypeInsights] = services.InsightSnapshotService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
