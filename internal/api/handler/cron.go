package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-dashboard-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDailyDigest = "daily-digest"
)

// CronJob é o contrato mínimo de uma tarefa agendada exposta pela API
type CronJob interface {
	TriggerManualDigest()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DailyDigestService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDailyDigest:
			if services.DailyDigestService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de resumo diário não disponível", nil)
				return
			}
			services.DailyDigestService.TriggerManualDigest()
		default:
			apiErrors.WriteError(w, apiErrors.ErrUnknownCronJob, "Tipo de cron job inválido. Valores aceitos: daily-digest", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DailyDigestService != nil {
			status[CronJobTypeDailyDigest] = services.DailyDigestService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
