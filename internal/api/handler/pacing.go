package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-pacing-api/internal/scheduler"
	"github.com/vfg2006/budget-pacing-api/internal/usecases/pacing"
	"github.com/vfg2006/budget-pacing-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada manualmente
const (
	CronJobTypePacing    = "pacing"
	CronJobTypeCampaigns = "campaigns"
	CronJobTypeAll       = "all"
)

const defaultRunListLimit = 20

// CronJobServices contém os serviços de cron necessários para execução manual
type CronJobServices struct {
	PacingSyncService   *scheduler.PacingSyncService
	CampaignSyncService *scheduler.CampaignSyncService
}

// RunPacing dispara uma avaliação de pacing síncrona para todos os perfis
// ativos e retorna o resumo da execução
func RunPacing(service *pacing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunPacing")

		run, err := service.RunAll(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar avaliação de pacing", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(run)
	}
}

// RunPacingForProfile dispara uma avaliação de pacing síncrona para um único
// perfil de anunciante
func RunPacingForProfile(service *pacing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if profileID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do perfil não fornecido", nil)
			return
		}

		run, err := service.RunForProfile(r.Context(), profileID)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, pacing.ErrProfileNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrProfileNotFound, "Perfil não encontrado", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar avaliação de pacing", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(run)
	}
}

// ListPacingRuns retorna o histórico das execuções de pacing mais recentes
func ListPacingRuns(service *pacing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := uint64(defaultRunListLimit)
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.ParseUint(rawLimit, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido", nil)
				return
			}
			limit = parsed
		}

		runs, err := service.ListRuns(limit)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções de pacing", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(runs)
	}
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
		case CronJobTypePacing:
			if services.PacingSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de pacing não disponível", nil)
				return
			}
			services.PacingSyncService.TriggerManualSync()

		case CronJobTypeCampaigns:
			if services.CampaignSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de campanhas não disponível", nil)
				return
			}
			services.CampaignSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.PacingSyncService != nil {
				services.PacingSyncService.TriggerManualSync()
			}
			if services.CampaignSyncService != nil {
				services.CampaignSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: pacing, campaigns, all", nil)
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
		status := map[string]any{
			"pacing":    services.PacingSyncService.GetStatus(),
			"campaigns": services.CampaignSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
