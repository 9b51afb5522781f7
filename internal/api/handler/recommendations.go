package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-pacing-api/internal/usecases/pacing"
	"github.com/vfg2006/budget-pacing-api/pkg/apiErrors"
	"github.com/vfg2006/budget-pacing-api/pkg/utils"
)

// ListRecommendations lista as recomendações de um perfil para um dia.
// O dia é recebido no parâmetro de query "day" no formato YYYY-MM-DD e,
// quando ausente, assume o dia corrente em UTC.
func ListRecommendations(service *pacing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if profileID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do perfil não fornecido", nil)
			return
		}

		day := utils.DayStartUTC(time.Now().UTC())
		if rawDay := r.URL.Query().Get("day"); rawDay != "" {
			parsed, err := utils.ParseDate(rawDay)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dia inválido, use o formato YYYY-MM-DD", nil)
				return
			}
			day = utils.DayStartUTC(*parsed)
		}

		recommendations, err := service.ListRecommendations(profileID, day)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar recomendações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(recommendations)
	}
}

// ApproveRecommendation aprova uma recomendação aberta e publica a ação de
// orçamento correspondente para o tópico de ações.
func ApproveRecommendation(service *pacing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recommendationID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if recommendationID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da recomendação não fornecido", nil)
			return
		}

		recommendation, err := service.Approve(r.Context(), recommendationID)
		if err != nil {
			handleRecommendationError(w, err, "Erro ao aprovar recomendação")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(recommendation)
	}
}

// DismissRecommendation descarta uma recomendação aberta sem publicar ação
func DismissRecommendation(service *pacing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recommendationID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if recommendationID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da recomendação não fornecido", nil)
			return
		}

		recommendation, err := service.Dismiss(r.Context(), recommendationID)
		if err != nil {
			handleRecommendationError(w, err, "Erro ao descartar recomendação")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(recommendation)
	}
}

// handleRecommendationError converte erros do domínio de pacing em respostas
// padronizadas da API
func handleRecommendationError(w http.ResponseWriter, err error, fallbackMessage string) {
	logrus.Error(err)

	switch {
	case errors.Is(err, pacing.ErrRecommendationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecommendationNotFound, "Recomendação não encontrada", nil)

	case errors.Is(err, pacing.ErrInvalidStateTransition):
		apiErrors.WriteError(w, apiErrors.ErrInvalidStateTransition, "Recomendação não está mais aberta", nil)

	case errors.Is(err, pacing.ErrNoSuggestedBudget):
		apiErrors.WriteError(w, apiErrors.ErrNoSuggestedBudget, "Recomendação não possui orçamento sugerido", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
	}
}
