package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-pacing-api/internal/usecases/pacing"
	"github.com/vfg2006/budget-pacing-api/pkg/apiErrors"
)

type AutoApplyRequest struct {
	Enabled bool `json:"enabled"`
}

// SetAutoApply liga ou desliga a aplicação automática de recomendações para
// uma campanha do perfil. Sem a permissão as recomendações viram alertas para
// revisão humana.
func SetAutoApply(service *pacing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		profileID := params.ByName("id")
		campaignID := params.ByName("campaign_id")
		if profileID == "" || campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do perfil e da campanha são obrigatórios", nil)
			return
		}

		var req AutoApplyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.SetAutoApply(profileID, campaignID, req.Enabled); err != nil {
			logrus.Error(err)
			if errors.Is(err, pacing.ErrCampaignNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada para o perfil", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar preferência de aplicação automática", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"profile_id":  profileID,
			"campaign_id": campaignID,
			"enabled":     req.Enabled,
		})
	}
}
