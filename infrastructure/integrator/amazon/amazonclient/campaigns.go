package amazonclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	amazondomain "github.com/vfg2006/budget-pacing-api/infrastructure/integrator/amazon/domain"
)

type responseCampaignList struct {
	Campaigns  []amazondomain.Campaign `json:"campaigns"`
	NextToken  *string                 `json:"nextToken,omitempty"`
	TotalCount int                     `json:"totalResults"`
}

type requestCampaignList struct {
	StateFilter struct {
		Include []string `json:"include"`
	} `json:"stateFilter"`
	MaxResults int     `json:"maxResults"`
	NextToken  *string `json:"nextToken,omitempty"`
}

// ListCampaignsByProfileID retorna todas as campanhas patrocinadas não
// arquivadas do perfil, seguindo o nextToken até esgotar as páginas
func (c *AmazonClient) ListCampaignsByProfileID(profileID string) ([]amazondomain.Campaign, error) {
	url := fmt.Sprintf("%s/sp/campaigns/list", c.Cfg.Amazon.BaseURL)

	all := make([]amazondomain.Campaign, 0)
	var nextToken *string

	for {
		reqBody := requestCampaignList{MaxResults: 100, NextToken: nextToken}
		reqBody.StateFilter.Include = []string{
			amazondomain.CampaignStateEnabled,
			amazondomain.CampaignStatePaused,
		}

		payload, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar o filtro de campanhas: %w", err)
		}

		req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar a requisição de campanhas")
			return nil, err
		}
		c.setCommonHeaders(req, profileID)

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			logrus.WithError(err).Error("Erro ao fazer a requisição de campanhas")
			return nil, err
		}

		body, err := c.handleResponse(resp)
		if err != nil {
			return nil, err
		}

		var response responseCampaignList
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON de campanhas")
			return nil, err
		}

		all = append(all, response.Campaigns...)

		if response.NextToken == nil || *response.NextToken == "" {
			break
		}
		nextToken = response.NextToken
	}

	return all, nil
}
