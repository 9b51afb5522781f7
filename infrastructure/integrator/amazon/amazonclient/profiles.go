package amazonclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	amazondomain "github.com/vfg2006/budget-pacing-api/infrastructure/integrator/amazon/domain"
)

func (c *AmazonClient) ListProfiles() ([]amazondomain.Profile, error) {
	url := fmt.Sprintf("%s/v2/profiles", c.Cfg.Amazon.BaseURL)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição de perfis")
		return nil, err
	}
	c.setCommonHeaders(req, "")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição de perfis")
		return nil, err
	}

	body, err := c.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	var profiles []amazondomain.Profile
	if err := json.Unmarshal(body, &profiles); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON de perfis")
		return nil, err
	}

	return profiles, nil
}
