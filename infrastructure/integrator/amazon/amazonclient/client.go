package amazonclient

import (
	"fmt"
	"io"
	"net/http"
	"time"

	amazondomain "github.com/vfg2006/budget-pacing-api/infrastructure/integrator/amazon/domain"
	"github.com/vfg2006/budget-pacing-api/internal/config"
)

type Client interface {
	ListProfiles() ([]amazondomain.Profile, error)
	ListCampaignsByProfileID(profileID string) ([]amazondomain.Campaign, error)
}

type AmazonClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	client := &AmazonClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return client
}

// setCommonHeaders adiciona os headers de autenticação exigidos pela Amazon Ads.
// O header de escopo só é enviado em chamadas vinculadas a um perfil.
func (c *AmazonClient) setCommonHeaders(req *http.Request, profileID string) {
	req.Header.Set("Amazon-Advertising-API-ClientId", c.Cfg.Amazon.ClientID)
	req.Header.Set("Authorization", "Bearer "+c.Cfg.Amazon.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	if profileID != "" {
		req.Header.Set("Amazon-Advertising-API-Scope", profileID)
	}
}

// handleResponse lê o corpo e converte status não-2xx em erro
func (c *AmazonClient) handleResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("a API da Amazon Ads retornou status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
