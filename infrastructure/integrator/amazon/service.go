package amazon

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-pacing-api/infrastructure/integrator/amazon/amazonclient"
	amazondomain "github.com/vfg2006/budget-pacing-api/infrastructure/integrator/amazon/domain"
	"github.com/vfg2006/budget-pacing-api/internal/config"
	"github.com/vfg2006/budget-pacing-api/internal/domain"
	"github.com/vfg2006/budget-pacing-api/pkg/utils"
)

// AmazonIntegrator traduz os dados da API da Amazon Ads para o modelo interno
type AmazonIntegrator struct {
	cfg    *config.Config
	Client amazonclient.Client
}

func New(cfg *config.Config, client amazonclient.Client) *AmazonIntegrator {
	return &AmazonIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AmazonIntegrator) GetProfiles() ([]*domain.Profile, error) {
	profiles, err := s.Client.ListProfiles()
	if err != nil {
		logrus.WithError(err).Error("sync: failed to get profiles from Amazon Ads API")
		return nil, err
	}

	result := make([]*domain.Profile, 0, len(profiles))
	for _, p := range profiles {
		status := domain.ProfileStatusActive
		if !p.AccountInfo.Valid {
			status = domain.ProfileStatusInactive
		}

		result = append(result, &domain.Profile{
			ExternalID:  strconv.FormatInt(p.ProfileID, 10),
			Name:        p.AccountInfo.Name,
			CountryCode: p.CountryCode,
			Status:      status,
		})
	}

	logrus.WithField("total_profiles", len(result)).Info("sync: successfully retrieved profiles")

	return result, nil
}

func (s *AmazonIntegrator) GetCampaigns(profileExternalID string) ([]*domain.CampaignSnapshot, error) {
	campaigns, err := s.Client.ListCampaignsByProfileID(profileExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"profile_id": profileExternalID,
			"error":      err.Error(),
		}).Error("sync: failed to get campaigns from Amazon Ads API")
		return nil, err
	}

	now := time.Now().UTC()
	result := make([]*domain.CampaignSnapshot, 0, len(campaigns))
	for _, c := range campaigns {
		result = append(result, &domain.CampaignSnapshot{
			ExternalID:        c.CampaignID,
			Name:              c.Name,
			DailyBudgetMicros: utils.AmountToMicros(c.Budget.Budget),
			Status:            factoryCampaignStatus(c.State),
			SyncedAt:          now,
		})
	}

	return result, nil
}

func factoryCampaignStatus(state string) domain.CampaignStatus {
	switch state {
	case amazondomain.CampaignStateEnabled:
		return domain.CampaignStatusEnabled
	case amazondomain.CampaignStatePaused:
		return domain.CampaignStatusPaused
	default:
		return domain.CampaignStatusArchived
	}
}
