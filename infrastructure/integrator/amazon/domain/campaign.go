package domain

// Campaign é a campanha patrocinada como retornada pela API da Amazon Ads.
// O orçamento vem em unidades monetárias da moeda do perfil, não em micros.
type Campaign struct {
	CampaignID string  `json:"campaignId"`
	Name       string  `json:"name"`
	State      string  `json:"state"`
	Budget     Budget  `json:"budget"`
	StartDate  string  `json:"startDate"`
	EndDate    *string `json:"endDate,omitempty"`
}

type Budget struct {
	Budget     float64 `json:"budget"`
	BudgetType string  `json:"budgetType"`
}

// Estados possíveis de uma campanha na API da Amazon Ads
const (
	CampaignStateEnabled  = "ENABLED"
	CampaignStatePaused   = "PAUSED"
	CampaignStateArchived = "ARCHIVED"
)
