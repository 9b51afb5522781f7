package pacing

import (
	"errors"
)

// Erros do ciclo de vida das recomendações
var (
	ErrRecommendationNotFound = errors.New("recomendação não encontrada")
	ErrInvalidStateTransition = errors.New("a recomendação não está mais aberta")
	ErrNoSuggestedBudget      = errors.New("recomendação sem orçamento sugerido para aplicar")
	ErrProfileNotFound        = errors.New("perfil não encontrado")
	ErrCampaignNotFound       = errors.New("campanha não encontrada")
)
