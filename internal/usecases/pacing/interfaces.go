package pacing

import (
	"context"

	"github.com/vfg2006/budget-pacing-api/internal/domain"
)

// ActionPublisher é a fronteira com o sistema externo de execução de
// orçamento. A implementação Kafka vive em infrastructure/messaging.
type ActionPublisher interface {
	PublishBudgetAction(ctx context.Context, action domain.BudgetAction) error
}
