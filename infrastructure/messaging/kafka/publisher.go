package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/vfg2006/budget-pacing-api/internal/config"
	"github.com/vfg2006/budget-pacing-api/internal/domain"
	"github.com/vfg2006/budget-pacing-api/pkg/log"
)

// ActionPublisher publica ações de orçamento no tópico consumido pelo sistema
// externo de execução. A chave de idempotência vai no payload e no header para
// que o consumidor possa deduplicar sem desserializar a mensagem.
type ActionPublisher interface {
	PublishBudgetAction(ctx context.Context, action domain.BudgetAction) error
	Close() error
}

type budgetActionPublisher struct {
	writer *kafka.Writer
}

func NewBudgetActionPublisher(cfg config.Kafka) ActionPublisher {
	return &budgetActionPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.BrokerList()...),
			Topic:        cfg.BudgetActionsTopic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			WriteTimeout: 10 * time.Second,
		},
	}
}

func (p *budgetActionPublisher) PublishBudgetAction(ctx context.Context, action domain.BudgetAction) error {
	payload, err := json.Marshal(action)
	if err != nil {
		return fmt.Errorf("erro ao serializar a ação de orçamento: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(action.CampaignID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "idempotency-key", Value: []byte(action.IdempotencyKey)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("erro ao publicar a ação de orçamento: %w", err)
	}

	log.L.Infof("Ação de orçamento publicada. Campanha: %s, Novo orçamento: %d", action.CampaignID, action.NewBudgetMicros)

	return nil
}

func (p *budgetActionPublisher) Close() error {
	return p.writer.Close()
}
