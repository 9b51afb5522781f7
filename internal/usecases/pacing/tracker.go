package pacing

import (
	"fmt"
	"time"

	"github.com/vfg2006/budget-pacing-api/infrastructure/repository"
	"github.com/vfg2006/budget-pacing-api/pkg/utils"
)

// trailingHourCount é quantas horas completas alimentam a tendência recente
const trailingHourCount = 3

// TrailingHour é o gasto observado em uma das últimas horas completas.
// Present é falso quando não há registro para a hora, inclusive quando a hora
// cairia antes da meia-noite do dia corrente.
type TrailingHour struct {
	SpendMicros int64
	Present     bool
}

// SpendTracker lê o gasto bruto do dia corrente para uma campanha
type SpendTracker struct {
	spendRepo repository.SpendRecordRepository
}

func NewSpendTracker(spendRepo repository.SpendRecordRepository) *SpendTracker {
	return &SpendTracker{
		spendRepo: spendRepo,
	}
}

// SpendToday soma o gasto da campanha no dia UTC de now, da meia-noite até o
// fim do dia. Uma campanha sem registro algum retorna zero sem erro.
func (t *SpendTracker) SpendToday(profileID, campaignID string, now time.Time) (int64, error) {
	start, end := utils.DayBoundsUTC(now)

	total, err := t.spendRepo.SumSpendInRange(profileID, campaignID, start, end)
	if err != nil {
		return 0, fmt.Errorf("erro ao somar o gasto do dia: %w", err)
	}

	return total, nil
}

// TrailingHours retorna o gasto das últimas horas completas do dia corrente,
// da mais recente para a mais antiga
func (t *SpendTracker) TrailingHours(profileID, campaignID string, now time.Time) ([trailingHourCount]TrailingHour, error) {
	var trailing [trailingHourCount]TrailingHour

	totals, err := t.spendRepo.HourlyTotals(profileID, campaignID, utils.DayStartUTC(now))
	if err != nil {
		return trailing, fmt.Errorf("erro ao buscar o gasto horário do dia: %w", err)
	}

	currentHour := now.UTC().Hour()
	for i := 0; i < trailingHourCount; i++ {
		hour := currentHour - 1 - i
		if hour < 0 {
			continue
		}
		if spend, ok := totals[hour]; ok {
			trailing[i] = TrailingHour{SpendMicros: spend, Present: true}
		}
	}

	return trailing, nil
}
