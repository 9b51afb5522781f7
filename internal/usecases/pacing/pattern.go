package pacing

import (
	"fmt"
	"time"

	"github.com/vfg2006/budget-pacing-api/infrastructure/repository"
	"github.com/vfg2006/budget-pacing-api/internal/domain"
	"github.com/vfg2006/budget-pacing-api/pkg/log"
	"github.com/vfg2006/budget-pacing-api/pkg/utils"
)

// PatternBuilder deriva a distribuição horária esperada de gasto de uma
// campanha a partir dos mesmos dias da semana nas semanas anteriores
type PatternBuilder struct {
	spendRepo repository.SpendRecordRepository
	policy    Policy
}

func NewPatternBuilder(spendRepo repository.SpendRecordRepository, policy Policy) *PatternBuilder {
	return &PatternBuilder{
		spendRepo: spendRepo,
		policy:    policy,
	}
}

// Build retorna o padrão horário da campanha para o dia informado. Dias de
// histórico com gasto total zero são descartados; sem nenhum dia utilizável o
// fallback é a distribuição uniforme, que não é um erro.
func (b *PatternBuilder) Build(profileID, campaignID string, day time.Time) (domain.HourlyPattern, error) {
	dayStart := utils.DayStartUTC(day)

	var accumulated domain.HourlyPattern
	validDays := 0

	for week := 1; week <= b.policy.HistoryWeeks; week++ {
		lookbackDay := dayStart.AddDate(0, 0, -7*week)

		totals, err := b.spendRepo.HourlyTotals(profileID, campaignID, lookbackDay)
		if err != nil {
			return domain.HourlyPattern{}, fmt.Errorf("erro ao buscar o gasto horário de %s: %w", lookbackDay.Format(time.DateOnly), err)
		}

		var dayTotal int64
		for _, spend := range totals {
			dayTotal += spend
		}
		if dayTotal <= 0 {
			continue
		}

		for hour, spend := range totals {
			if hour < 0 || hour >= domain.HoursPerDay {
				continue
			}
			accumulated[hour] += float64(spend) / float64(dayTotal)
		}
		validDays++
	}

	if validDays == 0 {
		log.L.WithFields(log.Fields{
			"profile_id":  profileID,
			"campaign_id": campaignID,
		}).Debug("pacing: campanha sem histórico utilizável, usando padrão uniforme")
		return domain.UniformPattern(), nil
	}

	var pattern domain.HourlyPattern
	for hour := range accumulated {
		pattern[hour] = accumulated[hour] / float64(validDays)
	}

	return pattern, nil
}
