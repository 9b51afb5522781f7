package pacing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/budget-pacing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/budget-pacing-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestPatternBuilder_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSpendRepo := mocks.NewMockSpendRecordRepository(ctrl)
	builder := NewPatternBuilder(mockSpendRepo, DefaultPolicy())

	// Quarta-feira; as semanas anteriores caem em 08/05 e 01/05
	day := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	weekAgo := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	twoWeeksAgo := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, pattern domain.HourlyPattern, err error)
	}{
		{
			name: "Sem histórico - deve retornar a distribuição uniforme",
			setup: func() {
				mockSpendRepo.EXPECT().
					HourlyTotals("PROF01", "CAMP01", weekAgo).
					Return(map[int]int64{}, nil)
				mockSpendRepo.EXPECT().
					HourlyTotals("PROF01", "CAMP01", twoWeeksAgo).
					Return(map[int]int64{}, nil)
			},
			validate: func(t *testing.T, pattern domain.HourlyPattern, err error) {
				assert.NoError(t, err)
				assert.InDelta(t, 1.0, pattern.Sum(), 1e-6)
				for hour := 0; hour < domain.HoursPerDay; hour++ {
					assert.InDelta(t, 1.0/24.0, pattern[hour], 1e-9)
				}
			},
		},
		{
			name: "Duas semanas de histórico - deve normalizar e tirar a média",
			setup: func() {
				// Semana 1: todo o gasto na hora 10
				mockSpendRepo.EXPECT().
					HourlyTotals("PROF01", "CAMP01", weekAgo).
					Return(map[int]int64{10: 4_000_000}, nil)
				// Semana 2: gasto dividido entre as horas 10 e 20
				mockSpendRepo.EXPECT().
					HourlyTotals("PROF01", "CAMP01", twoWeeksAgo).
					Return(map[int]int64{10: 1_000_000, 20: 1_000_000}, nil)
			},
			validate: func(t *testing.T, pattern domain.HourlyPattern, err error) {
				assert.NoError(t, err)
				assert.InDelta(t, 1.0, pattern.Sum(), 1e-6)
				// Hora 10: média de 1.0 e 0.5; hora 20: média de 0.0 e 0.5
				assert.InDelta(t, 0.75, pattern[10], 1e-9)
				assert.InDelta(t, 0.25, pattern[20], 1e-9)
				assert.Zero(t, pattern[0])
			},
		},
		{
			name: "Dia com total zero deve ser descartado",
			setup: func() {
				mockSpendRepo.EXPECT().
					HourlyTotals("PROF01", "CAMP01", weekAgo).
					Return(map[int]int64{8: 2_000_000, 9: 2_000_000}, nil)
				mockSpendRepo.EXPECT().
					HourlyTotals("PROF01", "CAMP01", twoWeeksAgo).
					Return(map[int]int64{5: 0}, nil)
			},
			validate: func(t *testing.T, pattern domain.HourlyPattern, err error) {
				assert.NoError(t, err)
				assert.InDelta(t, 1.0, pattern.Sum(), 1e-6)
				// Só a semana 1 conta: metade na hora 8, metade na hora 9
				assert.InDelta(t, 0.5, pattern[8], 1e-9)
				assert.InDelta(t, 0.5, pattern[9], 1e-9)
				assert.Zero(t, pattern[5])
			},
		},
		{
			name: "Erro na consulta deve ser propagado",
			setup: func() {
				mockSpendRepo.EXPECT().
					HourlyTotals("PROF01", "CAMP01", weekAgo).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, pattern domain.HourlyPattern, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			pattern, err := builder.Build("PROF01", "CAMP01", day)

			tt.validate(t, pattern, err)
		})
	}
}

func TestUniformPattern(t *testing.T) {
	pattern := domain.UniformPattern()

	assert.InDelta(t, 1.0, pattern.Sum(), 1e-6)
	for hour := 0; hour < domain.HoursPerDay; hour++ {
		assert.Equal(t, pattern[0], pattern[hour])
	}
}
