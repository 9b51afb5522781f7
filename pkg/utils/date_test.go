package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Data válida no formato YYYY-MM-DD", func(t *testing.T) {
		parsed, err := ParseDate("2024-05-15")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), *parsed)
	})

	t.Run("Data vazia retorna o zero de time.Time", func(t *testing.T) {
		parsed, err := ParseDate("")

		assert.NoError(t, err)
		assert.True(t, parsed.IsZero())
	})

	t.Run("Formato inválido", func(t *testing.T) {
		parsed, err := ParseDate("15/05/2024")

		assert.Error(t, err)
		assert.Nil(t, parsed)
	})
}
