package utils

import (
	"fmt"
	"math"
)

// MicrosToAmount converte um valor em micros (menor unidade da moeda usada
// pela API de anúncios) para o valor decimal correspondente
func MicrosToAmount(micros int64) float64 {
	return float64(micros) / 1_000_000
}

// AmountToMicros converte um valor decimal para micros, arredondando para o
// inteiro mais próximo
func AmountToMicros(amount float64) int64 {
	return int64(math.Round(amount * 1_000_000))
}

// FormatMicros formata um valor em micros com duas casas decimais para
// mensagens legíveis por humanos
func FormatMicros(micros int64) string {
	return fmt.Sprintf("%.2f", MicrosToAmount(micros))
}
