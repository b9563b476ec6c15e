package domain

import "math"

// ToMajorUnits converte um valor em centavos (como armazenado no Payload) para a unidade de exibição
func ToMajorUnits(minor int64) float64 {
	return float64(minor) / 100
}

// ToMinorUnits converte um valor de exibição para centavos antes de enviá-lo ao Payload.
// O arredondamento é sempre meio-para-longe-do-zero (math.Round), o que para valores
// positivos equivale a half-up: 0.005 vira 1 centavo.
func ToMinorUnits(major float64) int64 {
	return int64(math.Round(major * 100))
}
