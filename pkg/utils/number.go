package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// PercentChange retorna a variação percentual de prior para current, ou 0 quando prior não é positivo
func PercentChange(current, prior float64) float64 {
	if prior <= 0 {
		return 0
	}

	return (current - prior) / prior * 100
}
