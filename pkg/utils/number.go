package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// MicrosToUnit converte valores monetários em micros para a unidade da moeda
func MicrosToUnit(micros int64) float64 {
	return float64(micros) / 1_000_000
}
