package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseFloat converte strings numéricas de payloads de providers; campo
// ausente ou inválido vale 0
func ParseFloat(s string) float64 {
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseInt converte strings de contadores de payloads de providers; campo
// ausente ou inválido vale 0
func ParseInt(s string) int64 {
	if s == "" {
		return 0
	}

	// Alguns providers reportam contadores como decimais
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(f))
}
