package utils

import "time"

// ParseDate interpreta datas no formato YYYY-MM-DD usado pelas APIs de
// providers e pelos filtros da API
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// Midnight trunca o instante para a meia-noite UTC do mesmo dia
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
