package utils

import "time"

// TruncateToDay zera o horário de uma data, mantendo apenas o dia de calendário
func TruncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
