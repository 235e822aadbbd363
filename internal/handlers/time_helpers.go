package handlers

import (
	"time"

	domain "github.com/tiagorodrigues47/barbearia-api/internal/domain/appointment"
)

// O sistema opera num calendário local único (sem timezone por
// entidade); toda data/hora de request é interpretada nessa localidade.

func parseDate(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(domain.DateLayout, dateStr, loc)
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24 * time.Hour)
}
