package appointment

import (
	"time"

	"github.com/tiagorodrigues47/barbearia-api/internal/models"
)

const (
	DefaultSlotIntervalMin = 30

	TimeLayout = "15:04"
	DateLayout = "2006-01-02"
)

// ParseSlotTime compõe data "2006-01-02" + hora "15:04" num instante
// na localidade do calendário.
func ParseSlotTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(
		DateLayout+" "+TimeLayout,
		dateStr+" "+timeStr,
		loc,
	)
}

// WindowSlots gera os horários candidatos do expediente de um dia,
// ancorados no início da janela (09:15 gera 09:15, 09:45, ...) com
// intervalo fixo, parando estritamente antes do fim: [início, fim).
// Dia sem expediente ou janela malformada gera lista vazia, nunca erro.
func WindowSlots(wh *models.WorkingHours, intervalMin int) []string {
	if wh == nil || !wh.IsWorking || wh.StartTime == "" || wh.EndTime == "" {
		return []string{}
	}

	start, err := time.Parse(TimeLayout, wh.StartTime)
	if err != nil {
		return []string{}
	}
	end, err := time.Parse(TimeLayout, wh.EndTime)
	if err != nil {
		return []string{}
	}

	if intervalMin <= 0 {
		intervalMin = DefaultSlotIntervalMin
	}
	step := time.Duration(intervalMin) * time.Minute

	slots := make([]string, 0)
	for cur := start; cur.Before(end); cur = cur.Add(step) {
		slots = append(slots, cur.Format(TimeLayout))
	}

	return slots
}

// GenerateSlots aplica o ledger sobre a janela: remove os candidatos
// cujo horário já tem agendamento não cancelado.
func GenerateSlots(wh *models.WorkingHours, booked map[string]bool, intervalMin int) []string {
	window := WindowSlots(wh, intervalMin)

	open := make([]string, 0, len(window))
	for _, slot := range window {
		if booked[slot] {
			continue
		}
		open = append(open, slot)
	}

	return open
}

// BookedTimes extrai do ledger os horários ocupados do dia,
// normalizados para a localidade do calendário: o driver pode devolver
// timestamptz em outra zona e o mesmo instante precisa virar a mesma
// chave "HH:MM" da janela. Agendamentos cancelados liberam o slot na
// hora: o filtro olha o status vivo, não há recomputo retroativo.
func BookedTimes(aps []models.Appointment, loc *time.Location) map[string]bool {
	booked := make(map[string]bool, len(aps))
	for _, ap := range aps {
		if Status(ap.Status) == StatusCancelled {
			continue
		}
		booked[ap.Date.In(loc).Format(TimeLayout)] = true
	}
	return booked
}
