package appointment

import (
	"context"
	"time"

	domain "github.com/tiagorodrigues47/barbearia-api/internal/domain/appointment"
)

type GetAvailability struct {
	repo        domain.Repository
	intervalMin int
}

func NewGetAvailability(repo domain.Repository, intervalMin int) *GetAvailability {
	return &GetAvailability{repo: repo, intervalMin: intervalMin}
}

// Execute recalcula os slots livres a cada consulta; slot não é
// entidade persistida, é derivado de expediente ∩ ¬ledger.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	weekday := int(in.Date.Weekday())

	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, weekday)
	if err != nil {
		// sem expediente cadastrado → dia fechado
		return []string{}, nil
	}

	loc := in.Date.Location()
	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	aps, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.BarberID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	booked := domain.BookedTimes(aps, loc)

	return domain.GenerateSlots(wh, booked, uc.intervalMin), nil
}
