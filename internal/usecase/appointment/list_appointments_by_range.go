package appointment

import (
	"context"
	"time"

	domain "github.com/tiagorodrigues47/barbearia-api/internal/domain/appointment"
	"github.com/tiagorodrigues47/barbearia-api/internal/dto"
	"github.com/tiagorodrigues47/barbearia-api/internal/httperr"
)

type ListAppointmentsByRange struct {
	repo domain.Repository
}

func NewListAppointmentsByRange(
	repo domain.Repository,
) *ListAppointmentsByRange {
	return &ListAppointmentsByRange{
		repo: repo,
	}
}

func (uc *ListAppointmentsByRange) Execute(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]dto.AppointmentListDTO, error) {

	if end.Before(start) {
		return nil, httperr.ErrBusiness("invalid_range")
	}

	aps, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		barberID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	return dto.ToAppointmentList(aps), nil
}
