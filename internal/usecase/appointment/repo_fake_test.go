package appointment

import (
	"context"
	"errors"
	"sync"
	"time"

	domain "github.com/tiagorodrigues47/barbearia-api/internal/domain/appointment"
	"github.com/tiagorodrigues47/barbearia-api/internal/httperr"
	"github.com/tiagorodrigues47/barbearia-api/internal/models"
	"github.com/tiagorodrigues47/barbearia-api/internal/notify"
)

// fakeRepo implementa o port do domínio em memória, com a mesma
// garantia do repositório real: check-and-insert do slot sob lock.
type fakeRepo struct {
	mu sync.Mutex

	barbers  map[uint]*models.Barber
	clients  map[string]*models.Client
	services map[uint]*models.Service

	hours map[int]*models.WorkingHours // weekday → expediente (barbeiro único nos testes)

	nextID        uint
	appointments  []models.Appointment
	notifications []models.Notification

	updateErr error // injetado para simular falha de escrita
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:  map[uint]*models.Barber{1: {ID: 1, Username: "tiago", Name: "Tiago"}},
		clients:  map[string]*models.Client{"c1": {ID: "c1", FirstName: "João", LastName: "Silva"}},
		services: map[uint]*models.Service{1: {ID: 1, Name: "Corte de Cabelo", Price: 35, Active: true}},
		hours:    map[int]*models.WorkingHours{},
	}
}

func (r *fakeRepo) setHours(weekday int, start, end string) {
	r.hours[weekday] = &models.WorkingHours{
		BarberID:  1,
		Weekday:   weekday,
		IsWorking: true,
		StartTime: start,
		EndTime:   end,
	}
}

var errNotFound = errors.New("not found")

func (r *fakeRepo) GetBarberByID(_ context.Context, id uint) (*models.Barber, error) {
	if b, ok := r.barbers[id]; ok {
		return b, nil
	}
	return nil, errNotFound
}

func (r *fakeRepo) GetWorkingHours(_ context.Context, _ uint, weekday int) (*models.WorkingHours, error) {
	if wh, ok := r.hours[weekday]; ok {
		return wh, nil
	}
	return nil, errNotFound
}

func (r *fakeRepo) ListWorkingHours(_ context.Context, _ uint) ([]models.WorkingHours, error) {
	out := make([]models.WorkingHours, 0, len(r.hours))
	for _, wh := range r.hours {
		out = append(out, *wh)
	}
	return out, nil
}

func (r *fakeRepo) ReplaceWorkingHours(_ context.Context, _ uint, entries []models.WorkingHours) error {
	r.hours = map[int]*models.WorkingHours{}
	for i := range entries {
		wh := entries[i]
		r.hours[wh.Weekday] = &wh
	}
	return nil
}

func (r *fakeRepo) GetClient(_ context.Context, id string) (*models.Client, error) {
	if c, ok := r.clients[id]; ok {
		return c, nil
	}
	return nil, errNotFound
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		return s, nil
	}
	return nil, errNotFound
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		if existing.BarberID == ap.BarberID &&
			existing.Date.Equal(ap.Date) &&
			domain.Status(existing.Status) != domain.StatusCancelled {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	r.nextID++
	ap.ID = r.nextID
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].ID == id {
			ap := r.appointments[i]
			return &ap, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeRepo) GetAppointmentForBarber(_ context.Context, appointmentID, barberID uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].ID == appointmentID && r.appointments[i].BarberID == barberID {
			ap := r.appointments[i]
			return &ap, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.updateErr != nil {
		return r.updateErr
	}

	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return errNotFound
}

func (r *fakeRepo) ListAppointmentsForDay(_ context.Context, barberID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	return r.ListAppointmentsForPeriod(context.Background(), barberID, dayStart, dayEnd)
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if ap.Date.Before(start) || !ap.Date.Before(end) {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (r *fakeRepo) CreateNotification(_ context.Context, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n.ID = uint(len(r.notifications) + 1)
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *fakeRepo) MarkNotificationReadByAppointment(_ context.Context, appointmentID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].AppointmentID != nil && *r.notifications[i].AppointmentID == appointmentID {
			r.notifications[i].Read = true
		}
	}
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeSink acumula os eventos publicados
type fakeSink struct {
	mu     sync.Mutex
	events []notify.Event
}

func (s *fakeSink) Publish(ev notify.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *fakeSink) all() []notify.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notify.Event(nil), s.events...)
}
