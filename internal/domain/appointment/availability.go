package appointment

import "time"

type AvailabilityInput struct {
	BarberID uint
	Date     time.Time
}
