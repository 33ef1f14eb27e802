package domain

import "github.com/google/uuid"

// Service is a barbershop service from the catalog
type Service struct {
	ID              uuid.UUID
	BarbershopID    uuid.UUID
	Name            string
	DurationMinutes int
	Price           float64
	IsActive        bool
}

// TotalDuration sums durations of the selected services
func TotalDuration(services []*Service) int {
	total := 0
	for _, s := range services {
		total += s.DurationMinutes
	}
	return total
}
