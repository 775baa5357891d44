package service

import (
	"context"

	"campus-events/internal/models"
	"campus-events/internal/repository"
)

// StatsService aggregates dashboard statistics for administrators.
type StatsService interface {
	Stats(ctx context.Context) (models.Stats, error)
	ListStudents(ctx context.Context) ([]models.UserWithCount, error)
}

type statsService struct {
	events        repository.EventRepository
	registrations repository.RegistrationRepository
	users         repository.UserRepository
}

func NewStatsService(events repository.EventRepository, registrations repository.RegistrationRepository, users repository.UserRepository) StatsService {
	return &statsService{events: events, registrations: registrations, users: users}
}

func (s *statsService) Stats(ctx context.Context) (models.Stats, error) {
	totalRegistrations, err := s.registrations.Count(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	totalEvents, err := s.events.Count(ctx)
	if err != nil {
		return models.Stats{}, err
	}

	usage, err := s.events.CapacityUsage(ctx)
	if err != nil {
		return models.Stats{}, err
	}

	// Events with non-numeric capacity count toward neither side of the
	// attendance ratio.
	var capacitySum, registeredSum int64
	for _, row := range usage {
		limit := models.ParseCapacity(row.Capacity)
		if !limit.Bounded {
			continue
		}
		capacitySum += int64(limit.Limit)
		registeredSum += row.RegisteredCount
	}

	var avgAttendance int64
	if capacitySum > 0 {
		avgAttendance = registeredSum * 100 / capacitySum
	}

	return models.Stats{
		TotalRegistrations: totalRegistrations,
		TotalEvents:        totalEvents,
		AvgAttendance:      avgAttendance,
	}, nil
}

func (s *statsService) ListStudents(ctx context.Context) ([]models.UserWithCount, error) {
	return s.users.FindStudentsWithCounts(ctx)
}
