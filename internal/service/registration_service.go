package service

import (
	"context"
	"errors"

	"campus-events/internal/models"
	"campus-events/internal/repository"
	"campus-events/pkg/rabbitmq"

	"gorm.io/gorm"
)

type RegistrationService interface {
	Register(ctx context.Context, userID, eventID uint) error
	Unregister(ctx context.Context, userID, eventID uint) error
	ListForUser(ctx context.Context, userID uint) ([]models.RegisteredEvent, error)
}

type registrationService struct {
	registrations repository.RegistrationRepository
	events        repository.EventRepository
	publisher     *rabbitmq.Publisher
}

func NewRegistrationService(registrations repository.RegistrationRepository, events repository.EventRepository, publisher *rabbitmq.Publisher) RegistrationService {
	return &registrationService{registrations: registrations, events: events, publisher: publisher}
}

// Register inserts a registration subject to the capacity limit. The whole
// sequence runs in one transaction holding a row lock on the event, so the
// capacity check and insert cannot interleave with a concurrent attempt.
// The (user_id, event_id) uniqueness constraint remains the backstop against
// duplicate inserts racing past the existence check.
func (s *registrationService) Register(ctx context.Context, userID, eventID uint) error {
	err := s.registrations.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the event row — serializes concurrent registrations
		event, err := s.events.FindByIDForUpdate(ctx, tx, eventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		// 2. Check double-registration
		_, err = s.registrations.FindByUserAndEvent(ctx, tx, userID, eventID)
		if err == nil {
			return ErrAlreadyRegistered
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 3. Enforce capacity only when it parses as a number
		if limit := event.ParsedCapacity(); limit.Bounded {
			count, err := s.registrations.CountByEvent(ctx, tx, eventID)
			if err != nil {
				return err
			}
			if count >= int64(limit.Limit) {
				return ErrEventFull
			}
		}

		// 4. Insert; a racing duplicate surfaces as a constraint violation
		reg := &models.Registration{UserID: userID, EventID: eventID}
		if err := s.registrations.Create(ctx, tx, reg); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyRegistered
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("registration.created", map[string]uint{
			"user_id":  userID,
			"event_id": eventID,
		})
	}
	return nil
}

// Unregister is idempotent: deleting a registration that does not exist is
// still a success.
func (s *registrationService) Unregister(ctx context.Context, userID, eventID uint) error {
	removed, err := s.registrations.DeleteByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return err
	}

	if removed > 0 && s.publisher != nil {
		_ = s.publisher.Publish("registration.cancelled", map[string]uint{
			"user_id":  userID,
			"event_id": eventID,
		})
	}
	return nil
}

func (s *registrationService) ListForUser(ctx context.Context, userID uint) ([]models.RegisteredEvent, error) {
	return s.registrations.FindEventsByUser(ctx, userID)
}
