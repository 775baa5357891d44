package service

import (
	"context"
	"fmt"
	"strings"

	"campus-events/internal/models"
	"campus-events/internal/repository"
	"campus-events/pkg/rabbitmq"

	"gorm.io/gorm"
)

// EventInput carries the mutable fields of an event as submitted. Capacity
// is kept verbatim; "Unlimited" or any other non-numeric text is valid.
type EventInput struct {
	Name     string
	Location string
	Date     string
	Time     string
	Capacity string
}

type EventService interface {
	List(ctx context.Context) ([]models.EventWithCount, error)
	Create(ctx context.Context, input EventInput) (*models.Event, error)
	Update(ctx context.Context, id uint, input EventInput) error
	Delete(ctx context.Context, id uint) error
}

type eventService struct {
	events        repository.EventRepository
	registrations repository.RegistrationRepository
	publisher     *rabbitmq.Publisher
}

func NewEventService(events repository.EventRepository, registrations repository.RegistrationRepository, publisher *rabbitmq.Publisher) EventService {
	return &eventService{events: events, registrations: registrations, publisher: publisher}
}

func (s *eventService) List(ctx context.Context) ([]models.EventWithCount, error) {
	return s.events.FindAllWithCounts(ctx)
}

func (s *eventService) Create(ctx context.Context, input EventInput) (*models.Event, error) {
	event, err := eventFromInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.created", event)
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id uint, input EventInput) error {
	event, err := eventFromInput(input)
	if err != nil {
		return err
	}
	// A zero-row update is a no-op success; the storage layer does not
	// report missing ids here.
	if err := s.events.Update(ctx, id, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	if s.publisher != nil {
		event.ID = id
		_ = s.publisher.Publish("event.updated", event)
	}
	return nil
}

// Delete removes the event and its registrations in one transaction;
// registrations are owned by the event and go with it.
func (s *eventService) Delete(ctx context.Context, id uint) error {
	err := s.events.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.registrations.DeleteByEvent(ctx, tx, id); err != nil {
			return err
		}
		return s.events.Delete(ctx, tx, id)
	})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.deleted", map[string]uint{"id": id})
	}
	return nil
}

func eventFromInput(input EventInput) (*models.Event, error) {
	name := strings.TrimSpace(input.Name)
	date := strings.TrimSpace(input.Date)
	timeStr := strings.TrimSpace(input.Time)
	if name == "" || date == "" || timeStr == "" {
		return nil, ErrMissingFields
	}

	capacity := input.Capacity
	if capacity == "" {
		capacity = "50"
	}

	return &models.Event{
		Name:     name,
		Location: strings.TrimSpace(input.Location),
		Date:     date,
		Time:     timeStr,
		Capacity: capacity,
	}, nil
}
