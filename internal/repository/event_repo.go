package repository

import (
	"context"

	"campus-events/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, id uint, event *models.Event) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error)
	FindAllWithCounts(ctx context.Context) ([]models.EventWithCount, error)
	CapacityUsage(ctx context.Context) ([]models.CapacityUsage, error)
	Count(ctx context.Context) (int64, error)
	GetDB() *gorm.DB
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// Update replaces all mutable fields. A zero-row update is not an error.
func (r *eventRepository) Update(ctx context.Context, id uint, event *models.Event) error {
	return r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":     event.Name,
			"location": event.Location,
			"date":     event.Date,
			"time":     event.Time,
			"capacity": event.Capacity,
		}).Error
}

func (r *eventRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Event{}, id).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByIDForUpdate acquires a row-level lock on the event within the given
// transaction, serializing concurrent registration attempts.
func (r *eventRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error) {
	var event models.Event
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAllWithCounts(ctx context.Context) ([]models.EventWithCount, error) {
	var events []models.EventWithCount
	err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Select("events.*, (SELECT COUNT(*) FROM registrations WHERE registrations.event_id = events.id) AS registered_count").
		Order("events.date ASC, events.time ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) CapacityUsage(ctx context.Context) ([]models.CapacityUsage, error) {
	var rows []models.CapacityUsage
	err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Select("events.capacity, (SELECT COUNT(*) FROM registrations WHERE registrations.event_id = events.id) AS registered_count").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *eventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&count).Error
	return count, err
}
