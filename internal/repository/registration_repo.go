package repository

import (
	"context"

	"campus-events/internal/models"

	"gorm.io/gorm"
)

type RegistrationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reg *models.Registration) error
	FindByUserAndEvent(ctx context.Context, tx *gorm.DB, userID, eventID uint) (*models.Registration, error)
	CountByEvent(ctx context.Context, tx *gorm.DB, eventID uint) (int64, error)
	DeleteByUserAndEvent(ctx context.Context, userID, eventID uint) (int64, error)
	DeleteByEvent(ctx context.Context, tx *gorm.DB, eventID uint) error
	FindEventsByUser(ctx context.Context, userID uint) ([]models.RegisteredEvent, error)
	Count(ctx context.Context) (int64, error)
	GetDB() *gorm.DB
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *registrationRepository) Create(ctx context.Context, tx *gorm.DB, reg *models.Registration) error {
	return tx.WithContext(ctx).Create(reg).Error
}

func (r *registrationRepository) FindByUserAndEvent(ctx context.Context, tx *gorm.DB, userID, eventID uint) (*models.Registration, error) {
	var reg models.Registration
	err := tx.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) CountByEvent(ctx context.Context, tx *gorm.DB, eventID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Registration{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

// DeleteByUserAndEvent returns the number of rows removed; zero is not an
// error, which keeps unregistration idempotent.
func (r *registrationRepository) DeleteByUserAndEvent(ctx context.Context, userID, eventID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&models.Registration{})
	return result.RowsAffected, result.Error
}

func (r *registrationRepository) DeleteByEvent(ctx context.Context, tx *gorm.DB, eventID uint) error {
	return tx.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&models.Registration{}).Error
}

func (r *registrationRepository) FindEventsByUser(ctx context.Context, userID uint) ([]models.RegisteredEvent, error) {
	var rows []models.RegisteredEvent
	err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Select("events.*, registrations.registered_at").
		Joins("JOIN registrations ON registrations.event_id = events.id").
		Where("registrations.user_id = ?", userID).
		Order("events.date ASC, events.time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *registrationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Registration{}).Count(&count).Error
	return count, err
}
