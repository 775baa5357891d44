package database

import (
	"fmt"

	"campus-events/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed bootstraps sample events and the default admin account on first run.
// It is a no-op once any event exists.
func Seed(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Event{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count events: %w", err)
	}
	if count > 0 {
		log.Debug("database already seeded", zap.Int64("events", count))
		return nil
	}

	events := []models.Event{
		{Name: "Annual Tech Symposium 2026", Location: "Main Auditorium", Date: "2026-03-15", Time: "10:00", Capacity: "200"},
		{Name: "Workshop on GenAI & LLMs", Location: "Tech Lab 1", Date: "2026-02-20", Time: "14:00", Capacity: "50"},
		{Name: "Inter-College Sports Meet", Location: "Sports Complex", Date: "2026-04-10", Time: "09:00", Capacity: "500"},
		{Name: "Cultural Night 2026", Location: "Open Air Theater", Date: "2026-03-25", Time: "18:30", Capacity: "Unlimited"},
	}
	if err := db.Create(&events).Error; err != nil {
		return fmt.Errorf("seed events: %w", err)
	}

	admin := models.User{Name: "Admin User", Email: "admin@college.edu", Role: models.RoleAdmin}
	if err := db.Where(models.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	log.Info("seeded sample data", zap.Int("events", len(events)), zap.String("admin", admin.Email))
	return nil
}
