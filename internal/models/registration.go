package models

import "time"

type Registration struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_user_event" json:"user_id"`
	EventID      uint      `gorm:"not null;uniqueIndex:idx_user_event" json:"event_id"`
	RegisteredAt time.Time `gorm:"not null;autoCreateTime" json:"registered_at"`

	User  *User  `gorm:"foreignKey:UserID" json:"-"`
	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}
