package models

import (
	"strconv"
	"strings"
	"time"
)

type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Location  string    `json:"location"`
	Date      string    `gorm:"not null" json:"date"`
	Time      string    `gorm:"not null" json:"time"`
	Capacity  string    `gorm:"not null;default:'50'" json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

// Capacity is the parsed form of an event's capacity column. The column
// stores free text: a base-10 integer bounds registrations, anything else
// ("Unlimited", blank, decimals) means no bound applies.
type Capacity struct {
	Bounded bool
	Limit   int
}

func ParseCapacity(s string) Capacity {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Capacity{}
	}
	return Capacity{Bounded: true, Limit: n}
}

func (e *Event) ParsedCapacity() Capacity {
	return ParseCapacity(e.Capacity)
}
