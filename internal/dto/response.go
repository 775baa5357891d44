package dto

import "campus-events/internal/models"

// Every endpoint answers with a success flag; failures carry a message
// (rendered centrally by the error handler middleware).

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	Redirect string `json:"redirect"`
}

type UserInfo struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type UserResponse struct {
	Success bool     `json:"success"`
	User    UserInfo `json:"user"`
}

type EventListResponse struct {
	Success bool                    `json:"success"`
	Events  []models.EventWithCount `json:"events"`
}

type CreateEventResponse struct {
	Success bool   `json:"success"`
	EventID uint   `json:"event_id"`
	Message string `json:"message"`
}

type RegistrationListResponse struct {
	Success       bool                     `json:"success"`
	Registrations []models.RegisteredEvent `json:"registrations"`
}

type StatsResponse struct {
	Success bool         `json:"success"`
	Stats   models.Stats `json:"stats"`
}

type UserListResponse struct {
	Success bool                   `json:"success"`
	Users   []models.UserWithCount `json:"users"`
}
