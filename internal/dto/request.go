package dto

type LoginRequest struct {
	Email string `json:"email"`
	Role  string `json:"role" validate:"omitempty,oneof=student admin"`
}

type EventRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Capacity string `json:"capacity"`
}
