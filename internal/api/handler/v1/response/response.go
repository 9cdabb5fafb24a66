package response

import (
	"time"
)

type Message struct {
	Message string `json:"message" example:"student deactivated"`
}

type Health struct {
	Status    string    `json:"status" example:"healthy"`
	Database  string    `json:"database" example:"connected"`
	Timestamp time.Time `json:"timestamp"`
}
