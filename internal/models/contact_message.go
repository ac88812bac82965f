package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a submission from the public contact form. The
// collection is write-only from the public surface; retrieval is an
// external concern (the operator reads messages out of band).
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessageInput is the payload accepted from the contact form.
type ContactMessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
