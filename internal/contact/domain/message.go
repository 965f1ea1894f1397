package domain

import (
	"context"
	"time"
)

// Message is a contact form submission
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Subject   string    `json:"subject"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email" gorm:"not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name
func (Message) TableName() string {
	return "contact_messages"
}

// MessageRepository defines the contract for the messaging store
type MessageRepository interface {
	Create(ctx context.Context, m *Message) error
	FindAll(ctx context.Context) ([]Message, error)
	Delete(ctx context.Context, id uint) error
}
