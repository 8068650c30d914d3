package models

import (
	"gorm.io/gorm"
)

// Message is an append-only record of one message between two
// participants. It is never updated or deleted after creation;
// CreatedAt is the message timestamp.
type Message struct {
	gorm.Model
	SenderID   string `gorm:"index;not null" json:"sender_id"`
	ReceiverID string `gorm:"index;not null" json:"receiver_id"`
	Content    string `gorm:"not null" json:"content"`
}
