package models

import "time"

// ConversationRow is one display-ready entry of the conversation list.
type ConversationRow struct {
	CounterpartID string    `json:"counterpart_id"`
	DisplayName   string    `json:"display_name"`
	ProfilePhoto  *string   `json:"profile_photo"`
	LocationID    string    `json:"location_id"`
	DepartmentID  string    `json:"department_id"`
	FromSnapshot  bool      `json:"from_snapshot"`
	LastMessage   string    `json:"last_message"`
	LastSenderID  string    `json:"last_sender_id"`
	LastDate      time.Time `json:"last_date"`
}
