package models

import (
	"time"

	"gorm.io/gorm"
)

// Conversation is the denormalized index record for one unordered
// participant pair. ParticipantA/ParticipantB keep the identifiers as
// they arrived; PairKey is the normalized sorted form and carries the
// uniqueness guarantee for the pair.
type Conversation struct {
	gorm.Model
	ParticipantA        string            `gorm:"not null" json:"participant_a"`
	ParticipantB        string            `gorm:"not null" json:"participant_b"`
	PairKey             string            `gorm:"uniqueIndex;not null" json:"-"`
	LastMessageContent  string            `json:"last_message"`
	LastMessageSenderID string            `json:"last_message_sender_id"`
	LastMessageAt       time.Time         `json:"last_message_at"`
	EmployeeSnapshot    *EmployeeSnapshot `gorm:"type:jsonb" json:"employee_snapshot"`
}

func (conversation *Conversation) HasParticipant(id string) bool {
	return conversation.ParticipantA == id || conversation.ParticipantB == id
}

// Counterpart returns the other member of the pair from the caller's
// point of view.
func (conversation *Conversation) Counterpart(callerID string) string {
	if conversation.ParticipantA == callerID {
		return conversation.ParticipantB
	}
	return conversation.ParticipantA
}

// ToConversationRow builds the display row for one caller. The
// employee argument is the freshly resolved counterpart and may be
// nil; the stored snapshot is the first fallback and the raw
// counterpart id the last.
func (conversation *Conversation) ToConversationRow(callerID string, employee *Employee) ConversationRow {
	counterpartID := conversation.Counterpart(callerID)
	row := ConversationRow{
		CounterpartID: counterpartID,
		DisplayName:   counterpartID,
		LastMessage:   conversation.LastMessageContent,
		LastSenderID:  conversation.LastMessageSenderID,
		LastDate:      conversation.LastMessageAt,
	}
	if employee != nil {
		row.DisplayName = employee.DisplayName()
		row.ProfilePhoto = employee.ProfilePhoto
		row.LocationID = employee.LocationID
		row.DepartmentID = employee.DepartmentID
		return row
	}
	// The snapshot always describes the employee half of the pair.
	// When the caller is that employee, the snapshot is the caller,
	// not the counterpart, and must not be used for display.
	if snapshot := conversation.EmployeeSnapshot; snapshot != nil && snapshot.EmployeeCode != callerID {
		row.DisplayName = snapshot.DisplayName()
		row.ProfilePhoto = snapshot.ProfilePhoto
		row.LocationID = snapshot.LocationID
		row.DepartmentID = snapshot.DepartmentID
		row.FromSnapshot = true
	}
	return row
}
