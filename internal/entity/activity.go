package entity

import "time"

type ActivityType string

const (
	ActivityUpdate     ActivityType = "UPDATE"
	ActivityEngage     ActivityType = "ENGAGE"
	ActivityAssignment ActivityType = "ASSIGNMENT"
)

// Activity is an append-only audit entry for one lead mutation. Rows
// are inserted inside the mutation's transaction and removed only when
// the owning lead is deleted.
type Activity struct {
	ID            string       `gorm:"primaryKey" json:"id"`
	LeadID        string       `gorm:"index" json:"lead_id"`
	Type          ActivityType `gorm:"type:varchar(20)" json:"type"`
	Note          string       `json:"note"`
	PerformedByID string       `json:"performed_by"`
	PerformedBy   *User        `gorm:"foreignKey:PerformedByID" json:"performer,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}
