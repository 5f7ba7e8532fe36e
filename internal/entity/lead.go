package entity

import "time"

type LeadStatus string

const (
	StatusNew      LeadStatus = "NEW"
	StatusAssigned LeadStatus = "ASSIGNED"
	StatusEngaged  LeadStatus = "ENGAGED"
	StatusDisposed LeadStatus = "DISPOSED"
)

func (s LeadStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusAssigned, StatusEngaged, StatusDisposed:
		return true
	default:
		return false
	}
}

// Lead is the aggregate root of the pipeline. Activities belong to it
// and are only ever written in the same transaction as a lead mutation.
type Lead struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Status       LeadStatus `gorm:"type:varchar(20)" json:"status"`
	Notes        string     `json:"notes,omitempty"`
	CreatedByID  string     `json:"created_by"`
	CreatedBy    *User      `gorm:"foreignKey:CreatedByID" json:"creator,omitempty"`
	UpdatedByID  string     `json:"updated_by"`
	UpdatedBy    *User      `gorm:"foreignKey:UpdatedByID" json:"-"`
	AssignedToID *string    `json:"assigned_to,omitempty"`
	AssignedTo   *User      `gorm:"foreignKey:AssignedToID" json:"assignee,omitempty"`
	Activities   []Activity `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"activities,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
