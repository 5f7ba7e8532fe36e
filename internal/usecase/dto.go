package usecase

import "github.com/crmbase/lead-manager/internal/entity"

// Actor identifies the authenticated caller of a service operation,
// as decoded from the session token.
type Actor struct {
	ID   string
	Role entity.Role
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserSummary struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

type LoginOutput struct {
	User  UserSummary `json:"user"`
	Token string      `json:"-"` // transported as a cookie, never in the body
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type RegisterOutput struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

type UpdatePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type CreateLeadInput struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// UpdateLeadInput is a partial patch; nil means "leave unchanged".
type UpdateLeadInput struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

type AssignLeadInput struct {
	AssignedTo string `json:"assignedTo"`
}

// LeadFilter narrows list results. AssignedTo is honored only for
// managers and admins; for sales reps it is forced to the actor.
type LeadFilter struct {
	Status     string
	AssignedTo string
}
