package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/crmbase/lead-manager/internal/entity"
)

// LeadWorkflow orchestrates the role-scoped lead lifecycle: creation,
// visibility-filtered reads, status updates, assignment and deletion.
// Every mutation that touches a lead also appends exactly one activity
// record inside the same datastore transaction.
type LeadWorkflow struct {
	Leads  LeadRepositoryInterface
	Users  UserRepositoryInterface
	Logger *slog.Logger
}

func NewLeadWorkflow(
	leads LeadRepositoryInterface,
	users UserRepositoryInterface,
	logger *slog.Logger,
) *LeadWorkflow {
	return &LeadWorkflow{
		Leads:  leads,
		Users:  users,
		Logger: logger,
	}
}

// CreateLead persists a new lead with status NEW and no assignee.
// Managers only.
func (uc *LeadWorkflow) CreateLead(ctx context.Context, input CreateLeadInput, actor Actor) (*entity.Lead, error) {
	if !actor.Role.CanCreateLeads() {
		return nil, NewDomainError(CodeForbidden, "Only managers can create leads")
	}
	if err := input.Validate(); err != nil {
		return nil, NewDomainError(CodeValidation, err.Error())
	}

	lead := &entity.Lead{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Notes:       input.Notes,
		Status:      entity.StatusNew,
		CreatedByID: actor.ID,
		UpdatedByID: actor.ID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	uc.Logger.Info("lead created", "lead_id", lead.ID, "actor_id", actor.ID)

	return uc.reload(ctx, lead.ID)
}

// ListLeads returns leads visible to the actor, most recent first,
// with assignee, creator and activity history expanded. Sales reps
// only ever see leads assigned to them.
func (uc *LeadWorkflow) ListLeads(ctx context.Context, filter LeadFilter, actor Actor) ([]entity.Lead, error) {
	if err := filter.Validate(); err != nil {
		return nil, NewDomainError(CodeValidation, err.Error())
	}

	if !actor.Role.SeesAllLeads() {
		filter.AssignedTo = actor.ID
	}

	leads, err := uc.Leads.List(ctx, filter)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return leads, nil
}

// GetLeadByID applies the same visibility rule as ListLeads to a
// single record. A lead that is absent and a lead the actor may not
// see produce the same not-found error, so existence never leaks.
func (uc *LeadWorkflow) GetLeadByID(ctx context.Context, id string, actor Actor) (*entity.Lead, error) {
	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if lead == nil || !actor.Role.CanViewLead(lead, actor.ID) {
		return nil, NewDomainError(CodeLeadNotFound, "Lead not found")
	}
	return lead, nil
}

func (uc *LeadWorkflow) reload(ctx context.Context, id string) (*entity.Lead, error) {
	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if lead == nil {
		return nil, NewDomainError(CodeLeadNotFound, "Lead not found")
	}
	return lead, nil
}
