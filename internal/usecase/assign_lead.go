package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/crmbase/lead-manager/internal/entity"
)

// AssignLead hands a lead to a sales rep: the assignee must be an
// existing SALES_REP user, the status is forced to ASSIGNED, and an
// ASSIGNMENT activity naming the assignee is written in the same
// transaction. Reassigning an already-assigned lead is allowed and
// simply appends another activity.
func (uc *LeadWorkflow) AssignLead(ctx context.Context, id string, input AssignLeadInput, actor Actor) (*entity.Lead, error) {
	if !actor.Role.CanAssignLeads() {
		return nil, NewDomainError(CodeForbidden, "Only managers can assign leads")
	}
	if err := input.Validate(); err != nil {
		return nil, NewDomainError(CodeValidation, err.Error())
	}

	assignee, err := uc.Users.FindByID(ctx, input.AssignedTo)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if assignee == nil || assignee.Role != entity.RoleSalesRep {
		return nil, NewDomainError(CodeInvalidAssignee, "Assignee must be an existing sales rep")
	}

	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if lead == nil {
		return nil, NewDomainError(CodeLeadNotFound, "Lead not found")
	}

	fields := map[string]interface{}{
		"assigned_to_id": assignee.ID,
		"status":         entity.StatusAssigned,
		"updated_by_id":  actor.ID,
		"updated_at":     time.Now(),
	}

	activity := &entity.Activity{
		ID:            uuid.New().String(),
		LeadID:        lead.ID,
		Type:          entity.ActivityAssignment,
		Note:          fmt.Sprintf("Assigned to %s (%s)", assignee.Name, assignee.Email),
		PerformedByID: actor.ID,
		CreatedAt:     time.Now(),
	}

	if err := uc.Leads.UpdateWithActivity(ctx, lead.ID, fields, activity); err != nil {
		uc.Logger.Error("lead assignment aborted", "lead_id", lead.ID, "actor_id", actor.ID, "error", err)
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to assign lead and record activity: " + err.Error()}
	}

	uc.Logger.Info("lead assigned", "lead_id", lead.ID, "assignee_id", assignee.ID, "actor_id", actor.ID)

	return uc.reload(ctx, lead.ID)
}
