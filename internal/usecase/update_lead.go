package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/crmbase/lead-manager/internal/entity"
)

// UpdateLead applies a partial patch ({status?, notes?}) to a lead the
// actor can see. Sales reps may only move their own leads into ENGAGED
// or DISPOSED. The patch and the activity describing it are committed
// in one transaction; every successful update writes exactly one
// activity row.
func (uc *LeadWorkflow) UpdateLead(ctx context.Context, id string, patch UpdateLeadInput, actor Actor) (*entity.Lead, error) {
	if err := patch.Validate(); err != nil {
		return nil, NewDomainError(CodeValidation, err.Error())
	}

	lead, err := uc.GetLeadByID(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	statusChanged := false
	fields := map[string]interface{}{
		"updated_by_id": actor.ID,
		"updated_at":    time.Now(),
	}

	if patch.Status != nil {
		target := entity.LeadStatus(*patch.Status)
		if !actor.Role.CanSetStatus(target) {
			return nil, NewDomainError(CodeForbidden, "Sales reps may only set status ENGAGED or DISPOSED")
		}
		statusChanged = target != lead.Status
		fields["status"] = target
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}

	activityType := entity.ActivityUpdate
	if actor.Role == entity.RoleSalesRep && statusChanged {
		activityType = entity.ActivityEngage
	}

	note := "Notes updated"
	switch {
	case patch.Notes != nil:
		note = *patch.Notes
	case statusChanged:
		note = "Status updated to " + *patch.Status
	}

	activity := &entity.Activity{
		ID:            uuid.New().String(),
		LeadID:        lead.ID,
		Type:          activityType,
		Note:          note,
		PerformedByID: actor.ID,
		CreatedAt:     time.Now(),
	}

	if err := uc.Leads.UpdateWithActivity(ctx, lead.ID, fields, activity); err != nil {
		uc.Logger.Error("lead update aborted", "lead_id", lead.ID, "actor_id", actor.ID, "error", err)
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to update lead and record activity: " + err.Error()}
	}

	uc.Logger.Info("lead updated", "lead_id", lead.ID, "actor_id", actor.ID, "activity", activityType)

	return uc.reload(ctx, lead.ID)
}
