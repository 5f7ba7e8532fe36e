package usecase

import "context"

// DeleteLead removes a lead and every activity belonging to it in one
// transaction. Managers only; admins are deliberately excluded.
func (uc *LeadWorkflow) DeleteLead(ctx context.Context, id string, actor Actor) error {
	if !actor.Role.CanDeleteLeads() {
		return NewDomainError(CodeForbidden, "Only managers can delete leads")
	}

	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if lead == nil {
		return NewDomainError(CodeLeadNotFound, "Lead not found")
	}

	if err := uc.Leads.DeleteWithActivities(ctx, id); err != nil {
		uc.Logger.Error("lead delete aborted", "lead_id", id, "actor_id", actor.ID, "error", err)
		return &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to delete lead: " + err.Error()}
	}

	uc.Logger.Info("lead deleted", "lead_id", id, "actor_id", actor.ID)
	return nil
}
