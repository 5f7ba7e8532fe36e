package entity

// Role is the closed set of access levels a user can hold. All
// authorization decisions go through the policy methods below so that
// handlers and usecases never compare raw strings.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleSalesRep Role = "SALES_REP"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSalesRep:
		return true
	default:
		return false
	}
}

// CanRegisterUsers gates POST /api/auth/register. The one-time admin
// bootstrap path is handled separately and does not consult the policy.
func (r Role) CanRegisterUsers() bool {
	return r == RoleAdmin
}

func (r Role) CanCreateLeads() bool {
	return r == RoleManager
}

func (r Role) CanAssignLeads() bool {
	return r == RoleManager
}

func (r Role) CanDeleteLeads() bool {
	return r == RoleManager
}

// SeesAllLeads reports whether list and lookup results are unfiltered.
// Sales reps only ever see leads assigned to them.
func (r Role) SeesAllLeads() bool {
	return r == RoleAdmin || r == RoleManager
}

// CanSetStatus reports whether the role may move a lead into the given
// status. Managers and admins are unrestricted; sales reps may only
// mark a lead engaged or disposed.
func (r Role) CanSetStatus(status LeadStatus) bool {
	switch r {
	case RoleAdmin, RoleManager:
		return true
	case RoleSalesRep:
		return status == StatusEngaged || status == StatusDisposed
	default:
		return false
	}
}

// CanViewLead decides single-record visibility. Callers must treat a
// false result exactly like a missing lead so that existence never
// leaks to sales reps.
func (r Role) CanViewLead(lead *Lead, actorID string) bool {
	if r.SeesAllLeads() {
		return true
	}
	return lead.AssignedToID != nil && *lead.AssignedToID == actorID
}
