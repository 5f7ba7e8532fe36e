package usecase

import (
	"context"

	"github.com/crmbase/lead-manager/internal/entity"
)

// Repository lookups return (nil, nil) when the record is absent so
// services can decide how absence surfaces to the caller.

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]entity.Lead, error)
	// UpdateWithActivity applies the field patch and inserts the
	// activity in one datastore transaction: both commit or neither.
	UpdateWithActivity(ctx context.Context, leadID string, fields map[string]interface{}, activity *entity.Activity) error
	// DeleteWithActivities removes the lead and every activity that
	// belongs to it, leaving no orphans.
	DeleteWithActivities(ctx context.Context, leadID string) error
}

type TokenIssuerInterface interface {
	Generate(user *entity.User) (string, error)
}

type EmailServiceInterface interface {
	SendCredentials(to, name, password string) error
}
