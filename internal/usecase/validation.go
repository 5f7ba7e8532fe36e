package usecase

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/crmbase/lead-manager/internal/entity"
)

var (
	hasUppercase = regexp.MustCompile(`[A-Z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
	hasSpecial   = regexp.MustCompile(`[!@#$%^&*]`)
)

func (r LoginInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// Validate covers ordinary registration. Admins cannot be created on
// this path, so ADMIN is not an accepted role value.
func (r RegisterInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
		validation.Field(&r.Role,
			validation.Required,
			validation.In(string(entity.RoleManager), string(entity.RoleSalesRep)).
				Error("must be either MANAGER or SALES_REP"),
		),
	)
}

// ValidateAdmin covers the one-time bootstrap path, which demands a
// stronger password and the literal ADMIN role.
func (r RegisterInput) ValidateAdmin() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(8, 100),
			validation.Match(hasUppercase).Error("must contain at least one uppercase letter"),
			validation.Match(hasDigit).Error("must contain at least one number"),
		),
		validation.Field(&r.Role,
			validation.Required,
			validation.In(string(entity.RoleAdmin)).Error("must be ADMIN"),
		),
	)
}

func (r UpdatePasswordInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required, validation.Length(6, 100)),
		validation.Field(&r.NewPassword,
			validation.Required,
			validation.Length(8, 100),
			validation.Match(hasUppercase).Error("must contain at least one uppercase letter"),
			validation.Match(hasDigit).Error("must contain at least one number"),
			validation.Match(hasSpecial).Error("must contain at least one special character"),
			validation.By(differentFrom(r.CurrentPassword)),
		),
	)
}

func differentFrom(current string) validation.RuleFunc {
	return func(value interface{}) error {
		if s, _ := value.(string); s == current {
			return errors.New("must be different from current password")
		}
		return nil
	}
}

func (r CreateLeadInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, is.Email),
	)
}

func (r UpdateLeadInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.In(
			string(entity.StatusNew),
			string(entity.StatusAssigned),
			string(entity.StatusEngaged),
			string(entity.StatusDisposed),
		)),
	)
}

func (r AssignLeadInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AssignedTo, validation.Required),
	)
}

func (f LeadFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Status, validation.In(
			string(entity.StatusNew),
			string(entity.StatusAssigned),
			string(entity.StatusEngaged),
			string(entity.StatusDisposed),
		)),
	)
}
