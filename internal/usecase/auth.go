package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/crmbase/lead-manager/internal/entity"
	"github.com/crmbase/lead-manager/internal/infra/auth"
)

// AuthUseCase orchestrates registration, login and password updates
// against the user store, the password hasher and the token issuer.
type AuthUseCase struct {
	Users  UserRepositoryInterface
	Tokens TokenIssuerInterface
	Mailer EmailServiceInterface
	Logger *slog.Logger
}

func NewAuthUseCase(
	users UserRepositoryInterface,
	tokens TokenIssuerInterface,
	mailer EmailServiceInterface,
	logger *slog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		Users:  users,
		Tokens: tokens,
		Mailer: mailer,
		Logger: logger,
	}
}

func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, NewDomainError(CodeValidation, err.Error())
	}

	user, err := uc.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if user == nil {
		return nil, NewDomainError(CodeNotRegistered, "User not registered, please register first!")
	}

	if err := auth.ComparePassword(user.Password, input.Password); err != nil {
		uc.Logger.Warn("login rejected", "user_id", user.ID)
		return nil, NewDomainError(CodeInvalidCredentials, "Invalid credentials")
	}

	token, err := uc.Tokens.Generate(user)
	if err != nil {
		return nil, &TechnicalError{Code: "TOKEN_ERROR", Message: err.Error()}
	}

	return &LoginOutput{
		User:  UserSummary{ID: user.ID, Email: user.Email, Role: user.Role},
		Token: token,
	}, nil
}

// Register creates a MANAGER or SALES_REP account. Only admins reach
// this path (gated by middleware). The credential email is best-effort:
// a delivery failure is logged and never blocks the registration.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, NewDomainError(CodeValidation, err.Error())
	}

	existing, err := uc.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if existing != nil {
		return nil, NewDomainError(CodeDuplicateEmail, "User with this email already exists")
	}

	hash, err := auth.HashPassword(input.Password, auth.DefaultCost)
	if err != nil {
		return nil, &TechnicalError{Code: "HASH_ERROR", Message: err.Error()}
	}

	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  hash,
		Role:      entity.Role(input.Role),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.Users.Create(ctx, user); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	if uc.Mailer != nil {
		if err := uc.Mailer.SendCredentials(user.Email, user.Name, input.Password); err != nil {
			uc.Logger.Error("credential email failed", "user_id", user.ID, "error", err)
		}
	}

	uc.Logger.Info("user registered", "user_id", user.ID, "role", user.Role)

	return &RegisterOutput{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// RegisterAdmin is the one-time bootstrap path, usable only while zero
// admin accounts exist. The password is hashed at a higher work factor.
func (uc *AuthUseCase) RegisterAdmin(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if err := input.ValidateAdmin(); err != nil {
		return nil, NewDomainError(CodeValidation, err.Error())
	}

	admins, err := uc.Users.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if admins > 0 {
		return nil, NewDomainError(CodeAdminExists, "Admin user already exists! Request admin to create your account.")
	}

	existing, err := uc.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if existing != nil {
		return nil, NewDomainError(CodeDuplicateEmail, "Email already in use")
	}

	hash, err := auth.HashPassword(input.Password, auth.AdminCost)
	if err != nil {
		return nil, &TechnicalError{Code: "HASH_ERROR", Message: err.Error()}
	}

	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  hash,
		Role:      entity.RoleAdmin,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.Users.Create(ctx, user); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	uc.Logger.Info("admin bootstrapped", "user_id", user.ID)

	return &RegisterOutput{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

func (uc *AuthUseCase) UpdatePassword(ctx context.Context, userID string, input UpdatePasswordInput) error {
	if err := input.Validate(); err != nil {
		return NewDomainError(CodeValidation, err.Error())
	}

	user, err := uc.Users.FindByID(ctx, userID)
	if err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if user == nil {
		return NewDomainError(CodeUserNotFound, "User not found")
	}

	if err := auth.ComparePassword(user.Password, input.CurrentPassword); err != nil {
		return NewDomainError(CodeIncorrectPassword, "Current password is incorrect")
	}

	hash, err := auth.HashPassword(input.NewPassword, auth.DefaultCost)
	if err != nil {
		return &TechnicalError{Code: "HASH_ERROR", Message: err.Error()}
	}

	if err := uc.Users.UpdatePassword(ctx, userID, hash); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	uc.Logger.Info("password updated", "user_id", userID)
	return nil
}
