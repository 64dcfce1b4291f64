package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// CreateUserInput represents the input for user creation (admin surface).
type CreateUserInput struct {
	Name     string
	Email    string
	Role     entity.UserRole
	Password string
}

// CreateUserOutput represents the output of user creation.
type CreateUserOutput struct {
	Profile *entity.Profile
}

// CreateUserUseCase handles user creation logic.
type CreateUserUseCase struct {
	profileRepo     adapter.ProfileRepository
	passwordService adapter.PasswordService
	emailService    adapter.EmailService
	loginURL        string
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(
	profileRepo adapter.ProfileRepository,
	passwordService adapter.PasswordService,
	emailService adapter.EmailService,
	loginURL string,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		profileRepo:     profileRepo,
		passwordService: passwordService,
		emailService:    emailService,
		loginURL:        loginURL,
	}
}

// Execute performs the user creation. The welcome email is best effort and
// never fails the request.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeMissingUserFields,
			"name, email and password are required",
			nil,
		)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !strings.Contains(email, "@") {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	role := input.Role
	if role == "" {
		role = entity.UserRoleUser
	}
	if !role.IsValid() {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeInvalidRole,
			"role must be admin or user",
			domainerror.ErrInvalidRole,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := entity.NewProfile(input.Name, email, role, hash)

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeEmailExists,
				"user with this email already exists",
				domainerror.ErrEmailAlreadyExists,
			)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if uc.emailService != nil {
		if err := uc.emailService.SendWelcomeEmail(ctx, adapter.WelcomeEmailInput{
			UserName:  profile.Name,
			UserEmail: profile.Email,
			LoginURL:  uc.loginURL,
		}); err != nil {
			slog.Warn("welcome email failed", "email", profile.Email, "error", err)
		}
	}

	return &CreateUserOutput{Profile: profile}, nil
}
