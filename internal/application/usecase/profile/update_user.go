package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

// UpdateUserInput represents the input for user update (admin surface).
// Password is optional; when empty the stored hash is kept.
type UpdateUserInput struct {
	UserID   uuid.UUID
	Name     string
	Email    string
	Role     entity.UserRole
	Password string
}

// UpdateUserOutput represents the output of user update.
type UpdateUserOutput struct {
	Profile *entity.Profile
}

// UpdateUserUseCase handles user update logic.
type UpdateUserUseCase struct {
	profileRepo     adapter.ProfileRepository
	passwordService adapter.PasswordService
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(profileRepo adapter.ProfileRepository, passwordService adapter.PasswordService) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		profileRepo:     profileRepo,
		passwordService: passwordService,
	}
}

// Execute performs the user update.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error) {
	profile, err := uc.profileRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Name == "" || input.Email == "" {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeMissingUserFields,
			"name and email are required",
			nil,
		)
	}

	role := input.Role
	if role == "" {
		role = profile.Role
	}
	if !role.IsValid() {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeInvalidRole,
			"role must be admin or user",
			domainerror.ErrInvalidRole,
		)
	}

	profile.Name = input.Name
	profile.Email = strings.ToLower(strings.TrimSpace(input.Email))
	profile.Role = role

	if input.Password != "" {
		hash, err := uc.passwordService.HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		profile.PasswordHash = hash
	}

	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeEmailExists,
				"user with this email already exists",
				domainerror.ErrEmailAlreadyExists,
			)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateUserOutput{Profile: profile}, nil
}
