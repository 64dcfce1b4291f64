package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

type fakeProfileRepo struct {
	profiles map[string]*entity.Profile
}

func newFakeProfileRepo(profiles ...*entity.Profile) *fakeProfileRepo {
	m := make(map[string]*entity.Profile, len(profiles))
	for _, p := range profiles {
		m[p.Email] = p
	}
	return &fakeProfileRepo{profiles: m}
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	if _, ok := r.profiles[profile.Email]; ok {
		return domainerror.ErrEmailAlreadyExists
	}
	r.profiles[profile.Email] = profile
	return nil
}

func (r *fakeProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	for _, p := range r.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeProfileRepo) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	if p, ok := r.profiles[email]; ok {
		return p, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeProfileRepo) List(ctx context.Context) ([]*entity.Profile, error) {
	out := make([]*entity.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProfileRepo) Save(ctx context.Context, profile *entity.Profile) error {
	r.profiles[profile.Email] = profile
	return nil
}

// fakePasswordService treats the hash as "hash:" + plaintext.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hash:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokenService struct {
	revoked []string
}

func (s *fakeTokenService) GenerateTokenPair(ctx context.Context, profile *entity.Profile) (*adapter.TokenPair, error) {
	return &adapter.TokenPair{
		AccessToken:  "access-" + profile.ID.String(),
		RefreshToken: "refresh-" + profile.ID.String(),
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func (s *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func (s *fakeTokenService) RevokeRefreshToken(ctx context.Context, token string) error {
	s.revoked = append(s.revoked, token)
	return nil
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	profile := entity.NewProfile("Fathia", "fathia@example.com", entity.UserRoleUser, "hash:secret123")

	t.Run("valid credentials return a token pair", func(t *testing.T) {
		uc := NewLoginUserUseCase(newFakeProfileRepo(profile), fakePasswordService{}, &fakeTokenService{})

		output, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "fathia@example.com",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Fatal("expected both tokens to be set")
		}
		if output.Profile.Email != "fathia@example.com" {
			t.Fatalf("unexpected profile: %v", output.Profile.Email)
		}
	})

	t.Run("email lookup is case insensitive", func(t *testing.T) {
		uc := NewLoginUserUseCase(newFakeProfileRepo(profile), fakePasswordService{}, &fakeTokenService{})

		_, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "  Fathia@Example.COM ",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wrong password and unknown email produce the same error", func(t *testing.T) {
		uc := NewLoginUserUseCase(newFakeProfileRepo(profile), fakePasswordService{}, &fakeTokenService{})

		_, wrongPassErr := uc.Execute(context.Background(), LoginUserInput{
			Email:    "fathia@example.com",
			Password: "nope",
		})
		_, unknownEmailErr := uc.Execute(context.Background(), LoginUserInput{
			Email:    "nobody@example.com",
			Password: "secret123",
		})

		for name, err := range map[string]error{"wrong password": wrongPassErr, "unknown email": unknownEmailErr} {
			var authErr *domainerror.AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("%s: expected AuthError, got %v", name, err)
			}
			if authErr.Code != domainerror.ErrCodeInvalidCredentials {
				t.Fatalf("%s: expected code %s, got %s", name, domainerror.ErrCodeInvalidCredentials, authErr.Code)
			}
		}
		if wrongPassErr.Error() != unknownEmailErr.Error() {
			t.Fatal("error messages must not reveal whether the email exists")
		}
	})

	t.Run("missing fields are rejected before any lookup", func(t *testing.T) {
		uc := NewLoginUserUseCase(newFakeProfileRepo(), fakePasswordService{}, &fakeTokenService{})

		_, err := uc.Execute(context.Background(), LoginUserInput{Email: "", Password: ""})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeMissingFields {
			t.Fatalf("expected code %s, got %s", domainerror.ErrCodeMissingFields, authErr.Code)
		}
	})
}
