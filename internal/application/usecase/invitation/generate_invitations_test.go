package invitation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

type fakeGuestRepo struct {
	guests []*entity.Guest
}

func (r *fakeGuestRepo) Create(ctx context.Context, guest *entity.Guest) error { return nil }
func (r *fakeGuestRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	return nil, domainerror.ErrGuestNotFound
}
func (r *fakeGuestRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Guest, error) {
	return r.guests, nil
}
func (r *fakeGuestRepo) FindByUserAndGroup(ctx context.Context, userID, groupID uuid.UUID) ([]*entity.Guest, error) {
	var filtered []*entity.Guest
	for _, g := range r.guests {
		if g.UserID == userID && g.GroupID != nil && *g.GroupID == groupID {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}
func (r *fakeGuestRepo) Save(ctx context.Context, guest *entity.Guest) error { return nil }
func (r *fakeGuestRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (r *fakeGuestRepo) Count(ctx context.Context) (int64, error)            { return int64(len(r.guests)), nil }

type fakeTemplateRepo struct {
	templates map[uuid.UUID]*entity.MessageTemplate
}

func (r *fakeTemplateRepo) Create(ctx context.Context, t *entity.MessageTemplate) error { return nil }
func (r *fakeTemplateRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MessageTemplate, error) {
	if t, ok := r.templates[id]; ok {
		return t, nil
	}
	return nil, domainerror.ErrTemplateNotFound
}
func (r *fakeTemplateRepo) FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.MessageTemplate, error) {
	return nil, nil
}
func (r *fakeTemplateRepo) FindGlobal(ctx context.Context) ([]*entity.MessageTemplate, error) {
	return nil, nil
}
func (r *fakeTemplateRepo) Save(ctx context.Context, t *entity.MessageTemplate) error { return nil }
func (r *fakeTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

type fakeEventSettingRepo struct {
	settings map[uuid.UUID]*entity.EventSetting // keyed by user ID
}

func (r *fakeEventSettingRepo) Create(ctx context.Context, s *entity.EventSetting) error { return nil }
func (r *fakeEventSettingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.EventSetting, error) {
	return nil, domainerror.ErrEventSettingNotFound
}
func (r *fakeEventSettingRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.EventSetting, error) {
	if s, ok := r.settings[userID]; ok {
		return s, nil
	}
	return nil, domainerror.ErrEventSettingNotFound
}
func (r *fakeEventSettingRepo) Save(ctx context.Context, s *entity.EventSetting) error { return nil }
func (r *fakeEventSettingRepo) CountActive(ctx context.Context) (int64, error)         { return 0, nil }

func TestGenerateInvitationsUseCase(t *testing.T) {
	userID := uuid.New()
	groupID := uuid.New()
	otherUserID := uuid.New()

	setting := entity.NewEventSetting(userID, "My Event", "my-event")
	template := entity.NewGlobalTemplate("Default", "Hi [nama-tamu], visit [link-undangan]", "Hi [nama-tamu]", true)
	foreignTemplate := entity.NewUserTemplate(otherUserID, "Private", "wa", "copy", false)

	guestInGroup := entity.NewGuest(userID, "Jane Doe", strPtr("+62 812-3456-7890"), nil, &groupID, nil)
	guestElsewhere := entity.NewGuest(userID, "Budi", nil, nil, nil, nil)

	uc := NewGenerateInvitationsUseCase(
		&fakeGuestRepo{guests: []*entity.Guest{guestInGroup, guestElsewhere}},
		&fakeTemplateRepo{templates: map[uuid.UUID]*entity.MessageTemplate{
			template.ID:        template,
			foreignTemplate.ID: foreignTemplate,
		}},
		&fakeEventSettingRepo{settings: map[uuid.UUID]*entity.EventSetting{userID: setting}},
		testSiteRoot,
	)

	t.Run("generates one invitation per guest in group", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GenerateInvitationsInput{
			UserID:     userID,
			GroupID:    groupID,
			TemplateID: template.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Invitations) != 1 {
			t.Fatalf("expected 1 invitation, got %d", len(out.Invitations))
		}
		if out.Invitations[0].Guest.ID != guestInGroup.ID {
			t.Error("wrong guest selected")
		}
	})

	t.Run("missing event setting fails with not configured", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GenerateInvitationsInput{
			UserID:     otherUserID,
			GroupID:    groupID,
			TemplateID: template.ID,
		})
		if !errors.Is(err, domainerror.ErrEventNotConfigured) {
			t.Errorf("expected ErrEventNotConfigured, got %v", err)
		}
	})

	t.Run("foreign user template is permission denied", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GenerateInvitationsInput{
			UserID:     userID,
			GroupID:    groupID,
			TemplateID: foreignTemplate.ID,
		})
		if !errors.Is(err, domainerror.ErrNotTemplateOwner) {
			t.Errorf("expected ErrNotTemplateOwner, got %v", err)
		}
	})

	t.Run("unknown template is not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GenerateInvitationsInput{
			UserID:     userID,
			GroupID:    groupID,
			TemplateID: uuid.New(),
		})
		if !errors.Is(err, domainerror.ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got %v", err)
		}
	})
}
