package template

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/inviteable/backend/internal/domain/entity"
	domainerror "github.com/inviteable/backend/internal/domain/error"
)

type fakeTemplateRepo struct {
	templates map[uuid.UUID]*entity.MessageTemplate
}

func newFakeTemplateRepo(templates ...*entity.MessageTemplate) *fakeTemplateRepo {
	m := make(map[uuid.UUID]*entity.MessageTemplate, len(templates))
	for _, t := range templates {
		m[t.ID] = t
	}
	return &fakeTemplateRepo{templates: m}
}

func (r *fakeTemplateRepo) Create(ctx context.Context, t *entity.MessageTemplate) error {
	r.templates[t.ID] = t
	return nil
}

func (r *fakeTemplateRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MessageTemplate, error) {
	if t, ok := r.templates[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, domainerror.ErrTemplateNotFound
}

func (r *fakeTemplateRepo) FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*entity.MessageTemplate, error) {
	var visible []*entity.MessageTemplate
	for _, t := range r.templates {
		if t.VisibleTo(userID) {
			visible = append(visible, t)
		}
	}
	return visible, nil
}

func (r *fakeTemplateRepo) FindGlobal(ctx context.Context) ([]*entity.MessageTemplate, error) {
	var global []*entity.MessageTemplate
	for _, t := range r.templates {
		if t.Scope == entity.TemplateScopeGlobal {
			global = append(global, t)
		}
	}
	return global, nil
}

func (r *fakeTemplateRepo) Save(ctx context.Context, t *entity.MessageTemplate) error {
	r.templates[t.ID] = t
	return nil
}

func (r *fakeTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.templates, id)
	return nil
}

func TestUpdateTemplateOwnership(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()

	userTemplate := entity.NewUserTemplate(ownerID, "Casual", "Hey [nama-tamu]", "Hey [nama-tamu]", false)
	globalTemplate := entity.NewGlobalTemplate("Default", "Dear [nama-tamu]", "Dear [nama-tamu]", true)

	uc := NewUpdateTemplateUseCase(newFakeTemplateRepo(userTemplate, globalTemplate))

	t.Run("owner can update own template", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), UpdateTemplateInput{
			TemplateID: userTemplate.ID,
			UserID:     ownerID,
			Name:       "Casual v2",
			ContentWA:  "wa",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Template.Name != "Casual v2" {
			t.Errorf("expected updated name, got %q", out.Template.Name)
		}
	})

	t.Run("foreign user template is permission denied, not not-found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpdateTemplateInput{
			TemplateID: userTemplate.ID,
			UserID:     strangerID,
			Name:       "hijack",
		})
		if !errors.Is(err, domainerror.ErrNotTemplateOwner) {
			t.Errorf("expected ErrNotTemplateOwner, got %v", err)
		}
		if errors.Is(err, domainerror.ErrTemplateNotFound) {
			t.Error("foreign template must not be reported as not found")
		}
	})

	t.Run("user scope update rejects global template", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpdateTemplateInput{
			TemplateID: globalTemplate.ID,
			UserID:     ownerID,
			Name:       "nope",
		})
		if !errors.Is(err, domainerror.ErrNotTemplateOwner) {
			t.Errorf("expected ErrNotTemplateOwner, got %v", err)
		}
	})

	t.Run("admin scope update rejects user template", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpdateTemplateInput{
			TemplateID:  userTemplate.ID,
			UserID:      strangerID,
			AdminGlobal: true,
			Name:        "nope",
		})
		if !errors.Is(err, domainerror.ErrTemplateNotGlobal) {
			t.Errorf("expected ErrTemplateNotGlobal, got %v", err)
		}
	})

	t.Run("admin scope updates global template", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), UpdateTemplateInput{
			TemplateID:  globalTemplate.ID,
			UserID:      strangerID,
			AdminGlobal: true,
			Name:        "Default v2",
			ContentWA:   "Dear [nama-tamu]",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Template.Scope != entity.TemplateScopeGlobal {
			t.Error("scope must stay global")
		}
	})
}
