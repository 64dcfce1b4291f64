package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/domain/entity"
	"github.com/inviteable/backend/internal/integration/persistence/model"
)

// Fixed identifiers for the demo dataset so repeated boots reuse the same rows.
var (
	seedAdminID          = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	seedUserID           = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	seedUser2ID          = uuid.MustParse("00000000-0000-0000-0000-000000000003")
	seedEventID          = uuid.MustParse("e0000000-0000-0000-0000-000000000001")
	seedGlobalTemplateID = uuid.MustParse("a1000000-0000-0000-0000-000000000001")
	seedUserTemplateID   = uuid.MustParse("a2000000-0000-0000-0000-000000000001")
	seedGroupVIPID       = uuid.MustParse("b1000000-0000-0000-0000-000000000001")
	seedGroupFamilyID    = uuid.MustParse("b1000000-0000-0000-0000-000000000002")
)

const seedGlobalTemplateWA = "*\U0001F48C Wedding Invitation*\n\nTo: *[nama-tamu]*\n\nWith our deepest respect and joy, we would be truly honored to invite you to be a part of our wedding day celebration:\n\nFor complete details about the event, please visit our invitation link:\n\n[link-undangan]\n\n_For optimal viewing, please open the link in Safari/Chrome._\n\nYour presence and blessings would mean the world to us.\n\nExcited to see you on our special day!\n\nWith love,\n*Fathia & Saverro*"

const seedGlobalTemplateCopy = "\U0001F48C Wedding Invitation\n\nTo: [nama-tamu]\n\nWith our deepest respect and joy, we would be truly honored to invite you to be a part of our wedding day celebration:\n\nFor complete details about the event, please visit our invitation link:\n\n[link-undangan]\n\nFor optimal viewing, please open the link in Safari/Chrome.\n\nYour presence and blessings would mean the world to us.\n\nExcited to see you on our special day!\n\nWith love,\nFathia & Saverro"

const seedCasualTemplate = "Hey [nama-tamu]! \U0001F44B\n\nWe're getting married! Come celebrate with us.\n\nAll the details are here: [link-undangan]\n\nCan't wait to see you!\n\nFathia & Saverro"

// Seed populates the database with the demo dataset when it is empty. The
// check-then-insert makes repeated boots idempotent.
func Seed(ctx context.Context, db *gorm.DB, passwordService adapter.PasswordService) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.ProfileModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	slog.Info("seeding demo dataset")

	hash, err := passwordService.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	profiles := []*entity.Profile{
		{ID: seedAdminID, Name: "Admin User", Email: "admin@example.com", Role: entity.UserRoleAdmin, PasswordHash: hash},
		{ID: seedUserID, Name: "Fathia & Saverro", Email: "user@example.com", Role: entity.UserRoleUser, PasswordHash: hash},
		{ID: seedUser2ID, Name: "John Doe", Email: "john.doe@example.com", Role: entity.UserRoleUser, PasswordHash: hash},
	}

	rsvpURL := "https://example.com/rsvp"
	rsvpPassword := "rsvp"
	setting := &entity.EventSetting{
		ID:             seedEventID,
		UserID:         seedUserID,
		EventName:      "The Wedding of Fathia & Saverro",
		InvitationSlug: "fathia-saverro",
		RSVPURL:        &rsvpURL,
		RSVPPassword:   &rsvpPassword,
		IsActive:       true,
	}

	templates := []*entity.MessageTemplate{
		{
			ID:          seedGlobalTemplateID,
			Scope:       entity.TemplateScopeGlobal,
			Name:        "Default Wedding Invitation",
			ContentWA:   seedGlobalTemplateWA,
			ContentCopy: seedGlobalTemplateCopy,
			IsDefault:   true,
		},
		{
			ID:          seedUserTemplateID,
			OwnerUserID: &seedUserID,
			Scope:       entity.TemplateScopeUser,
			Name:        "Casual Invite (Friends)",
			ContentWA:   seedCasualTemplate,
			ContentCopy: seedCasualTemplate,
		},
	}

	vipDesc := "Very Important People"
	familyDesc := "Family members"
	groups := []*entity.GuestGroup{
		{ID: seedGroupVIPID, UserID: seedUserID, Name: "VIP", Description: &vipDesc, SortOrder: 1},
		{ID: seedGroupFamilyID, UserID: seedUserID, Name: "Keluarga", Description: &familyDesc, SortOrder: 2},
	}

	lindaPhone := "6281234567890"
	lindaNotes := "Close friend"
	budiPhone := "6281234567891"
	sentAt := time.Now().UTC()
	guests := []*entity.Guest{
		{ID: uuid.New(), UserID: seedUserID, GroupID: &seedGroupVIPID, EventID: &seedEventID, Name: "Linda & Keluarga", Phone: &lindaPhone, Notes: &lindaNotes, IsSent: true, LastSentAt: &sentAt},
		{ID: uuid.New(), UserID: seedUserID, GroupID: &seedGroupFamilyID, EventID: &seedEventID, Name: "Budi Santoso", Phone: &budiPhone},
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range profiles {
			if err := tx.Create(model.ProfileFromEntity(p)).Error; err != nil {
				return fmt.Errorf("failed to seed profile %s: %w", p.Email, err)
			}
		}
		if err := tx.Create(model.EventSettingFromEntity(setting)).Error; err != nil {
			return fmt.Errorf("failed to seed event setting: %w", err)
		}
		for _, t := range templates {
			if err := tx.Create(model.TemplateFromEntity(t)).Error; err != nil {
				return fmt.Errorf("failed to seed template %s: %w", t.Name, err)
			}
		}
		for _, g := range groups {
			if err := tx.Create(model.GroupFromEntity(g)).Error; err != nil {
				return fmt.Errorf("failed to seed group %s: %w", g.Name, err)
			}
		}
		for _, g := range guests {
			if err := tx.Create(model.GuestFromEntity(g)).Error; err != nil {
				return fmt.Errorf("failed to seed guest %s: %w", g.Name, err)
			}
		}
		return nil
	})
}
