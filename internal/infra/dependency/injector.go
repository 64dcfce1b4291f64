// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/inviteable/backend/config"
	"github.com/inviteable/backend/internal/application/adapter"
	"github.com/inviteable/backend/internal/application/usecase/auth"
	"github.com/inviteable/backend/internal/application/usecase/eventsetting"
	"github.com/inviteable/backend/internal/application/usecase/group"
	"github.com/inviteable/backend/internal/application/usecase/guest"
	"github.com/inviteable/backend/internal/application/usecase/invitation"
	"github.com/inviteable/backend/internal/application/usecase/profile"
	"github.com/inviteable/backend/internal/application/usecase/sendlog"
	"github.com/inviteable/backend/internal/application/usecase/stats"
	"github.com/inviteable/backend/internal/application/usecase/template"
	"github.com/inviteable/backend/internal/infra/server/router"
	"github.com/inviteable/backend/internal/integration/adapters"
	"github.com/inviteable/backend/internal/integration/cache"
	"github.com/inviteable/backend/internal/integration/email"
	"github.com/inviteable/backend/internal/integration/entrypoint/controller"
	"github.com/inviteable/backend/internal/integration/entrypoint/middleware"
	"github.com/inviteable/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	profileRepo := persistence.NewProfileRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	eventSettingRepo := persistence.NewEventSettingRepository(db)
	templateRepo := persistence.NewTemplateRepository(db)
	groupRepo := persistence.NewGroupRepository(db)
	guestRepo := persistence.NewGuestRepository(db)
	sendLogRepo := persistence.NewSendLogRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)
	geminiService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)
	statsCache := cache.NewStatsCache(redisClient, cfg.Redis.StatsTTL)

	// Welcome emails are best effort. Without a provider key the use case
	// simply skips the send.
	var emailService adapter.EmailService
	if cfg.Email.Enabled && cfg.Email.ResendAPIKey != "" {
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		emailService = email.NewService(sender)
	}

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(profileRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(profileRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create profile use cases
	listUsersUseCase := profile.NewListUsersUseCase(profileRepo)
	createUserUseCase := profile.NewCreateUserUseCase(profileRepo, passwordService, emailService, cfg.Invitation.SiteRootURL+"/login")
	updateUserUseCase := profile.NewUpdateUserUseCase(profileRepo, passwordService)

	// Create group use cases
	listGroupsUseCase := group.NewListGroupsUseCase(groupRepo)
	createGroupUseCase := group.NewCreateGroupUseCase(groupRepo)
	updateGroupUseCase := group.NewUpdateGroupUseCase(groupRepo)
	deleteGroupUseCase := group.NewDeleteGroupUseCase(groupRepo)

	// Create guest use cases
	listGuestsUseCase := guest.NewListGuestsUseCase(guestRepo, groupRepo)
	createGuestUseCase := guest.NewCreateGuestUseCase(guestRepo)
	updateGuestUseCase := guest.NewUpdateGuestUseCase(guestRepo)
	deleteGuestUseCase := guest.NewDeleteGuestUseCase(guestRepo)
	setSentStatusUseCase := guest.NewSetSentStatusUseCase(guestRepo)

	// Create template use cases
	listTemplatesUseCase := template.NewListTemplatesUseCase(templateRepo)
	listGlobalTemplatesUseCase := template.NewListGlobalTemplatesUseCase(templateRepo)
	createTemplateUseCase := template.NewCreateTemplateUseCase(templateRepo)
	updateTemplateUseCase := template.NewUpdateTemplateUseCase(templateRepo)
	deleteTemplateUseCase := template.NewDeleteTemplateUseCase(templateRepo)
	suggestTemplateUseCase := template.NewSuggestTemplateUseCase(geminiService)

	// Create event setting use cases
	getEventSettingUseCase := eventsetting.NewGetEventSettingUseCase(eventSettingRepo)
	createEventSettingUseCase := eventsetting.NewCreateEventSettingUseCase(eventSettingRepo)
	updateEventSettingUseCase := eventsetting.NewUpdateEventSettingUseCase(eventSettingRepo)

	// Create invitation and send log use cases
	generateInvitationsUseCase := invitation.NewGenerateInvitationsUseCase(
		guestRepo,
		templateRepo,
		eventSettingRepo,
		cfg.Invitation.SiteRootURL,
	)
	logSendUseCase := sendlog.NewLogSendUseCase(sendLogRepo)

	// Create stats use cases
	guestStatsUseCase := stats.NewGetGuestStatsUseCase(guestRepo, statsCache)
	eventStatsUseCase := stats.NewGetEventStatsUseCase(eventSettingRepo, statsCache)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	userController := controller.NewUserController(
		listUsersUseCase,
		createUserUseCase,
		updateUserUseCase,
	)

	groupController := controller.NewGroupController(
		listGroupsUseCase,
		createGroupUseCase,
		updateGroupUseCase,
		deleteGroupUseCase,
	)

	guestController := controller.NewGuestController(
		listGuestsUseCase,
		createGuestUseCase,
		updateGuestUseCase,
		deleteGuestUseCase,
		setSentStatusUseCase,
	)

	templateController := controller.NewTemplateController(
		listTemplatesUseCase,
		listGlobalTemplatesUseCase,
		createTemplateUseCase,
		updateTemplateUseCase,
		deleteTemplateUseCase,
		suggestTemplateUseCase,
	)

	eventSettingController := controller.NewEventSettingController(
		getEventSettingUseCase,
		createEventSettingUseCase,
		updateEventSettingUseCase,
	)

	invitationController := controller.NewInvitationController(generateInvitationsUseCase)
	sendLogController := controller.NewSendLogController(logSendUseCase)
	statsController := controller.NewStatsController(guestStatsUseCase, eventStatsUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		groupController,
		guestController,
		templateController,
		eventSettingController,
		invitationController,
		sendLogController,
		statsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
