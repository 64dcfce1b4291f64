// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/inviteable/backend/config"
	"github.com/inviteable/backend/internal/infra/dependency"
	"github.com/inviteable/backend/internal/integration/persistence/model"
	"github.com/inviteable/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	accessToken  string
	refreshToken string

	currentUserID  uuid.UUID
	otherUserID    uuid.UUID
	groupID        uuid.UUID
	guestID        uuid.UUID
	templateID     uuid.UUID
	eventSettingID uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("inviteable", map[string]any{
			"profiles":          &model.ProfileModel{},
			"refresh_tokens":    &model.RefreshTokenModel{},
			"event_settings":    &model.EventSettingModel{},
			"message_templates": &model.MessageTemplateModel{},
			"guest_groups":      &model.GuestGroupModel{},
			"guests":            &model.GuestModel{},
			"send_logs":         &model.SendLogModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return c, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^an admin exists with email "([^"]*)" and password "([^"]*)"$`, test.anAdminExistsWithEmailAndPassword)
	ctx.Given(`^another user exists with email "([^"]*)"$`, test.anotherUserExistsWithEmail)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)

	// Data setup steps
	ctx.Given(`^the user has an event setting named "([^"]*)" with slug "([^"]*)"$`, test.theUserHasAnEventSetting)
	ctx.Given(`^the user has a guest group named "([^"]*)"$`, test.theUserHasAGuestGroup)
	ctx.Given(`^the guest group is deleted$`, test.theGuestGroupIsDeleted)
	ctx.Given(`^the user has a guest named "([^"]*)"$`, test.theUserHasAGuest)
	ctx.Given(`^the user has a guest named "([^"]*)" in that group$`, test.theUserHasAGuestInThatGroup)
	ctx.Given(`^a global template named "([^"]*)" exists$`, test.aGlobalTemplateExists)
	ctx.Given(`^the user has a template named "([^"]*)"$`, test.theUserHasATemplate)
	ctx.Given(`^the other user has a template named "([^"]*)"$`, test.theOtherUserHasATemplate)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) rows in the "([^"]*)" table$`, test.theDbShouldContainRowsInTheTable)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.otherUserID = uuid.Nil
	t.groupID = uuid.Nil
	t.guestID = uuid.Nil
	t.templateID = uuid.Nil
	t.eventSettingID = uuid.Nil
	t.response = nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			cfg.Server.Environment = "test"
			cfg.JWT.Secret = testJWTSecret
			cfg.Email.Enabled = false
			cfg.AI.GeminiAPIKey = ""

			injector := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis())
			engine := injector.Router.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createProfile(email, password, "user")
}

func (t *testContext) anAdminExistsWithEmailAndPassword(email, password string) error {
	return t.createProfile(email, password, "admin")
}

func (t *testContext) anotherUserExistsWithEmail(email string) error {
	keep := t.currentUserID
	if err := t.createProfile(email, "DefaultPass123!", "user"); err != nil {
		return err
	}
	t.otherUserID = t.currentUserID
	if keep != uuid.Nil {
		t.currentUserID = keep
	}
	return nil
}

func (t *testContext) createProfile(email, password, role string) error {
	userID := uuid.New()
	t.currentUserID = userID

	profile := &model.ProfileModel{
		ID:           userID,
		Name:         "Test User",
		Email:        email,
		Role:         role,
		PasswordHash: hashPassword(password),
		CreatedAt:    time.Now().UTC(),
	}

	return t.db.DbConn.Create(profile).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) iAmLoggedInAs(email string) error {
	var profile model.ProfileModel
	if err := t.db.DbConn.Where("email = ?", email).First(&profile).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	t.currentUserID = profile.ID

	token, err := t.signToken(&profile, "access", 15*time.Minute)
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	var profile model.ProfileModel
	if err := t.db.DbConn.Where("id = ?", t.currentUserID).First(&profile).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	accessToken, err := t.signToken(&profile, "access", 15*time.Minute)
	if err != nil {
		return err
	}
	t.accessToken = accessToken

	refreshToken, err := t.signToken(&profile, "refresh", 7*24*time.Hour)
	if err != nil {
		return err
	}
	t.refreshToken = refreshToken

	now := time.Now().UTC()
	record := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       refreshToken,
		UserID:      profile.ID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}
	return t.db.DbConn.Create(record).Error
}

func (t *testContext) signToken(profile *model.ProfileModel, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":    profile.ID.String(),
		"email":      profile.Email,
		"role":       profile.Role,
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "inviteable",
		"sub":        profile.ID.String(),
		"jti":        uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (t *testContext) theUserHasAnEventSetting(name, slug string) error {
	t.eventSettingID = uuid.New()
	now := time.Now().UTC()
	setting := &model.EventSettingModel{
		ID:             t.eventSettingID,
		UserID:         t.currentUserID,
		EventName:      name,
		InvitationSlug: slug,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return t.db.DbConn.Create(setting).Error
}

func (t *testContext) theUserHasAGuestGroup(name string) error {
	t.groupID = uuid.New()
	group := &model.GuestGroupModel{
		ID:        t.groupID,
		UserID:    t.currentUserID,
		Name:      name,
		SortOrder: 1,
		CreatedAt: time.Now().UTC(),
	}
	return t.db.DbConn.Create(group).Error
}

func (t *testContext) theGuestGroupIsDeleted() error {
	return t.db.DbConn.Where("id = ?", t.groupID).Delete(&model.GuestGroupModel{}).Error
}

func (t *testContext) theUserHasAGuest(name string) error {
	return t.createGuest(name, nil)
}

func (t *testContext) theUserHasAGuestInThatGroup(name string) error {
	groupID := t.groupID
	return t.createGuest(name, &groupID)
}

func (t *testContext) createGuest(name string, groupID *uuid.UUID) error {
	t.guestID = uuid.New()
	phone := "6281234567890"
	guest := &model.GuestModel{
		ID:        t.guestID,
		UserID:    t.currentUserID,
		GroupID:   groupID,
		Name:      name,
		Phone:     &phone,
		CreatedAt: time.Now().UTC(),
	}
	return t.db.DbConn.Create(guest).Error
}

func (t *testContext) aGlobalTemplateExists(name string) error {
	t.templateID = uuid.New()
	tpl := &model.MessageTemplateModel{
		ID:          t.templateID,
		Scope:       "global",
		Name:        name,
		ContentWA:   "Halo [nama-tamu], undangan: [link-undangan]",
		ContentCopy: "Kepada [nama-tamu], silakan buka [link-undangan]",
		IsDefault:   true,
		CreatedAt:   time.Now().UTC(),
	}
	return t.db.DbConn.Create(tpl).Error
}

func (t *testContext) theUserHasATemplate(name string) error {
	return t.createUserTemplate(name, t.currentUserID)
}

func (t *testContext) theOtherUserHasATemplate(name string) error {
	return t.createUserTemplate(name, t.otherUserID)
}

func (t *testContext) createUserTemplate(name string, ownerID uuid.UUID) error {
	t.templateID = uuid.New()
	tpl := &model.MessageTemplateModel{
		ID:          t.templateID,
		OwnerUserID: &ownerID,
		Scope:       "user",
		Name:        name,
		ContentWA:   "Hai [nama-tamu]! [link-undangan]",
		ContentCopy: "Hai [nama-tamu], ini undanganmu: [link-undangan]",
		CreatedAt:   time.Now().UTC(),
	}
	return t.db.DbConn.Create(tpl).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{other_user_id}}", t.otherUserID.String())
	content = strings.ReplaceAll(content, "{{group_id}}", t.groupID.String())
	content = strings.ReplaceAll(content, "{{guest_id}}", t.guestID.String())
	content = strings.ReplaceAll(content, "{{template_id}}", t.templateID.String())
	content = strings.ReplaceAll(content, "{{event_setting_id}}", t.eventSettingID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	// Encode without HTML escaping so literal "&" in rendered text matches.
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(t.response.body); err != nil {
		return err
	}
	if !strings.Contains(buf.String(), expected) {
		return fmt.Errorf("response does not contain %q: %s", expected, buf.String())
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.lookupField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.lookupField(field)
	return err
}

// lookupField walks a dot separated path through the response body. Numeric
// segments index into arrays, e.g. "data.0.name".
func (t *testContext) lookupField(path string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	var current any = t.response.body
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %v", path, t.response.body)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in path %q", part, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q at %q: %v", path, part, current)
		}
	}

	return current, nil
}

func (t *testContext) theDbShouldContainRowsInTheTable(expected int, table string) error {
	var count int64
	if err := t.db.DbConn.Table(table).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %s, got %d", expected, table, count)
	}
	return nil
}
