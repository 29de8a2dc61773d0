package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GradTrack/GT-Backend/internal/applications"
	"github.com/GradTrack/GT-Backend/internal/auth"
	"github.com/GradTrack/GT-Backend/internal/config"
	"github.com/GradTrack/GT-Backend/internal/contacts"
	"github.com/GradTrack/GT-Backend/internal/db"
)

// TestConfig returns a config pointed at a fresh embedded store under the
// test's temp dir.
func TestConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:           3000,
		SQLitePath:     filepath.Join(t.TempDir(), "tracker_test.db"),
		PasswordScheme: config.SchemeSHA256,
	}
}

// SetupTestDB opens a fresh embedded store with the full schema.
func SetupTestDB(t *testing.T, cfg config.Config) *gorm.DB {
	t.Helper()

	store, err := db.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(store) })

	if err := auth.Init(store); err != nil {
		t.Fatalf("Failed to migrate users: %v", err)
	}
	if err := contacts.Init(store); err != nil {
		t.Fatalf("Failed to migrate phd_contacts: %v", err)
	}
	if err := applications.Init(store); err != nil {
		t.Fatalf("Failed to migrate masters_apps: %v", err)
	}

	return store
}

// CreateTestUser inserts a user with the legacy digest format and returns
// its id.
func CreateTestUser(t *testing.T, store *gorm.DB, name, email, password string) int {
	t.Helper()

	user := auth.User{
		Name:     &name,
		Email:    email,
		Password: auth.Digest(password),
	}
	if err := store.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user.ID
}

// CreateTestContact inserts a minimal valid contact for userID, with
// createdAt forced so ordering tests can control the timeline.
func CreateTestContact(t *testing.T, store *gorm.DB, userID int, professor string, createdAt time.Time) int {
	t.Helper()

	university := "Test University"
	country := "Testland"
	email := "prof@example.edu"
	focus := "Testing"
	followUp := "2026-01-15"
	status := "no-reply"

	contact := contacts.Contact{
		UserID:        &userID,
		ProfessorName: &professor,
		University:    &university,
		Country:       &country,
		Email:         &email,
		ResearchFocus: &focus,
		FollowUpDate:  &followUp,
		Status:        &status,
		CreatedAt:     createdAt,
	}
	if err := store.Omit(clause.Associations).Create(&contact).Error; err != nil {
		t.Fatalf("Failed to create test contact: %v", err)
	}
	return contact.ID
}

// CreateTestApplication inserts a minimal valid application for userID with
// the given deadline.
func CreateTestApplication(t *testing.T, store *gorm.DB, userID int, university, endDate string) int {
	t.Helper()

	country := "Testland"
	major := "Test Major"
	priority := "medium"
	appStatus := "pending"
	accountCreated := 0

	app := applications.Application{
		UserID:         &userID,
		Country:        &country,
		University:     &university,
		Major:          &major,
		EndDate:        &endDate,
		AccountCreated: &accountCreated,
		Priority:       &priority,
		AppStatus:      &appStatus,
	}
	if err := store.Omit(clause.Associations).Create(&app).Error; err != nil {
		t.Fatalf("Failed to create test application: %v", err)
	}
	return app.ID
}

// MakeRequest builds an HTTP test request with an optional JSON body.
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// DecodeJSON decodes the response body into v.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
