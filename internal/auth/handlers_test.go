package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GradTrack/GT-Backend/internal/auth"
	"github.com/GradTrack/GT-Backend/internal/config"
	"github.com/GradTrack/GT-Backend/internal/middleware"
	"github.com/GradTrack/GT-Backend/internal/testutil"
	"github.com/GradTrack/GT-Backend/routes"
)

func TestRegisterThenLogin_ReturnsSameUser(t *testing.T) {
	cfg := testutil.TestConfig(t)
	store := testutil.SetupTestDB(t, cfg)
	router := routes.New(store, cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "A",
		"email":    "a@x.com",
		"password": "pw",
	}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var registered auth.UserResponse
	testutil.DecodeJSON(t, w, &registered)
	if registered.User.ID != 1 {
		t.Errorf("expected first user to get id 1, got %d", registered.User.ID)
	}
	if registered.User.Name == nil || *registered.User.Name != "A" {
		t.Errorf("expected name A, got %v", registered.User.Name)
	}
	if registered.User.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %q", registered.User.Email)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "pw",
	}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var loggedIn auth.UserResponse
	testutil.DecodeJSON(t, w, &loggedIn)
	if loggedIn.User.ID != registered.User.ID || loggedIn.User.Email != registered.User.Email {
		t.Errorf("expected login to return the registered user, got %+v vs %+v", loggedIn.User, registered.User)
	}
	if loggedIn.User.Name == nil || *loggedIn.User.Name != "A" {
		t.Errorf("expected name A from login, got %v", loggedIn.User.Name)
	}
}

func TestRegister_NeverEchoesPassword(t *testing.T) {
	cfg := testutil.TestConfig(t)
	store := testutil.SetupTestDB(t, cfg)
	router := routes.New(store, cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "B",
		"email":    "b@x.com",
		"password": "hunter2",
	}))
	testutil.AssertStatus(t, w, http.StatusOK)

	if strings.Contains(w.Body.String(), "hunter2") || strings.Contains(w.Body.String(), auth.Digest("hunter2")) {
		t.Errorf("response leaked the password: %s", w.Body.String())
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	cfg := testutil.TestConfig(t)
	store := testutil.SetupTestDB(t, cfg)
	router := routes.New(store, cfg)

	register := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/register", map[string]string{
			"name":     "First",
			"email":    "dup@x.com",
			"password": "pw1",
		}))
		return w
	}

	testutil.AssertStatus(t, register(), http.StatusOK)

	w := register()
	testutil.AssertStatus(t, w, http.StatusConflict)

	var body middleware.ErrorBody
	testutil.DecodeJSON(t, w, &body)
	if body.Error != "Email already exists" {
		t.Errorf("expected 'Email already exists', got %q", body.Error)
	}

	// First user's row is unaffected.
	var user auth.User
	if err := store.First(&user, "email = ?", "dup@x.com").Error; err != nil {
		t.Fatalf("first user should still exist: %v", err)
	}
	if user.Password != auth.Digest("pw1") {
		t.Error("first user's digest changed after duplicate register")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	cfg := testutil.TestConfig(t)
	store := testutil.SetupTestDB(t, cfg)
	router := routes.New(store, cfg)

	testutil.CreateTestUser(t, store, "C", "c@x.com", "secret1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "c@x.com",
		"password": "secret2",
	}))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	var body middleware.ErrorBody
	testutil.DecodeJSON(t, w, &body)
	if body.Error != "Invalid email or password" {
		t.Errorf("expected 'Invalid email or password', got %q", body.Error)
	}
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	cfg := testutil.TestConfig(t)
	store := testutil.SetupTestDB(t, cfg)
	router := routes.New(store, cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nobody@x.com",
		"password": "pw",
	}))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	var body middleware.ErrorBody
	testutil.DecodeJSON(t, w, &body)
	if body.Error != "Invalid email or password" {
		t.Errorf("unknown email must be indistinguishable from wrong password, got %q", body.Error)
	}
}

func TestBcryptScheme_RoundTrip(t *testing.T) {
	cfg := testutil.TestConfig(t)
	cfg.PasswordScheme = config.SchemeBcrypt
	store := testutil.SetupTestDB(t, cfg)
	router := routes.New(store, cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "D",
		"email":    "d@x.com",
		"password": "pw",
	}))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Stored value is a bcrypt hash, not the legacy digest.
	var user auth.User
	if err := store.First(&user, "email = ?", "d@x.com").Error; err != nil {
		t.Fatal(err)
	}
	if user.Password == auth.Digest("pw") {
		t.Error("bcrypt scheme stored the legacy sha256 digest")
	}
	if !strings.HasPrefix(user.Password, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", user.Password)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "d@x.com",
		"password": "pw",
	}))
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestDigest_IsHexSHA256(t *testing.T) {
	digest := auth.Digest("pw")
	if len(digest) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(digest))
	}
	// Known vector.
	if auth.Digest("") != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Error("sha256 digest of empty string mismatch")
	}
}
