package seeds_test

import (
	"testing"

	"github.com/GradTrack/GT-Backend/internal/applications"
	"github.com/GradTrack/GT-Backend/internal/auth"
	"github.com/GradTrack/GT-Backend/internal/contacts"
	"github.com/GradTrack/GT-Backend/internal/seeds"
	"github.com/GradTrack/GT-Backend/internal/testutil"
)

func TestLoad_DemoFixture(t *testing.T) {
	fx, err := seeds.Load("../../seeds/demo.yaml")
	if err != nil {
		t.Fatalf("demo fixture should parse: %v", err)
	}
	if fx.User.Email != "demo@gradtrack.local" {
		t.Errorf("unexpected fixture user: %q", fx.User.Email)
	}
	if len(fx.Contacts) == 0 || len(fx.Applications) == 0 {
		t.Error("demo fixture should carry contacts and applications")
	}
}

func TestLoad_RejectsMissingEmail(t *testing.T) {
	if _, err := seeds.Load("testdata/no_email.yaml"); err == nil {
		t.Error("expected error for fixture without a user email")
	}
}

func TestRun_InsertsAndIsIdempotent(t *testing.T) {
	cfg := testutil.TestConfig(t)
	store := testutil.SetupTestDB(t, cfg)

	fx, err := seeds.Load("../../seeds/demo.yaml")
	if err != nil {
		t.Fatal(err)
	}

	if err := seeds.Run(store, fx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := seeds.Run(store, fx); err != nil {
		t.Fatalf("second run: %v", err)
	}

	var users, contactRows, appRows int64
	store.Model(&auth.User{}).Count(&users)
	store.Model(&contacts.Contact{}).Count(&contactRows)
	store.Model(&applications.Application{}).Count(&appRows)

	if users != 1 {
		t.Errorf("expected 1 seed user after re-run, got %d", users)
	}
	if contactRows != int64(len(fx.Contacts)) {
		t.Errorf("expected %d contacts, got %d", len(fx.Contacts), contactRows)
	}
	if appRows != int64(len(fx.Applications)) {
		t.Errorf("expected %d applications, got %d", len(fx.Applications), appRows)
	}

	// Seed user can log in with the fixture password.
	var user auth.User
	if err := store.First(&user, "email = ? AND password = ?", fx.User.Email, auth.Digest(fx.User.Password)).Error; err != nil {
		t.Errorf("seed user digest mismatch: %v", err)
	}
}
