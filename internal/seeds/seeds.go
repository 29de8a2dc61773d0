package seeds

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GradTrack/GT-Backend/internal/applications"
	"github.com/GradTrack/GT-Backend/internal/auth"
	"github.com/GradTrack/GT-Backend/internal/contacts"
)

// Fixture is the YAML shape consumed by cmd/seed: one demo user plus the
// contacts and applications created under it.
type Fixture struct {
	User         UserSeed          `yaml:"user"`
	Contacts     []ContactSeed     `yaml:"contacts"`
	Applications []ApplicationSeed `yaml:"applications"`
}

type UserSeed struct {
	Name     string  `yaml:"name"`
	Email    string  `yaml:"email"`
	Password string  `yaml:"password"`
	Phone    *string `yaml:"phone"`
}

type ContactSeed struct {
	ProfessorName string  `yaml:"professor_name"`
	ProfDegree    *string `yaml:"prof_degree"`
	University    string  `yaml:"university"`
	Country       string  `yaml:"country"`
	Department    *string `yaml:"department"`
	Email         string  `yaml:"email"`
	ResearchFocus string  `yaml:"research_focus"`
	EmailSentDate *string `yaml:"email_sent_date"`
	FollowUpDate  string  `yaml:"follow_up_date"`
	Status        *string `yaml:"status"`
	Notes         *string `yaml:"notes"`
}

type ApplicationSeed struct {
	Country          string   `yaml:"country"`
	University       string   `yaml:"university"`
	Major            string   `yaml:"major"`
	AdmissionFee     *float64 `yaml:"admission_fee"`
	TuitionFee       *float64 `yaml:"tuition_fee"`
	GreNeeded        *string  `yaml:"gre_needed"`
	LanguageTest     *string  `yaml:"language_test"`
	ApplicationRoute *string  `yaml:"application_route"`
	StartDate        *string  `yaml:"start_date"`
	EndDate          string   `yaml:"end_date"`
	Priority         *string  `yaml:"priority"`
	AppStatus        *string  `yaml:"application_status"`
	Notes            *string  `yaml:"notes"`
}

// Load parses a fixture file.
func Load(path string) (Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}

	var fx Fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if fx.User.Email == "" {
		return Fixture{}, fmt.Errorf("fixture user needs an email")
	}
	return fx, nil
}

// Run inserts the fixture into the store. Re-running against the same store
// is a no-op: an existing user with the fixture email is reused and its rows
// are left alone.
func Run(db *gorm.DB, fx Fixture) error {
	var user auth.User
	err := db.First(&user, "email = ?", fx.User.Email).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("look up seed user: %w", err)
	}

	user = auth.User{
		Name:     &fx.User.Name,
		Email:    fx.User.Email,
		Password: auth.Digest(fx.User.Password),
		Phone:    fx.User.Phone,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("create seed user: %w", err)
	}

	for i := range fx.Contacts {
		c := fx.Contacts[i]
		status := "no-reply"
		if c.Status != nil {
			status = *c.Status
		}
		contact := contacts.Contact{
			UserID:        &user.ID,
			ProfessorName: &c.ProfessorName,
			ProfDegree:    c.ProfDegree,
			University:    &c.University,
			Country:       &c.Country,
			Department:    c.Department,
			Email:         &c.Email,
			ResearchFocus: &c.ResearchFocus,
			EmailSentDate: c.EmailSentDate,
			FollowUpDate:  &c.FollowUpDate,
			Status:        &status,
			Notes:         c.Notes,
		}
		if err := db.Omit(clause.Associations).Create(&contact).Error; err != nil {
			return fmt.Errorf("create seed contact %d: %w", i+1, err)
		}
	}

	for i := range fx.Applications {
		a := fx.Applications[i]
		priority := "medium"
		if a.Priority != nil {
			priority = *a.Priority
		}
		appStatus := "pending"
		if a.AppStatus != nil {
			appStatus = *a.AppStatus
		}
		accountCreated := 0
		app := applications.Application{
			UserID:           &user.ID,
			Country:          &a.Country,
			University:       &a.University,
			Major:            &a.Major,
			AdmissionFee:     toDecimal(a.AdmissionFee),
			TuitionFee:       toDecimal(a.TuitionFee),
			GreNeeded:        a.GreNeeded,
			LanguageTest:     a.LanguageTest,
			ApplicationRoute: a.ApplicationRoute,
			StartDate:        a.StartDate,
			EndDate:          &a.EndDate,
			AccountCreated:   &accountCreated,
			Priority:         &priority,
			AppStatus:        &appStatus,
			Notes:            a.Notes,
		}
		if err := db.Omit(clause.Associations).Create(&app).Error; err != nil {
			return fmt.Errorf("create seed application %d: %w", i+1, err)
		}
	}

	return nil
}

func toDecimal(v *float64) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(*v).Round(2), Valid: true}
}
