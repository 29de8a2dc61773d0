package applications

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GradTrack/GT-Backend/internal/auth"
)

// Application is one Masters program application with its admin and financial
// details. Fee columns carry two-decimal currency amounts; account_created is
// an integer flag (0/1) as in the legacy schema. The portal username/password
// pair is the user's own credential for the university portal and is stored
// and returned as entered.
type Application struct {
	ID               int                 `gorm:"primaryKey" json:"id"`
	UserID           *int                `gorm:"not null;index" json:"user_id"`
	Country          *string             `gorm:"not null" json:"country"`
	University       *string             `gorm:"not null" json:"university"`
	Major            *string             `gorm:"not null" json:"major"`
	AdmissionFee     decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"admission_fee"`
	TuitionFee       decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"tuition_fee"`
	GreNeeded        *string             `json:"gre_needed"`
	LanguageTest     *string             `json:"language_test"`
	ApplicationRoute *string             `json:"application_route"`
	StartDate        *string             `json:"start_date"`
	EndDate          *string             `gorm:"not null" json:"end_date"`
	CourseLink       *string             `json:"course_link"`
	PortalLink       *string             `json:"portal_link"`
	AccountCreated   *int                `gorm:"default:0" json:"account_created"`
	Priority         *string             `gorm:"default:'medium'" json:"priority"`
	AppStatus        *string             `gorm:"column:application_status;default:'pending'" json:"application_status"`
	MissingDocuments *string             `json:"missing_documents"`
	Username         *string             `json:"username"`
	Password         *string             `json:"password"`
	Notes            *string             `json:"notes"`
	CreatedAt        time.Time           `json:"created_at"`

	User auth.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Application) TableName() string { return "masters_apps" }

// mutableColumns are the columns a PUT replaces in full. id, user_id and
// created_at are immutable.
var mutableColumns = []string{
	"country", "university", "major", "admission_fee", "tuition_fee",
	"gre_needed", "language_test", "application_route", "start_date",
	"end_date", "course_link", "portal_link", "account_created", "priority",
	"application_status", "missing_documents", "username", "password", "notes",
}

const (
	defaultPriority  = "medium"
	defaultAppStatus = "pending"
)

type CreateResponse struct {
	ID int `json:"id"`
}

type UpdateResponse struct {
	Updated bool `json:"updated"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
