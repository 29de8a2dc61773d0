package contacts

import (
	"time"

	"github.com/GradTrack/GT-Backend/internal/auth"
)

// Contact is one PhD professor outreach attempt and its follow-up state.
// Required text fields are pointers so an omitted JSON field maps to NULL and
// trips the engine's NOT NULL constraint, matching the legacy schema.
type Contact struct {
	ID                int       `gorm:"primaryKey" json:"id"`
	UserID            *int      `gorm:"not null;index" json:"user_id"`
	ProfessorName     *string   `gorm:"not null" json:"professor_name"`
	ProfDegree        *string   `json:"prof_degree"`
	University        *string   `gorm:"not null" json:"university"`
	Country           *string   `gorm:"not null" json:"country"`
	Department        *string   `json:"department"`
	Email             *string   `gorm:"not null" json:"email"`
	ResearchFocus     *string   `gorm:"not null" json:"research_focus"`
	ProfWebpage       *string   `json:"prof_webpage"`
	ProfGoogleScholar *string   `json:"prof_google_scholar"`
	FacultyPage       *string   `json:"faculty_page"`
	EmailSentDate     *string   `json:"email_sent_date"`
	FollowUpDate      *string   `gorm:"not null" json:"follow_up_date"`
	Status            *string   `gorm:"default:'no-reply'" json:"status"`
	Notes             *string   `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`

	User auth.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Contact) TableName() string { return "phd_contacts" }

// mutableColumns are the columns a PUT replaces in full. id, user_id and
// created_at are immutable.
var mutableColumns = []string{
	"professor_name", "prof_degree", "university", "country", "department",
	"email", "research_focus", "prof_webpage", "prof_google_scholar",
	"faculty_page", "email_sent_date", "follow_up_date", "status", "notes",
}

const defaultStatus = "no-reply"

type CreateResponse struct {
	ID int `json:"id"`
}

type UpdateResponse struct {
	Updated bool `json:"updated"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
