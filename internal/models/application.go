package models

import (
	"time"

	"github.com/google/uuid"
)

// CheatSheet is the free-form interview metadata attached to a package.
// Beyond whatever the builder puts in it (stack summary, years of experience,
// compensation expectation), it always embeds requester_email and
// relevance_score once saved.
type CheatSheet map[string]interface{}

// ApplicationPackage is one generated resume + cheat sheet for a
// (job, requester) pair. The composite unique index is what makes
// SaveApplication safe under concurrent writers: the losing insert fails with
// a uniqueness violation and falls back to the score-merge path.
type ApplicationPackage struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobID          string     `gorm:"type:text;not null;uniqueIndex:idx_packages_job_requester,priority:1" json:"job_id"`
	RequesterEmail string     `gorm:"type:text;not null;uniqueIndex:idx_packages_job_requester,priority:2" json:"requester_email"`
	ResumeText     string     `gorm:"type:text" json:"resume_text"`
	CheatSheet     CheatSheet `gorm:"type:jsonb;serializer:json" json:"cheat_sheet"`
	RelevanceScore *float64   `json:"relevance_score,omitempty"`
	CreatedAt      time.Time  `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"type:timestamp;default:now()" json:"updated_at"`

	Job Job `gorm:"foreignKey:JobID" json:"-"`
}

func (ApplicationPackage) TableName() string {
	return "application_packages"
}
