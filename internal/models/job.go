package models

import (
	"time"
)

// StringList is stored as a JSONB column via gorm's built-in JSON serializer.
type StringList []string

// Job is the canonical representation of one posting, regardless of which
// board it came from. ID is "<source>_<source native id>" and is the primary
// key; Fingerprint is a content hash used to catch the same posting re-listed
// under a different id on another board.
type Job struct {
	ID          string    `gorm:"type:text;primary_key" json:"id"`
	Source      string    `gorm:"type:text;not null;index" json:"source"`
	Title       string    `gorm:"type:text" json:"title"`
	Company     string    `gorm:"type:text" json:"company"`
	Location    string    `gorm:"type:text" json:"location"`
	Description string    `gorm:"type:text" json:"description"`
	Salary      *string   `gorm:"type:text" json:"salary,omitempty"`
	ApplyURL    string    `gorm:"type:text" json:"apply_url"`
	Fingerprint string    `gorm:"type:text;not null;index" json:"fingerprint"`
	FetchedAt   time.Time `gorm:"type:timestamp" json:"fetched_at"`

	// Derived attributes, populated by the analysis stage before persistence.
	SkillsExtracted StringList `gorm:"type:jsonb;serializer:json" json:"skills_extracted"`
	Seniority       string     `gorm:"type:text" json:"seniority,omitempty"`
	RemoteFlag      bool       `json:"remote_flag"`
	Score           float64    `gorm:"index" json:"score"`

	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}
