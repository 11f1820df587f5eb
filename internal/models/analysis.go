package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	StatusQueued     AnalysisStatus = "queued"
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

// Analysis is one job-description/resume scoring request and its outcome.
// Exactly one of ResumeDocumentID and ResumeText is set at creation time.
type Analysis struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobDescription   string         `gorm:"type:text;not null" json:"job_description"`
	ResumeDocumentID *uuid.UUID     `gorm:"type:uuid" json:"resume_document_id,omitempty"`
	ResumeText       *string        `gorm:"type:text" json:"resume_text,omitempty"`
	Status           AnalysisStatus `gorm:"not null;default:'queued'" json:"status"`
	Score            *int           `gorm:"type:int" json:"score,omitempty"`
	Grade            *string        `gorm:"type:text" json:"grade,omitempty"`
	PassRate         *string        `gorm:"type:text" json:"pass_rate,omitempty"`
	ReportJSON       *string        `gorm:"type:jsonb" json:"-"`
	Narrative        *string        `gorm:"type:text" json:"narrative,omitempty"`
	ErrorMessage     *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ResumeDocument *Document `gorm:"foreignKey:ResumeDocumentID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}
