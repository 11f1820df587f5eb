package models

import "encoding/json"

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	SizeBytes    int64  `json:"size_bytes"`
}

// AnalyzeRequest queues an asynchronous analysis. Exactly one of
// ResumeDocumentID and ResumeText must be provided.
type AnalyzeRequest struct {
	JobDescription   string `json:"job_description" validate:"required"`
	ResumeDocumentID string `json:"resume_document_id" validate:"omitempty,uuid"`
	ResumeText       string `json:"resume_text"`
}

type AnalyzeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ScoreRequest scores raw texts synchronously, without persistence.
type ScoreRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
	ResumeText     string `json:"resume_text" validate:"required"`
}

type ResultResponse struct {
	ID           string        `json:"id"`
	Status       string        `json:"status"`
	Result       *AnalysisData `json:"result,omitempty"`
	ErrorMessage *string       `json:"error_message,omitempty"`
}

type AnalysisData struct {
	Score     int             `json:"score"`
	Grade     string          `json:"grade"`
	PassRate  string          `json:"pass_rate"`
	Report    json.RawMessage `json:"report"`
	Narrative *string         `json:"narrative,omitempty"`
}

type SimilarAnalysisResponse struct {
	AnalysisID string  `json:"analysis_id"`
	Similarity float32 `json:"similarity"`
	Score      int     `json:"score"`
	Grade      string  `json:"grade"`
}
