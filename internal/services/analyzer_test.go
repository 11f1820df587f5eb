package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dhruvrana8/ResumeMatchAI/internal/ats"
	"github.com/Dhruvrana8/ResumeMatchAI/internal/models"
	"github.com/Dhruvrana8/ResumeMatchAI/internal/repositories"
)

type fakeAnalysisRepo struct {
	mu       sync.Mutex
	rows     map[uuid.UUID]*models.Analysis
	statuses []models.AnalysisStatus
	result   *repositories.AnalysisUpdateData
	errorMsg string
}

func newFakeAnalysisRepo() *fakeAnalysisRepo {
	return &fakeAnalysisRepo{rows: make(map[uuid.UUID]*models.Analysis)}
}

func (f *fakeAnalysisRepo) Create(analysis *models.Analysis) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[analysis.ID] = analysis
	return nil
}

func (f *fakeAnalysisRepo) FindByID(id uuid.UUID) (*models.Analysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("analysis not found")
	}
	return row, nil
}

func (f *fakeAnalysisRepo) UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, status)
	f.rows[id].Status = status
	return nil
}

func (f *fakeAnalysisRepo) UpdateResult(id uuid.UUID, result *repositories.AnalysisUpdateData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.result = result
	f.rows[id].Status = models.StatusCompleted
	return nil
}

func (f *fakeAnalysisRepo) UpdateError(id uuid.UUID, errorMsg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errorMsg = errorMsg
	f.rows[id].Status = models.StatusFailed
	return nil
}

func (f *fakeAnalysisRepo) Delete(id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

func (f *fakeAnalysisRepo) FindPendingJobs(limit int) ([]models.Analysis, error) {
	return nil, nil
}

func (f *fakeAnalysisRepo) FindCompletedByIDs(ids []uuid.UUID) ([]models.Analysis, error) {
	return nil, nil
}

type fakeDocRepo struct{}

func (fakeDocRepo) Create(document *models.Document) error { return nil }
func (fakeDocRepo) FindByID(id uuid.UUID) (*models.Document, error) {
	return nil, fmt.Errorf("document not found")
}

func newTestAnalyzer(t *testing.T, repo *fakeAnalysisRepo) AnalyzerService {
	t.Helper()
	scorer, err := ats.NewScorer(ats.DefaultConfig(), nil)
	require.NoError(t, err)
	return NewAnalyzerService(repo, fakeDocRepo{}, scorer, NewPDFParserService(), nil, nil, 3)
}

func queueAnalysis(repo *fakeAnalysisRepo, jobDescription, resumeText string) uuid.UUID {
	id := uuid.New()
	analysis := &models.Analysis{
		ID:             id,
		JobDescription: jobDescription,
		Status:         models.StatusQueued,
	}
	if resumeText != "" {
		analysis.ResumeText = &resumeText
	}
	repo.Create(analysis)
	return id
}

func TestAnalyzeResume_CompletesWithReport(t *testing.T) {
	repo := newFakeAnalysisRepo()
	analyzer := newTestAnalyzer(t, repo)

	id := queueAnalysis(repo,
		"Senior Go engineer with Docker and PostgreSQL experience",
		"Seven years writing Go services, deploying with Docker, operating PostgreSQL")

	err := analyzer.AnalyzeResume(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, []models.AnalysisStatus{models.StatusProcessing}, repo.statuses)
	assert.Equal(t, models.StatusCompleted, repo.rows[id].Status)

	require.NotNil(t, repo.result)
	require.NotNil(t, repo.result.Score)
	assert.GreaterOrEqual(t, *repo.result.Score, 0)
	assert.LessOrEqual(t, *repo.result.Score, 100)
	require.NotNil(t, repo.result.Grade)
	require.NotNil(t, repo.result.PassRate)
	assert.Nil(t, repo.result.Narrative, "no narrative without the add-on")

	require.NotNil(t, repo.result.ReportJSON)
	var report ats.ScoreReport
	require.NoError(t, json.Unmarshal([]byte(*repo.result.ReportJSON), &report))
	assert.Equal(t, *repo.result.Score, report.FinalScore)
	assert.Len(t, report.Components, 7)
}

func TestAnalyzeResume_ValidationFailureMarksFailed(t *testing.T) {
	repo := newFakeAnalysisRepo()
	analyzer := newTestAnalyzer(t, repo)

	// Job description blank: a caller error, recorded on the row.
	id := queueAnalysis(repo, "   ", "a perfectly fine resume")

	err := analyzer.AnalyzeResume(context.Background(), id)
	require.Error(t, err)

	assert.Equal(t, models.StatusFailed, repo.rows[id].Status)
	assert.NotEmpty(t, repo.errorMsg)
	assert.Nil(t, repo.result)
}

func TestAnalyzeResume_MissingResumeSource(t *testing.T) {
	repo := newFakeAnalysisRepo()
	analyzer := newTestAnalyzer(t, repo)

	id := queueAnalysis(repo, "some job description", "")

	err := analyzer.AnalyzeResume(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, models.StatusFailed, repo.rows[id].Status)
	assert.Contains(t, repo.errorMsg, "neither resume text nor a resume document")
}
