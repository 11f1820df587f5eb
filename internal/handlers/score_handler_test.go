package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dhruvrana8/ResumeMatchAI/internal/ats"
	"github.com/Dhruvrana8/ResumeMatchAI/internal/models"
)

func newScoreApp(t *testing.T) *fiber.App {
	t.Helper()
	scorer, err := ats.NewScorer(ats.DefaultConfig(), nil)
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/api/v1/score", NewScoreHandler(scorer).HandleScore)
	return app
}

func postScore(t *testing.T, app *fiber.App, req models.ScoreRequest) (int, []byte) {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq := httptest.NewRequest("POST", "/api/v1/score", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBody
}

func TestHandleScore_ReturnsReport(t *testing.T) {
	app := newScoreApp(t)

	status, body := postScore(t, app, models.ScoreRequest{
		JobDescription: "Backend engineer writing Go with Docker and PostgreSQL",
		ResumeText:     "Go developer, Docker containers, PostgreSQL administration",
	})

	require.Equal(t, fiber.StatusOK, status)

	var report ats.ScoreReport
	require.NoError(t, json.Unmarshal(body, &report))
	assert.GreaterOrEqual(t, report.FinalScore, 0)
	assert.LessOrEqual(t, report.FinalScore, 100)
	assert.Len(t, report.Components, 7)
	assert.NotEmpty(t, report.Grade)
}

func TestHandleScore_MissingFieldsRejected(t *testing.T) {
	app := newScoreApp(t)

	status, _ := postScore(t, app, models.ScoreRequest{JobDescription: "only a job"})

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandleScore_ValidationErrorsAreUnprocessable(t *testing.T) {
	app := newScoreApp(t)

	// Passes the required checks but fails the scorer's word limit.
	long := strings.TrimSpace(strings.Repeat("word ", ats.DefaultJobWordLimit+1))
	status, _ := postScore(t, app, models.ScoreRequest{
		JobDescription: long,
		ResumeText:     "a resume",
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}
