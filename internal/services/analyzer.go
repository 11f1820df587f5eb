package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/Dhruvrana8/ResumeMatchAI/internal/ats"
	"github.com/Dhruvrana8/ResumeMatchAI/internal/models"
	"github.com/Dhruvrana8/ResumeMatchAI/internal/repositories"
)

type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, analysisID uuid.UUID) error
}

// analyzerService runs the scoring pipeline for one queued analysis:
// resolve the resume text, score it, persist the report, then run the
// optional narrative and vector-index add-ons.
type analyzerService struct {
	analysisRepo  repositories.AnalysisRepository
	docRepo       repositories.DocumentRepository
	scorer        *ats.Scorer
	pdfParser     PDFParserService
	geminiService GeminiService // nil when the narrative add-on is off
	index         AnalysisIndex // nil when the similarity lookup is off
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewAnalyzerService(
	analysisRepo repositories.AnalysisRepository,
	docRepo repositories.DocumentRepository,
	scorer *ats.Scorer,
	pdfParser PDFParserService,
	geminiService GeminiService,
	index AnalysisIndex,
	maxRetries int,
) AnalyzerService {
	return &analyzerService{
		analysisRepo:  analysisRepo,
		docRepo:       docRepo,
		scorer:        scorer,
		pdfParser:     pdfParser,
		geminiService: geminiService,
		index:         index,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

func (a *analyzerService) AnalyzeResume(ctx context.Context, analysisID uuid.UUID) error {
	if err := a.analysisRepo.UpdateStatus(analysisID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting analysis for job ID: %s\n", analysisID)

	analysis, err := a.analysisRepo.FindByID(analysisID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to get analysis: %w", err)
	}

	resumeText, err := a.resolveResumeText(analysis)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to resolve resume text: %w", err)
	}

	log.Println("📊 Scoring resume against job description...")
	report, err := a.scorer.Score(analysis.JobDescription, resumeText)
	if err != nil {
		// Validation failures are caller errors, recorded on the row.
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to score resume: %w", err)
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	var narrative *string
	if a.geminiService != nil {
		log.Println("🤖 Generating score narrative...")
		text, err := a.generateNarrative(ctx, analysis.JobDescription, resumeText, report)
		if err != nil {
			// The narrative never blocks the numeric result.
			log.Printf("⚠️  Warning: Failed to generate narrative: %v\n", err)
		} else {
			narrative = &text
		}
	}

	log.Println("💾 Saving analysis results...")
	reportStr := string(reportJSON)
	updateData := &repositories.AnalysisUpdateData{
		Score:      &report.FinalScore,
		Grade:      &report.Grade,
		PassRate:   &report.PassRate,
		ReportJSON: &reportStr,
		Narrative:  narrative,
	}

	if err := a.analysisRepo.UpdateResult(analysisID, updateData); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	if a.index != nil && a.geminiService != nil {
		if err := a.indexResume(ctx, analysisID, resumeText, report); err != nil {
			log.Printf("⚠️  Warning: Failed to index resume for similarity lookup: %v\n", err)
		}
	}

	log.Printf("✅ Analysis completed successfully for job ID: %s\n", analysisID)
	return nil
}

// resolveResumeText returns the raw text submitted with the analysis, or
// extracts it from the referenced uploaded PDF.
func (a *analyzerService) resolveResumeText(analysis *models.Analysis) (string, error) {
	if analysis.ResumeText != nil && strings.TrimSpace(*analysis.ResumeText) != "" {
		return *analysis.ResumeText, nil
	}

	if analysis.ResumeDocumentID == nil {
		return "", fmt.Errorf("analysis has neither resume text nor a resume document")
	}

	doc, err := a.docRepo.FindByID(*analysis.ResumeDocumentID)
	if err != nil {
		return "", fmt.Errorf("resume document not found: %w", err)
	}

	log.Println("📄 Parsing resume PDF...")
	text, err := a.pdfParser.ExtractText(doc.FilePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse resume PDF: %w", err)
	}

	return text, nil
}

func (a *analyzerService) generateNarrative(ctx context.Context, jobDescription, resumeText string, report *ats.ScoreReport) (string, error) {
	prompt := a.promptBuilder.BuildNarrativePrompt(jobDescription, resumeText, report)

	narrative, err := a.geminiService.GenerateTextWithRetry(ctx, prompt, 0.5, a.maxRetries)
	if err != nil {
		return "", fmt.Errorf("failed to generate narrative: %w", err)
	}

	return strings.TrimSpace(narrative), nil
}

func (a *analyzerService) indexResume(ctx context.Context, analysisID uuid.UUID, resumeText string, report *ats.ScoreReport) error {
	embedding, err := a.geminiService.GenerateEmbedding(ctx, resumeText)
	if err != nil {
		return fmt.Errorf("failed to embed resume: %w", err)
	}

	if err := a.index.UpsertAnalysis(ctx, analysisID, embedding, report.FinalScore, report.Grade); err != nil {
		return fmt.Errorf("failed to upsert analysis vector: %w", err)
	}

	return nil
}
