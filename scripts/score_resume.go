package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Dhruvrana8/ResumeMatchAI/internal/ats"
	"github.com/Dhruvrana8/ResumeMatchAI/internal/config"
	"github.com/Dhruvrana8/ResumeMatchAI/internal/services"
)

// Offline scoring: one resume against one job description, no server, no
// database. The resume can be a PDF or a plain text file.
func main() {
	jobPath := flag.String("job", "", "path to a job description text file")
	resumePath := flag.String("resume", "", "path to a resume (.pdf or .txt)")
	flag.Parse()

	if *jobPath == "" || *resumePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()

	scorer, err := ats.NewScorer(cfg.ATSConfig(), nil)
	if err != nil {
		log.Fatalf("❌ Invalid scoring configuration: %v", err)
	}

	jobBytes, err := os.ReadFile(*jobPath)
	if err != nil {
		log.Fatalf("❌ Failed to read job description: %v", err)
	}

	resumeText, err := readResume(*resumePath)
	if err != nil {
		log.Fatalf("❌ Failed to read resume: %v", err)
	}

	report, err := scorer.Score(string(jobBytes), resumeText)
	if err != nil {
		log.Fatalf("❌ Scoring failed: %v", err)
	}

	printReport(report)
}

func readResume(path string) (string, error) {
	if strings.ToLower(filepath.Ext(path)) == ".pdf" {
		return services.NewPDFParserService().ExtractText(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func printReport(report *ats.ScoreReport) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Overall Score: %d/100 (Grade %s)\n", report.FinalScore, report.Grade)
	fmt.Printf("Estimated to pass: %s\n", report.PassRate)
	fmt.Println(strings.Repeat("=", 60))

	fmt.Println("\nComponent scores:")
	for _, c := range report.Components {
		fmt.Printf("  %-18s %5.1f%%  (weight %.0f%%)\n", c.Name, c.Value*100, c.Weight*100)
	}

	if info := report.PersonalInfo; info.Completeness() > 0 {
		fmt.Println("\nContact information found:")
		if info.Name != "" {
			fmt.Printf("  Name:     %s\n", info.Name)
		}
		if info.Email != "" {
			fmt.Printf("  Email:    %s\n", info.Email)
		}
		if info.Phone != "" {
			fmt.Printf("  Phone:    %s\n", info.Phone)
		}
		if info.Location != "" {
			fmt.Printf("  Location: %s\n", info.Location)
		}
	}

	if len(report.Recommendations) > 0 {
		fmt.Println("\nRecommendations (highest impact first):")
		for i, r := range report.Recommendations {
			fmt.Printf("  %d. %s\n", i+1, r)
		}
	}
}
