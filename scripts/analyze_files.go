// Command analyze_files scores a local resume file against a job description
// file without starting the HTTP server.
//
//	go run ./scripts/analyze_files.go --resume cv.pdf --job jd.txt
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/services"
)

var (
	resumePath string
	jobPath    string
	offline    bool
)

var rootCmd = &cobra.Command{
	Use:   "analyze_files",
	Short: "Score a resume file against a job description file",
	Long:  "Extracts text from a PDF, DOCX or TXT resume, compares it with a job description and prints the match report as JSON.",
	RunE:  runAnalyze,
}

func init() {
	rootCmd.Flags().StringVarP(&resumePath, "resume", "r", "", "Path to the resume (.pdf, .docx or .txt)")
	rootCmd.Flags().StringVarP(&jobPath, "job", "j", "", "Path to a plain-text job description")
	rootCmd.Flags().BoolVar(&offline, "offline", false, "Skip the Gemini call and use static suggestions")
	_ = rootCmd.MarkFlagRequired("resume")
	_ = rootCmd.MarkFlagRequired("job")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	ctx := context.Background()

	resumeData, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobData, err := os.ReadFile(jobPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	parser := services.NewDocumentParserService()
	resumeText, err := parser.ExtractText(resumeData, services.ResolveMIMEType("", filepath.Base(resumePath)))
	if err != nil {
		return err
	}
	log.Printf("📖 Extracted %d characters from %s", len(resumeText), resumePath)

	var summarizer services.Summarizer
	if !offline && cfg.SummarizerEnabled() {
		summarizer, err = services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Printf("⚠️  Gemini unavailable, using static suggestions: %v", err)
		}
	}

	analyzer := services.NewAnalyzerService(services.NewSuggestionProvider(summarizer, cfg.Suggestions.Timeout))
	report, err := analyzer.Analyze(ctx, resumeText, string(jobData))
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
