package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

const (
	resumeField         = "resume"
	jobDescriptionField = "job_description"
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	parser      services.DocumentParserService
	validator   *validator.Validate
	maxFileSize int64
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	parser services.DocumentParserService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		parser:      parser,
		validator:   newRequestValidator(),
		maxFileSize: maxFileSize,
	}
}

// newRequestValidator reports fields by their JSON names.
func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// HandleAnalyzeUpload handles POST /analyze with a multipart resume file and a
// job_description form field.
func (h *AnalyzeHandler) HandleAnalyzeUpload(c *fiber.Ctx) error {
	resumeFile, err := c.FormFile(resumeField)
	if err != nil {
		return respondError(c, &services.ValidationError{Field: resumeField, Message: "resume file is required"})
	}

	jobDescription := strings.TrimSpace(c.FormValue(jobDescriptionField))
	if jobDescription == "" {
		return respondError(c, &services.ValidationError{Field: jobDescriptionField, Message: "job description is required"})
	}

	if resumeFile.Size > h.maxFileSize {
		return respondError(c, &services.ValidationError{
			Field:   resumeField,
			Message: fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := resumeFile.Open()
	if err != nil {
		return respondError(c, fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return respondError(c, fmt.Errorf("failed to read uploaded file: %w", err))
	}

	mimeType := services.ResolveMIMEType(resumeFile.Header.Get(fiber.HeaderContentType), resumeFile.Filename)
	resumeText, err := h.parser.ExtractText(data, mimeType)
	if err != nil {
		log.Printf("❌ Failed to parse %s (%s): %v", resumeFile.Filename, mimeType, err)
		return respondError(c, err)
	}

	return h.analyze(c, resumeText, jobDescription)
}

// HandleAnalyzeText handles POST /analyze/text for callers that already hold
// the resume as plain text.
func (h *AnalyzeHandler) HandleAnalyzeText(c *fiber.Ctx) error {
	var req models.AnalyzeTextRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
			Code:  fiber.StatusBadRequest,
		})
	}

	req.ResumeText = strings.TrimSpace(req.ResumeText)
	req.JobDescription = strings.TrimSpace(req.JobDescription)
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, extractValidationError(err))
	}

	return h.analyze(c, req.ResumeText, req.JobDescription)
}

func (h *AnalyzeHandler) analyze(c *fiber.Ctx, resumeText, jobDescription string) error {
	requestID := uuid.New().String()
	log.Printf("🔄 Analyzing request %s (%d resume chars, %d job description chars)",
		requestID, len(resumeText), len(jobDescription))

	report, err := h.analyzer.Analyze(c.UserContext(), resumeText, jobDescription)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("✅ Request %s scored %d", requestID, report.MatchScore)

	return c.JSON(models.AnalyzeResponse{
		RequestID: requestID,
		Report:    report,
	})
}

// extractValidationError converts the first validator failure into a
// services.ValidationError.
func extractValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &services.ValidationError{Field: "request", Message: "invalid request"}
	}

	fe := fieldErrs[0]
	label := strings.ReplaceAll(fe.Field(), "_", " ")
	message := fmt.Sprintf("%s is invalid", label)
	if fe.Tag() == "required" {
		message = fmt.Sprintf("%s is required", label)
	}
	return &services.ValidationError{Field: fe.Field(), Message: message}
}
