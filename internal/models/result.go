package models

// MatchReport is the scored comparison of one resume against one job
// description. It is built once per request and never stored.
type MatchReport struct {
	MatchScore      int      `json:"matchScore"`
	MatchLevel      string   `json:"matchLevel"`
	PositionTitle   string   `json:"positionTitle"`
	Company         string   `json:"company"`
	MissingKeywords []string `json:"missingKeywords"`
	SkillsFound     []string `json:"skillsFound"`
	Improvements    []string `json:"improvements"`
}

type AnalyzeTextRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

type AnalyzeResponse struct {
	RequestID string       `json:"requestId"`
	Report    *MatchReport `json:"report"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
