package presenter

import "github.com/Vijaybattula26/gemini-ats/pkg/resume"

// UploadResponse is returned by POST /upload.
type UploadResponse struct {
	Message  string `json:"message"`
	ResumeID int64  `json:"resume_id"`
	Filename string `json:"filename"`
}

// ProcessResponse is returned by POST /process_resume/{id}.
type ProcessResponse struct {
	Message     string                  `json:"message"`
	ResumeID    int64                   `json:"resume_id"`
	ParsedData  resume.CandidateProfile `json:"parsed_data"`
	Evaluation  string                  `json:"evaluation"`
	Score       float64                 `json:"score"`
	ScoreStatus resume.ScoreStatus      `json:"score_status"`
}

// CandidateSummary is one row of GET /candidates.
type CandidateSummary struct {
	ID              int64              `json:"id"`
	Filename        string             `json:"filename"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Score           *float64           `json:"score"`
	ScoreStatus     resume.ScoreStatus `json:"score_status,omitempty"`
	JobMatchSummary *string            `json:"job_match_summary"`
}

// CandidateDetails is returned by GET /candidate_details/{id}. ParsedData is
// an empty object until the resume has been processed.
type CandidateDetails struct {
	ID              int64              `json:"id"`
	Filename        string             `json:"filename"`
	ParsedData      any                `json:"parsed_data" swaggertype:"object"`
	Score           *float64           `json:"score"`
	ScoreStatus     resume.ScoreStatus `json:"score_status,omitempty"`
	JobMatchSummary *string            `json:"job_match_summary"`
}

func NewCandidateSummary(r resume.Record) CandidateSummary {
	out := CandidateSummary{
		ID:              r.ID,
		Filename:        r.Filename,
		Name:            resume.NotAvailable,
		Email:           resume.NotAvailable,
		Score:           r.Score,
		ScoreStatus:     r.ScoreStatus,
		JobMatchSummary: r.EvaluationSummary,
	}
	if r.ParsedData != nil {
		out.Name = r.ParsedData.Name
		out.Email = r.ParsedData.Email
	}
	return out
}

func NewCandidateDetails(r resume.Record) CandidateDetails {
	var parsed any = struct{}{}
	if r.ParsedData != nil {
		parsed = r.ParsedData
	}
	return CandidateDetails{
		ID:              r.ID,
		Filename:        r.Filename,
		ParsedData:      parsed,
		Score:           r.Score,
		ScoreStatus:     r.ScoreStatus,
		JobMatchSummary: r.EvaluationSummary,
	}
}
