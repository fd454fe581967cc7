package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Vijaybattula26/gemini-ats/pkg/llm"
	"github.com/Vijaybattula26/gemini-ats/pkg/resume"
)

const evaluationSystemPrompt = "You are an experienced hiring manager. Evaluate candidates strictly against the job description."

const evaluationPromptTemplate = `Job Description:
%s

Candidate Summary (from resume):
%s

Candidate Skills:
%s

Based on the Job Description and Candidate information, provide:
1. A match score out of 100 (e.g., "Score: 85/100").
2. A brief summary of why this candidate is a good fit.
3. Key strengths directly relevant to the job.
4. Key gaps or areas where the candidate might not fully meet the requirements.

Format your response clearly, starting with the score line.
`

type service struct {
	llm llm.ChatModel
	log *slog.Logger
}

func NewService(model llm.ChatModel, logger *slog.Logger) Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{llm: model, log: logger}
}

// BuildEvaluationPrompt renders the scoring prompt; an empty skill list is shown as "None".
func BuildEvaluationPrompt(jobDescription, summary string, skills []string) string {
	skillLine := "None"
	if len(skills) > 0 {
		skillLine = strings.Join(skills, ", ")
	}
	return fmt.Sprintf(evaluationPromptTemplate, jobDescription, summary, skillLine)
}

func (s *service) Evaluate(ctx context.Context, jobDescription, summary string, skills []string) Result {
	if s.llm == nil {
		s.log.Error("evaluation skipped: language model is not configured")
		return Result{Narrative: FailedNarrative, Status: resume.ScoreStatusFailed}
	}
	reply, err := s.llm.Ask(ctx, evaluationSystemPrompt, BuildEvaluationPrompt(jobDescription, summary, skills))
	if err != nil {
		// the failure is stored as the narrative
		s.log.Error("evaluation call failed", slog.Any("err", err))
		return Result{Narrative: FailedNarrative, Status: resume.ScoreStatusFailed}
	}
	score, ok := ExtractScore(reply)
	status := resume.ScoreStatusScored
	if !ok {
		status = resume.ScoreStatusUnparseable
		s.log.Warn("evaluation reply has no score line")
	}
	return Result{Narrative: reply, Score: score, Status: status}
}
