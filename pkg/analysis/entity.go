package analysis

import (
	"context"

	"github.com/Vijaybattula26/gemini-ats/pkg/resume"
)

// FailedNarrative is stored as the evaluation text when the model could not be reached.
const FailedNarrative = "Evaluation failed: Could not get a response from the language model."

// Result is the outcome of evaluating a candidate against a job description.
type Result struct {
	// Narrative is the full model reply, kept unmodified.
	Narrative string
	Score     float64
	Status    resume.ScoreStatus
}

// Evaluator оценивает кандидата по описанию вакансии. Ошибки вызова модели
// не возвращаются, а отражаются в Result.Status.
type Evaluator interface {
	Evaluate(ctx context.Context, jobDescription, summary string, skills []string) Result
}
