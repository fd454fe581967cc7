package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/Vijaybattula26/gemini-ats/pkg/llm"
)

// ProfileParser извлекает структурированный профиль кандидата из текста резюме.
type ProfileParser interface {
	Parse(ctx context.Context, rawText string) (CandidateProfile, error)
}

var reFencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

const profileSystemPrompt = "You are an expert technical recruiter. Extract facts from resumes. Never invent information."

const profilePromptTemplate = `Analyze the following resume text and extract the following information in a JSON format.
If a field is not found, use "N/A" for strings, empty array for lists, or appropriate default.
Make sure the JSON is well-formed and directly parsable.

Resume Text:
%s

Expected JSON format:
{
    "name": "string",
    "email": "string",
    "phone": "string",
    "linkedin": "string",
    "education": [
        {"degree": "string", "major": "string", "university": "string", "years": "string"}
    ],
    "experience": [
        {"title": "string", "company": "string", "years": "string", "description": "string"}
    ],
    "skills": ["skill1", "skill2", ...],
    "summary": "string"
}
`

type profileService struct {
	llm llm.ChatModel
}

func NewProfileService(model llm.ChatModel) ProfileParser {
	return &profileService{llm: model}
}

// BuildProfilePrompt returns the user prompt sent for structured extraction.
func BuildProfilePrompt(rawText string) string {
	return fmt.Sprintf(profilePromptTemplate, rawText)
}

func (s *profileService) Parse(ctx context.Context, rawText string) (CandidateProfile, error) {
	if s.llm == nil {
		return CandidateProfile{}, fmt.Errorf("%w: language model is not configured", ErrParseFailed)
	}
	raw, err := s.llm.Ask(ctx, profileSystemPrompt, BuildProfilePrompt(rawText))
	if err != nil {
		return CandidateProfile{}, fmt.Errorf("%w: llm call: %w", ErrParseFailed, err)
	}
	return DecodeProfile(raw)
}

// ExtractJSONPayload returns the interior of the first ```json fenced block,
// or the whole trimmed completion when there is none.
func ExtractJSONPayload(completion string) string {
	if m := reFencedJSON.FindStringSubmatch(completion); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(completion)
}

// DecodeProfile decodes a model completion into a profile. A completion that
// does not hold a JSON object yields ErrParseFailed, never a partial profile.
func DecodeProfile(completion string) (CandidateProfile, error) {
	payload := ExtractJSONPayload(completion)
	if payload == "" {
		return CandidateProfile{}, fmt.Errorf("%w: empty completion", ErrParseFailed)
	}
	if !strings.HasPrefix(payload, "{") {
		return CandidateProfile{}, fmt.Errorf("%w: payload is not a JSON object", ErrParseFailed)
	}
	p := emptyProfile()
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return CandidateProfile{}, fmt.Errorf("%w: decode: %w", ErrParseFailed, err)
	}
	p.normalize()
	return p, nil
}
