package resume_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Vijaybattula26/gemini-ats/mocks"
	"github.com/Vijaybattula26/gemini-ats/pkg/resume"
)

const fencedCompletion = "Here is the data:\n```json\n" + `{
  "name": "John Doe",
  "email": "john@x.com",
  "phone": "+1 555 0100",
  "linkedin": "linkedin.com/in/johndoe",
  "education": [{"degree": "BSc", "major": "CS", "university": "MIT", "years": "2010-2014"}],
  "experience": [{"title": "Engineer", "company": "Acme", "years": "2015-2020", "description": "Built APIs"}],
  "skills": ["Go", "PostgreSQL"],
  "summary": "Backend engineer"
}` + "\n```\nLet me know if you need more."

func TestExtractJSONPayload(t *testing.T) {
	assert.Equal(t, `{"a":1}`, resume.ExtractJSONPayload("```json\n  {\"a\":1}  \n```"))
	assert.Equal(t, `{"a":1}`, resume.ExtractJSONPayload("  {\"a\":1}\n"))
	// only the first block is used
	assert.Equal(t, `{"a":1}`, resume.ExtractJSONPayload("```json{\"a\":1}``` and ```json{\"b\":2}```"))
}

func TestDecodeProfile(t *testing.T) {
	t.Run("fenced block", func(t *testing.T) {
		p, err := resume.DecodeProfile(fencedCompletion)
		require.NoError(t, err)
		assert.Equal(t, resume.CandidateProfile{
			Name:     "John Doe",
			Email:    "john@x.com",
			Phone:    "+1 555 0100",
			LinkedIn: "linkedin.com/in/johndoe",
			Education: []resume.EducationItem{
				{Degree: "BSc", Major: "CS", University: "MIT", Years: "2010-2014"},
			},
			Experience: []resume.ExperienceItem{
				{Title: "Engineer", Company: "Acme", Years: "2015-2020", Description: "Built APIs"},
			},
			Skills:  []string{"Go", "PostgreSQL"},
			Summary: "Backend engineer",
		}, p)
	})

	t.Run("bare JSON", func(t *testing.T) {
		p, err := resume.DecodeProfile(`{"name": "Ann", "skills": []}`)
		require.NoError(t, err)
		assert.Equal(t, "Ann", p.Name)
		assert.Equal(t, resume.NotAvailable, p.Email)
		assert.Equal(t, resume.NotAvailable, p.Summary)
		assert.Empty(t, p.Skills)
		assert.NotNil(t, p.Education)
		assert.NotNil(t, p.Experience)
	})

	t.Run("skills kept verbatim", func(t *testing.T) {
		p, err := resume.DecodeProfile("```json\n{\"name\": \"A\", \"skills\": [\"Go\", \"golang\", \"GO\", \"Node.js\", \"node js\", \"\"]}\n```")
		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "golang", "GO", "Node.js", "node js", ""}, p.Skills)
	})

	failures := map[string]string{
		"malformed":      "```json\n{\"name\": \"John\",}\n```",
		"prose":          "I could not find a resume.",
		"empty":          "   ",
		"array":          `["Go"]`,
		"null":           "null",
		"wrong type":     `{"skills": "Go"}`,
		"trailing prose": `{"name": "John"} hope this helps`,
	}
	for name, completion := range failures {
		t.Run(name, func(t *testing.T) {
			p, err := resume.DecodeProfile(completion)
			assert.ErrorIs(t, err, resume.ErrParseFailed)
			assert.Equal(t, resume.CandidateProfile{}, p)
		})
	}
}

func TestProfileServiceParse(t *testing.T) {
	t.Run("prompt embeds text", func(t *testing.T) {
		model := new(mocks.MockChatModel)
		model.On("Ask", mock.Anything, mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "Resume Text:\nJohn Doe, john@x.com") && strings.Contains(p, `"linkedin": "string"`)
		})).Return(fencedCompletion, nil).Once()

		p, err := resume.NewProfileService(model).Parse(t.Context(), "John Doe, john@x.com")
		require.NoError(t, err)
		assert.Equal(t, "John Doe", p.Name)
		model.AssertExpectations(t)
	})

	t.Run("call error", func(t *testing.T) {
		model := new(mocks.MockChatModel)
		model.On("Ask", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("unauthenticated")).Once()

		_, err := resume.NewProfileService(model).Parse(t.Context(), "text")
		assert.ErrorIs(t, err, resume.ErrParseFailed)
		model.AssertNumberOfCalls(t, "Ask", 1)
	})

	t.Run("no model", func(t *testing.T) {
		_, err := resume.NewProfileService(nil).Parse(t.Context(), "text")
		assert.ErrorIs(t, err, resume.ErrParseFailed)
	})
}
