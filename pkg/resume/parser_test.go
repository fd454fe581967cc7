package resume_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vijaybattula26/gemini-ats/pkg/resume"
	"github.com/Vijaybattula26/gemini-ats/pkg/resume/resumetest"
)

func TestKindFromFilename(t *testing.T) {
	tests := []struct {
		name    string
		kind    resume.Kind
		wantErr bool
	}{
		{"cv.pdf", resume.KindPDF, false},
		{"CV.PDF", resume.KindPDF, false},
		{"jane.smith.docx", resume.KindDOCX, false},
		{"notes.txt", "", true},
		{"legacy.doc", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := resume.KindFromFilename(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, resume.ErrUnsupportedKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestExtractPDF(t *testing.T) {
	ex, err := resume.NewExtractor("")
	require.NoError(t, err)

	t.Run("text pages in order", func(t *testing.T) {
		data := resumetest.PDF([]string{"John Doe, john@x.com"}, []string{}, []string{"Skills: Go"})
		text, err := ex.Extract(resume.KindPDF, data)
		require.NoError(t, err)
		assert.Contains(t, text, "John Doe, john@x.com")
		assert.Contains(t, text, "Skills: Go")
		assert.Less(t, strings.Index(text, "John Doe"), strings.Index(text, "Skills"))
	})

	t.Run("blank pages", func(t *testing.T) {
		_, err := ex.Extract(resume.KindPDF, resumetest.PDF([]string{}, []string{}))
		assert.ErrorIs(t, err, resume.ErrEmptyText)
	})

	t.Run("corrupt", func(t *testing.T) {
		_, err := ex.Extract(resume.KindPDF, []byte("definitely not a pdf"))
		assert.ErrorIs(t, err, resume.ErrCorrupt)
	})
}

func TestExtractDOCX(t *testing.T) {
	ex, err := resume.NewExtractor("")
	require.NoError(t, err)

	t.Run("paragraphs", func(t *testing.T) {
		data := resumetest.DOCX("Jane Smith", "Senior Engineer at Acme & Co", "  ")
		text, err := ex.Extract(resume.KindDOCX, data)
		require.NoError(t, err)
		assert.Contains(t, text, "Jane Smith\nSenior Engineer at Acme & Co\n")
		assert.Equal(t, "Jane Smith\nSenior Engineer at Acme & Co", strings.TrimSpace(text))
	})

	t.Run("whitespace kept as extracted", func(t *testing.T) {
		data := resumetest.DOCX("John   Doe,\t\tjohn@x.com", "", "", "Line   2")
		text, err := ex.Extract(resume.KindDOCX, data)
		require.NoError(t, err)
		assert.Contains(t, text, "John   Doe,\t\tjohn@x.com\n\n\nLine   2")
	})

	t.Run("no text", func(t *testing.T) {
		_, err := ex.Extract(resume.KindDOCX, resumetest.DOCX())
		assert.ErrorIs(t, err, resume.ErrEmptyText)
	})

	t.Run("not a zip", func(t *testing.T) {
		_, err := ex.Extract(resume.KindDOCX, []byte("PK?"))
		assert.ErrorIs(t, err, resume.ErrCorrupt)
	})
}

func TestExtractFile(t *testing.T) {
	ex, err := resume.NewExtractor("")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cv.docx")
	require.NoError(t, os.WriteFile(path, resumetest.DOCX("Line one"), 0o644))

	text, err := ex.ExtractFile(path, resume.KindDOCX)
	require.NoError(t, err)
	assert.Equal(t, "Line one", strings.TrimSpace(text))

	_, err = ex.ExtractFile(filepath.Join(t.TempDir(), "missing.pdf"), resume.KindPDF)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExtractUnsupportedKind(t *testing.T) {
	ex, err := resume.NewExtractor("")
	require.NoError(t, err)
	_, err = ex.Extract(resume.Kind("txt"), []byte("hello"))
	assert.ErrorIs(t, err, resume.ErrUnsupportedKind)
}
