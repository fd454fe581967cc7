package resume

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/unidoc/unipdf/v3/common/license"
	uniextractor "github.com/unidoc/unipdf/v3/extractor"
	unimodel "github.com/unidoc/unipdf/v3/model"
)

// Kind is the resume file format, derived from the file extension.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
)

var (
	ErrUnsupportedKind = errors.New("unsupported file format: only pdf and docx are allowed")
	ErrEmptyText       = errors.New("no readable text in document")
	ErrCorrupt         = errors.New("document could not be read")
)

var reTags = regexp.MustCompile(`<[^>]+>`)

// KindFromFilename maps .pdf and .docx (any case) to a Kind.
func KindFromFilename(filename string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDOCX, nil
	default:
		return "", ErrUnsupportedKind
	}
}

// Extractor turns uploaded resume files into plain text.
type Extractor struct {
	uniPDF bool
}

// NewExtractor builds an extractor. A non-empty UniDoc licence key enables
// unipdf as the second PDF engine for documents ledongthuc/pdf cannot open.
func NewExtractor(unidocLicenseKey string) (*Extractor, error) {
	e := &Extractor{}
	if unidocLicenseKey != "" {
		if err := license.SetMeteredKey(unidocLicenseKey); err != nil {
			return nil, fmt.Errorf("unipdf license: %w", err)
		}
		e.uniPDF = true
	}
	return e, nil
}

// ExtractFile reads the file at path and extracts its text.
func (e *Extractor) ExtractFile(path string, kind Kind) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return e.Extract(kind, data)
}

// Extract returns the document text exactly as the engine produced it. The
// error is ErrEmptyText when nothing but whitespace came out, and wraps
// ErrCorrupt when the file itself is broken.
func (e *Extractor) Extract(kind Kind, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch kind {
	case KindPDF:
		text, err = extractTextFromPDF(data)
		if err != nil && e.uniPDF {
			if alt, altErr := extractTextWithUniPDF(data); altErr == nil {
				text, err = alt, nil
			}
		}
	case KindDOCX:
		text, err = extractTextFromDocx(data)
	default:
		return "", ErrUnsupportedKind
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

func extractTextFromPDF(data []byte) (text string, err error) {
	// ledongthuc/pdf panics on some malformed xref tables
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: pdf: %v", ErrCorrupt, r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %w", ErrCorrupt, err)
	}
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		// a page without a text layer contributes nothing
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(pageText)
	}
	return b.String(), nil
}

func extractTextWithUniPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: unipdf: %v", ErrCorrupt, r)
		}
	}()
	reader, err := unimodel.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: unipdf: %w", ErrCorrupt, err)
	}
	n, err := reader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("%w: unipdf: %w", ErrCorrupt, err)
	}
	var b strings.Builder
	for i := 1; i <= n; i++ {
		page, err := reader.GetPage(i)
		if err != nil {
			continue
		}
		ex, err := uniextractor.New(page)
		if err != nil {
			continue
		}
		pageText, err := ex.ExtractText()
		if err != nil {
			continue
		}
		b.WriteString(pageText)
	}
	return b.String(), nil
}

func extractTextFromDocx(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: docx: %v", ErrCorrupt, r)
		}
	}()
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: docx: %w", ErrCorrupt, err)
	}
	defer doc.Close()
	return flattenDocumentXML(doc.Editable().GetContent()), nil
}

// flattenDocumentXML converts WordprocessingML body markup to plain text.
func flattenDocumentXML(xml string) string {
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	xml = strings.ReplaceAll(xml, "<w:br/>", "\n")
	xml = reTags.ReplaceAllString(xml, "")
	return unescapeXML(xml)
}

var xmlEntities = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

func unescapeXML(s string) string { return xmlEntities.Replace(s) }

// TextExtractor is the part of Extractor the upload path depends on.
type TextExtractor interface {
	Extract(kind Kind, data []byte) (string, error)
}
