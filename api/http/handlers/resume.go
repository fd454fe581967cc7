package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Vijaybattula26/gemini-ats/api/http/presenter"
	"github.com/Vijaybattula26/gemini-ats/pkg/events"
	"github.com/Vijaybattula26/gemini-ats/pkg/filestore"
	"github.com/Vijaybattula26/gemini-ats/pkg/metrics"
	"github.com/Vijaybattula26/gemini-ats/pkg/resume"
	"github.com/Vijaybattula26/gemini-ats/pkg/screening"
)

const (
	msgNoFilePart       = "No file part in the request."
	msgNoSelectedFile   = "No selected file."
	msgUnsupportedType  = "Unsupported file type. Please upload PDF or DOCX."
	msgNoReadableText   = "Could not extract readable text from the resume. Please check the file content."
	msgUploaded         = "Resume uploaded and text extracted successfully!"
	msgInvalidID        = "Invalid resume id."
	msgJDRequired       = "Job description is required for processing."
	msgResumeNotFound   = "Resume not found in database."
	msgParseFailed      = "Failed to parse resume with the language model. Check API key, model availability, or response format."
	msgProcessed        = "Resume processed and evaluated successfully!"
	msgProcessingFailed = "Failed to save processing results."
)

// ResumeHandler accepts uploads and runs the screening pipeline.
type ResumeHandler struct {
	repo      resume.Repository
	extractor resume.TextExtractor
	files     filestore.Store
	screening screening.UseCase
	events    events.Publisher
	metrics   *metrics.Counters
	log       *slog.Logger
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(
	repo resume.Repository,
	extractor resume.TextExtractor,
	files filestore.Store,
	uc screening.UseCase,
	pub events.Publisher,
	counters *metrics.Counters,
	logger *slog.Logger,
	maxBytes int64,
) *ResumeHandler {
	if pub == nil {
		pub = events.Nop{}
	}
	if counters == nil {
		counters = metrics.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if maxBytes <= 0 {
		maxBytes = 15 << 20 // 15MB
	}
	return &ResumeHandler{
		repo:      repo,
		extractor: extractor,
		files:     files,
		screening: uc,
		events:    pub,
		metrics:   counters,
		log:       logger,
		maxBytes:  maxBytes,
	}
}

// Upload stores a PDF or DOCX resume and its extracted text.
// @Summary Upload a resume
// @Description Accepts a PDF or DOCX file, extracts its text and stores a new resume record.
// @Tags    resumes
// @Accept  multipart/form-data
// @Produce json
// @Param   resume formData file true "Resume file (PDF or DOCX)"
// @Success 200 {object} presenter.UploadResponse
// @Failure 400 {object} presenter.ErrorResponse "Missing file, unsupported type or file too large"
// @Failure 500 {object} presenter.ErrorResponse "No readable text or storage failure"
// @Router  /upload [post]
func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		h.metrics.UploadsRejected.Add(1)
		return presenter.Error(c, http.StatusBadRequest, msgNoFilePart)
	}
	if strings.TrimSpace(fh.Filename) == "" {
		h.metrics.UploadsRejected.Add(1)
		return presenter.Error(c, http.StatusBadRequest, msgNoSelectedFile)
	}
	kind, err := resume.KindFromFilename(fh.Filename)
	if err != nil {
		h.metrics.UploadsRejected.Add(1)
		return presenter.Error(c, http.StatusBadRequest, msgUnsupportedType)
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		h.metrics.UploadsRejected.Add(1)
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	ctx := c.Context()
	uri, err := h.files.Save(ctx, fh.Filename, data, fh.Header.Get("Content-Type"))
	if err != nil {
		h.log.Error("store upload", "filename", fh.Filename, "err", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to store file")
	}

	text, err := h.extractor.Extract(kind, data)
	if err != nil {
		h.metrics.ExtractionFailures.Add(1)
		h.log.Warn("text extraction failed", "filename", fh.Filename, "err", err)
		h.discard(ctx, uri)
		return presenter.Error(c, http.StatusInternalServerError, msgNoReadableText)
	}

	id, err := h.repo.Create(ctx, resume.Record{
		Filename:   fh.Filename,
		StorageURI: uri,
		RawText:    text,
	})
	if err != nil {
		h.log.Error("save resume", "filename", fh.Filename, "err", err)
		h.discard(ctx, uri)
		return presenter.Error(c, http.StatusInternalServerError, "failed to save metadata")
	}
	h.metrics.Uploads.Add(1)
	h.log.Info("resume uploaded", "resume_id", id, "filename", fh.Filename, "chars", len(text))

	ev := events.New(events.TypeResumeUploaded, id)
	ev.Filename = fh.Filename
	if err := h.events.Publish(ctx, ev); err != nil {
		h.metrics.EventPublishErrors.Add(1)
		h.log.Warn("publish event", "type", ev.Type, "resume_id", id, "err", err)
	}

	return presenter.JSON(c, http.StatusOK, presenter.UploadResponse{
		Message:  msgUploaded,
		ResumeID: id,
		Filename: fh.Filename,
	})
}

type processRequest struct {
	JobDescription string `json:"job_description"`
}

// Process parses a stored resume and scores it against a job description.
// @Summary Process a resume
// @Description Parses the stored resume text into a candidate profile and evaluates it against the job description.
// @Tags    resumes
// @Accept  json
// @Produce json
// @Param   resume_id path int true "Resume id"
// @Param   payload body processRequest true "Job description"
// @Success 200 {object} presenter.ProcessResponse
// @Failure 400 {object} presenter.ErrorResponse "Invalid id or missing job description"
// @Failure 404 {object} presenter.ErrorResponse "Resume not found"
// @Failure 500 {object} presenter.ErrorResponse "Parsing failed"
// @Router  /process_resume/{resume_id} [post]
func (h *ResumeHandler) Process(c *fiber.Ctx) error {
	id, err := parseResumeID(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, msgInvalidID)
	}
	var req processRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenter.Error(c, http.StatusBadRequest, msgJDRequired)
		}
	}

	out, err := h.screening.Process(c.Context(), id, req.JobDescription)
	switch {
	case err == nil:
	case errors.Is(err, screening.ErrJobDescriptionRequired):
		return presenter.Error(c, http.StatusBadRequest, msgJDRequired)
	case errors.Is(err, resume.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, msgResumeNotFound)
	case errors.Is(err, resume.ErrParseFailed):
		return presenter.Error(c, http.StatusInternalServerError, msgParseFailed)
	default:
		h.log.Error("process resume", "resume_id", id, "err", err)
		return presenter.Error(c, http.StatusInternalServerError, msgProcessingFailed)
	}

	return presenter.JSON(c, http.StatusOK, presenter.ProcessResponse{
		Message:     msgProcessed,
		ResumeID:    out.ResumeID,
		ParsedData:  out.Profile,
		Evaluation:  out.Evaluation.Narrative,
		Score:       out.Evaluation.Score,
		ScoreStatus: out.Evaluation.Status,
	})
}

func (h *ResumeHandler) discard(ctx context.Context, uri string) {
	if err := h.files.Delete(ctx, uri); err != nil {
		h.log.Warn("delete rejected upload", "uri", uri, "err", err)
	}
}

func parseResumeID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("resume_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid resume id %q", c.Params("resume_id"))
	}
	return id, nil
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
