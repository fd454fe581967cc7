package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Vijaybattula26/gemini-ats/api/http/presenter"
	"github.com/Vijaybattula26/gemini-ats/pkg/resume"
)

const msgCandidateNotFound = "Candidate not found."

// CandidatesHandler serves the ranked candidate list and per-candidate details.
type CandidatesHandler struct {
	repo resume.Repository
	log  *slog.Logger
}

func NewCandidatesHandler(repo resume.Repository, logger *slog.Logger) *CandidatesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CandidatesHandler{repo: repo, log: logger}
}

// List returns every resume ordered by score, best first.
// @Summary Ranked candidates
// @Description Candidates ordered by score descending; unscored resumes come last. Without limit every row is returned.
// @Tags    candidates
// @Produce json
// @Param   limit  query int false "Page size (1..200)"
// @Param   offset query int false "Rows to skip"
// @Success 200 {array} presenter.CandidateSummary
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /candidates [get]
func (h *CandidatesHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 0)
	records, err := h.repo.List(c.Context(), limit, offset)
	if err != nil {
		h.log.Error("list candidates", "err", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to list candidates")
	}
	out := make([]presenter.CandidateSummary, 0, len(records))
	for _, r := range records {
		out = append(out, presenter.NewCandidateSummary(r))
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Details returns the parsed profile and evaluation of one resume.
// @Summary Candidate details
// @Tags    candidates
// @Produce json
// @Param   resume_id path int true "Resume id"
// @Success 200 {object} presenter.CandidateDetails
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidate_details/{resume_id} [get]
func (h *CandidatesHandler) Details(c *fiber.Ctx) error {
	id, err := parseResumeID(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, msgInvalidID)
	}
	rec, err := h.repo.GetByID(c.Context(), id)
	if errors.Is(err, resume.ErrNotFound) {
		return presenter.Error(c, http.StatusNotFound, msgCandidateNotFound)
	}
	if err != nil {
		h.log.Error("get candidate", "resume_id", id, "err", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to load candidate")
	}
	return presenter.JSON(c, http.StatusOK, presenter.NewCandidateDetails(rec))
}
