package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ruival/obracap/internal/adapter/http/dto"
	"github.com/ruival/obracap/internal/domain"
)

// SummaryService defines the behavior needed by SummaryHandler.
type SummaryService interface {
	AccountSummary(ctx context.Context, accountID string) (domain.Summary, error)
	FilteredSummary(ctx context.Context, filter domain.Filter) (domain.Summary, error)
	CapitalByProject(ctx context.Context, filter domain.Filter) ([]domain.ProjectSummary, error)
}

// SummaryHandler handles balance and capital report requests.
type SummaryHandler struct {
	summaries SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaries SummaryService) *SummaryHandler {
	return &SummaryHandler{summaries: summaries}
}

// AccountSummary returns the folded totals and balance for one account.
func (h *SummaryHandler) AccountSummary(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	summary, err := h.summaries.AccountSummary(r.Context(), accountID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to summarize account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountSummaryResponse{
		AccountID: accountID,
		Summary:   summary,
	})
}

// FilteredSummary folds whatever movement subset the query filters select.
func (h *SummaryHandler) FilteredSummary(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, mapDomainError(err), "invalid filter", err.Error())
		return
	}

	summary, err := h.summaries.FilteredSummary(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to summarize", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// CapitalByProject returns per-project capital totals.
func (h *SummaryHandler) CapitalByProject(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, mapDomainError(err), "invalid filter", err.Error())
		return
	}

	projects, err := h.summaries.CapitalByProject(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute project capital", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ProjectCapitalResponse{Projects: projects})
}
