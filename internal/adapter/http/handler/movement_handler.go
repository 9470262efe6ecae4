package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ruival/obracap/internal/adapter/http/dto"
	"github.com/ruival/obracap/internal/domain"
	"github.com/ruival/obracap/internal/usecase"
)

// MovementRegistrar defines the write behavior needed by MovementHandler.
type MovementRegistrar interface {
	RecordInitialFunding(ctx context.Context, input usecase.RecordInitialFundingInput) (*domain.Movement, error)
	RecordExpense(ctx context.Context, input usecase.RecordExpenseInput) (*domain.Movement, error)
	RecordManualMovement(ctx context.Context, input usecase.RecordMovementInput) (*domain.Movement, error)
}

// MovementReader defines the read behavior needed by MovementHandler.
type MovementReader interface {
	ListMovements(ctx context.Context, filter domain.Filter) ([]*domain.Movement, error)
	GetMovement(ctx context.Context, id string) (*domain.Movement, error)
	CountMovements(ctx context.Context, filter domain.Filter) (int64, error)
}

// MovementResolver resolves the external record a movement references.
type MovementResolver interface {
	ResolveMovement(ctx context.Context, m *domain.Movement) *domain.Reference
}

// MovementHandler handles movement-related HTTP requests.
type MovementHandler struct {
	registrar MovementRegistrar
	reader    MovementReader
	resolver  MovementResolver
}

// NewMovementHandler creates a new MovementHandler. The resolver is
// optional; without it movement details come back without references.
func NewMovementHandler(registrar MovementRegistrar, reader MovementReader, resolver MovementResolver) *MovementHandler {
	return &MovementHandler{
		registrar: registrar,
		reader:    reader,
		resolver:  resolver,
	}
}

// Record records a manual income or adjustment movement.
func (h *MovementHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid movement", err.Error())
		return
	}

	movement, err := h.registrar.RecordManualMovement(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record movement", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MovementFromDomain(movement))
}

// RecordExpense records an expense draw against an account.
func (h *MovementHandler) RecordExpense(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid expense", err.Error())
		return
	}

	movement, err := h.registrar.RecordExpense(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record expense", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MovementFromDomain(movement))
}

// RecordFunding seeds an account with its initial funding.
func (h *MovementHandler) RecordFunding(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.RecordFundingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(accountID)
	if err != nil {
		writeError(w, mapDomainError(err), "invalid funding", err.Error())
		return
	}

	movement, err := h.registrar.RecordInitialFunding(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record funding", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MovementFromDomain(movement))
}

// List lists movements matching the query filters, newest first.
func (h *MovementHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, mapDomainError(err), "invalid filter", err.Error())
		return
	}

	movements, err := h.reader.ListMovements(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list movements", err.Error())
		return
	}

	count, err := h.reader.CountMovements(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to count movements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementListResponse{
		Movements: dto.MovementsFromDomain(movements),
		Count:     count,
	})
}

// Get retrieves a movement by ID, with its external reference resolved
// when possible.
func (h *MovementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing movement ID", "")
		return
	}

	movement, err := h.reader.GetMovement(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get movement", err.Error())
		return
	}

	resp := dto.MovementDetailResponse{
		MovementResponse: *dto.MovementFromDomain(movement),
	}
	if h.resolver != nil {
		resp.Reference = h.resolver.ResolveMovement(r.Context(), movement)
	}

	writeJSON(w, http.StatusOK, resp)
}
