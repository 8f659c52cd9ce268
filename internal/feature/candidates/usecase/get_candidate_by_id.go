package usecase

import (
	"context"

	"candidate_admin/internal/feature/candidates/dto"
)

// GetCandidateByIDHandler handles GetCandidateByIDQuery.
type GetCandidateByIDHandler struct {
	repo CandidateRepository
}

// NewGetCandidateByIDHandler creates a new GetCandidateByIDHandler with the given repository.
func NewGetCandidateByIDHandler(repo CandidateRepository) *GetCandidateByIDHandler {
	return &GetCandidateByIDHandler{repo: repo}
}

// Handle returns the candidate with its experiences, or nil when it does not exist.
func (h *GetCandidateByIDHandler) Handle(ctx context.Context, q GetCandidateByIDQuery) (*dto.CandidateDTO, error) {
	candidate, err := h.repo.GetByID(ctx, q.ID, true)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, nil
	}
	return toCandidateDTO(candidate), nil
}
