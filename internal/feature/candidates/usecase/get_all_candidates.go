package usecase

import (
	"context"

	"candidate_admin/internal/feature/candidates/domain/entity"
	"candidate_admin/internal/feature/candidates/dto"
	"candidate_admin/internal/shared/pagination"
)

// GetAllCandidatesHandler handles GetAllCandidatesQuery.
type GetAllCandidatesHandler struct {
	repo CandidateRepository
}

// NewGetAllCandidatesHandler creates a new GetAllCandidatesHandler with the given repository.
func NewGetAllCandidatesHandler(repo CandidateRepository) *GetAllCandidatesHandler {
	return &GetAllCandidatesHandler{repo: repo}
}

// Handle returns every candidate. The result is never nil.
func (h *GetAllCandidatesHandler) Handle(ctx context.Context, q GetAllCandidatesQuery) ([]dto.CandidateDTO, error) {
	candidates, err := h.repo.GetAll(ctx, !q.SkipExperiences)
	if err != nil {
		return nil, err
	}
	return toCandidateDTOs(candidates), nil
}

// GetCandidatesPageHandler handles GetCandidatesPageQuery.
type GetCandidatesPageHandler struct {
	pages CandidatePageReader
}

// NewGetCandidatesPageHandler creates a new GetCandidatesPageHandler with the given page reader.
func NewGetCandidatesPageHandler(pages CandidatePageReader) *GetCandidatesPageHandler {
	return &GetCandidatesPageHandler{pages: pages}
}

// Handle returns one page of candidates mapped to DTOs.
// Invalid page arguments are reported with the pagination package's sentinel errors.
func (h *GetCandidatesPageHandler) Handle(ctx context.Context, q GetCandidatesPageQuery) (*pagination.PaginatedList[dto.CandidateDTO], error) {
	page, err := h.pages.GetPage(ctx, q.PageIndex, q.PageSize, !q.SkipExperiences)
	if err != nil {
		return nil, err
	}
	return pagination.Map(page, func(c entity.Candidate) dto.CandidateDTO {
		return *toCandidateDTO(&c)
	}), nil
}
