package usecase

import (
	"context"

	"candidate_admin/internal/feature/candidates/domain/entity"
	"candidate_admin/internal/shared/pagination"
)

// CandidateRepository abstracts the persistence layer for candidates and their experiences.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CandidateRepository interface {
	// Add persists a new candidate with its experiences and returns the generated ID.
	Add(ctx context.Context, candidate *entity.Candidate) (uint, error)

	// GetAll returns every candidate. Experiences are loaded only when withExperiences is true.
	GetAll(ctx context.Context, withExperiences bool) ([]entity.Candidate, error)

	// GetByID returns the candidate with the given ID, or nil when it does not exist.
	GetByID(ctx context.Context, id uint, withExperiences bool) (*entity.Candidate, error)

	// Update writes the scalar fields back and replaces the stored experiences
	// with the ones currently held by the candidate.
	Update(ctx context.Context, candidate *entity.Candidate) error

	// Delete removes the candidate. Its experiences are removed by the store's cascade rule.
	Delete(ctx context.Context, candidate *entity.Candidate) error
}

// CandidatePageReader reads one page of candidates ordered by ID.
type CandidatePageReader interface {
	GetPage(ctx context.Context, pageIndex, pageSize int, withExperiences bool) (*pagination.PaginatedList[entity.Candidate], error)
}
