package usecase

import "candidate_admin/internal/feature/candidates/dto"

// CreateCandidateCommand carries the candidate to create. Candidate may be nil.
type CreateCandidateCommand struct {
	Candidate *dto.CandidateDTO
}

// UpdateCandidateCommand carries the candidate to update; Candidate.ID selects the target.
type UpdateCandidateCommand struct {
	Candidate *dto.CandidateDTO
}

// DeleteCandidateCommand selects the candidate to delete.
type DeleteCandidateCommand struct {
	ID uint
}

// GetCandidateByIDQuery selects a single candidate.
type GetCandidateByIDQuery struct {
	ID uint
}

// GetAllCandidatesQuery lists every candidate.
// SkipExperiences lets list views opt out of loading the experiences.
type GetAllCandidatesQuery struct {
	SkipExperiences bool
}

// GetCandidatesPageQuery lists one page of candidates.
type GetCandidatesPageQuery struct {
	PageIndex       int
	PageSize        int
	SkipExperiences bool
}
