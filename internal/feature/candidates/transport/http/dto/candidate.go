// Package dto defines the HTTP request and response shapes of the candidates feature.
package dto

import (
	candidatedto "candidate_admin/internal/feature/candidates/dto"
)

// ListCandidatesQuery is bound from the query string of GET /candidates.
type ListCandidatesQuery struct {
	Page        int  `form:"page,default=1" binding:"min=1"`
	PageSize    int  `form:"page_size,default=5" binding:"min=1,max=100"`
	Experiences bool `form:"experiences,default=true"`
}

// AllCandidatesQuery is bound from the query string of GET /candidates/all.
type AllCandidatesQuery struct {
	Experiences bool `form:"experiences,default=true"`
}

// CandidatePageRes is one page of candidates.
type CandidatePageRes struct {
	Items           []candidatedto.CandidateDTO `json:"items"`
	PageIndex       int                         `json:"page_index"`
	TotalPages      int                         `json:"total_pages"`
	HasPreviousPage bool                        `json:"has_previous_page"`
	HasNextPage     bool                        `json:"has_next_page"`
}

// CreatedRes is returned by POST /candidates.
type CreatedRes struct {
	ID uint `json:"id"`
}
