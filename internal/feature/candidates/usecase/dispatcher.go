package usecase

import (
	"context"

	"candidate_admin/internal/feature/candidates/dto"
	"candidate_admin/internal/shared/pagination"
)

// CandidateStore is what the dispatcher needs from persistence.
type CandidateStore interface {
	CandidateRepository
	CandidatePageReader
}

// Dispatcher routes every candidate command and query to its single handler.
type Dispatcher struct {
	create  *CreateCandidateHandler
	update  *UpdateCandidateHandler
	delete  *DeleteCandidateHandler
	getByID *GetCandidateByIDHandler
	getAll  *GetAllCandidatesHandler
	getPage *GetCandidatesPageHandler
}

// NewDispatcher wires all candidate handlers onto the given store.
func NewDispatcher(store CandidateStore) *Dispatcher {
	return &Dispatcher{
		create:  NewCreateCandidateHandler(store),
		update:  NewUpdateCandidateHandler(store),
		delete:  NewDeleteCandidateHandler(store),
		getByID: NewGetCandidateByIDHandler(store),
		getAll:  NewGetAllCandidatesHandler(store),
		getPage: NewGetCandidatesPageHandler(store),
	}
}

// CreateCandidate dispatches CreateCandidateCommand.
func (d *Dispatcher) CreateCandidate(ctx context.Context, cmd CreateCandidateCommand) (*uint, error) {
	return d.create.Handle(ctx, cmd)
}

// UpdateCandidate dispatches UpdateCandidateCommand.
func (d *Dispatcher) UpdateCandidate(ctx context.Context, cmd UpdateCandidateCommand) (*dto.CandidateDTO, error) {
	return d.update.Handle(ctx, cmd)
}

// DeleteCandidate dispatches DeleteCandidateCommand.
func (d *Dispatcher) DeleteCandidate(ctx context.Context, cmd DeleteCandidateCommand) (bool, error) {
	return d.delete.Handle(ctx, cmd)
}

// GetCandidateByID dispatches GetCandidateByIDQuery.
func (d *Dispatcher) GetCandidateByID(ctx context.Context, q GetCandidateByIDQuery) (*dto.CandidateDTO, error) {
	return d.getByID.Handle(ctx, q)
}

// GetAllCandidates dispatches GetAllCandidatesQuery.
func (d *Dispatcher) GetAllCandidates(ctx context.Context, q GetAllCandidatesQuery) ([]dto.CandidateDTO, error) {
	return d.getAll.Handle(ctx, q)
}

// GetCandidatesPage dispatches GetCandidatesPageQuery.
func (d *Dispatcher) GetCandidatesPage(ctx context.Context, q GetCandidatesPageQuery) (*pagination.PaginatedList[dto.CandidateDTO], error) {
	return d.getPage.Handle(ctx, q)
}
