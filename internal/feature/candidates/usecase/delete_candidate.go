package usecase

import (
	"context"
	"errors"
	"log/slog"
)

// DeleteCandidateHandler handles DeleteCandidateCommand.
type DeleteCandidateHandler struct {
	repo CandidateRepository
}

// NewDeleteCandidateHandler creates a new DeleteCandidateHandler with the given repository.
func NewDeleteCandidateHandler(repo CandidateRepository) *DeleteCandidateHandler {
	return &DeleteCandidateHandler{repo: repo}
}

// Handle は候補者を削除します。存在しない場合はfalseを返し、削除を要求しません。
func (h *DeleteCandidateHandler) Handle(ctx context.Context, cmd DeleteCandidateCommand) (bool, error) {
	candidate, err := h.repo.GetByID(ctx, cmd.ID, true)
	if err != nil {
		return false, err
	}
	if candidate == nil {
		return false, nil
	}

	// 経験はストアのカスケード削除で消えるが、メモリ上の集約も先に空にしておく
	candidate.ClearExperiences()

	if err := h.repo.Delete(ctx, candidate); err != nil {
		if errors.Is(err, ErrCandidateNotFound) {
			return false, nil
		}
		return false, err
	}
	slog.Info("candidate deleted", "id", cmd.ID)
	return true, nil
}
