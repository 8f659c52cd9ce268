package usecase

import (
	"context"
	"errors"
	"log/slog"

	"candidate_admin/internal/feature/candidates/domain/entity"
	"candidate_admin/internal/feature/candidates/dto"
)

// UpdateCandidateHandler handles UpdateCandidateCommand.
type UpdateCandidateHandler struct {
	repo CandidateRepository
}

// NewUpdateCandidateHandler creates a new UpdateCandidateHandler with the given repository.
func NewUpdateCandidateHandler(repo CandidateRepository) *UpdateCandidateHandler {
	return &UpdateCandidateHandler{repo: repo}
}

// Handle は既存の候補者を更新し、更新後の状態をDTOで返します。
// 対象が存在しない場合はnilを返し、更新を要求しません。
//
// 経験は差分マージせず丸ごと置き換えます（既存のIDは失われます）。
// 経験の登録日時・更新日時は新規登録時と異なり、呼び出し側の値をそのまま使います。
func (h *UpdateCandidateHandler) Handle(ctx context.Context, cmd UpdateCandidateCommand) (*dto.CandidateDTO, error) {
	if cmd.Candidate == nil {
		return nil, nil
	}
	in := cmd.Candidate

	candidate, err := h.repo.GetByID(ctx, in.ID, true)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, nil
	}

	candidate.Name = in.Name
	candidate.Surname = in.Surname
	candidate.Birthdate = in.Birthdate
	candidate.Email = in.Email
	modified := nowUTC()
	candidate.ModifyDate = &modified

	exps := make([]entity.CandidateExperience, 0, len(in.Experiences))
	for _, e := range in.Experiences {
		exp := experienceFromDTO(e)
		exp.InsertDate = e.InsertDate
		exp.ModifyDate = e.ModifyDate
		exps = append(exps, exp)
	}
	candidate.Experiences = exps

	if err := h.repo.Update(ctx, candidate); err != nil {
		// 読み込み後に削除された場合も「存在しない」として扱う
		if errors.Is(err, ErrCandidateNotFound) {
			return nil, nil
		}
		return nil, err
	}
	slog.Info("candidate updated", "id", candidate.ID, "experiences", len(exps))
	return toCandidateDTO(candidate), nil
}
