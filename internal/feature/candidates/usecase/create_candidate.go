package usecase

import (
	"context"
	"log/slog"

	"candidate_admin/internal/feature/candidates/domain/entity"
)

// CreateCandidateHandler handles CreateCandidateCommand.
type CreateCandidateHandler struct {
	repo CandidateRepository
}

// NewCreateCandidateHandler creates a new CreateCandidateHandler with the given repository.
func NewCreateCandidateHandler(repo CandidateRepository) *CreateCandidateHandler {
	return &CreateCandidateHandler{repo: repo}
}

// Handle は新しい候補者を登録し、ストアが採番したIDを返します。
// コマンドに候補者が含まれない場合はストアに触れずnilを返します。
// 登録日時は呼び出し側の値を無視して現在時刻（UTC）で打刻し、更新日時はnilにします。
func (h *CreateCandidateHandler) Handle(ctx context.Context, cmd CreateCandidateCommand) (*uint, error) {
	if cmd.Candidate == nil {
		return nil, nil
	}
	in := cmd.Candidate

	exps := make([]entity.CandidateExperience, 0, len(in.Experiences))
	for _, e := range in.Experiences {
		exp := experienceFromDTO(e)
		exp.InsertDate = nowUTC()
		exp.ModifyDate = nil
		exps = append(exps, exp)
	}

	candidate := &entity.Candidate{
		Name:        in.Name,
		Surname:     in.Surname,
		Birthdate:   in.Birthdate,
		Email:       in.Email,
		InsertDate:  nowUTC(),
		ModifyDate:  nil,
		Experiences: exps,
	}

	id, err := h.repo.Add(ctx, candidate)
	if err != nil {
		return nil, err
	}
	slog.Info("candidate created", "id", id, "experiences", len(exps))
	return &id, nil
}
