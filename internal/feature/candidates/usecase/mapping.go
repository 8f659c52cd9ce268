package usecase

import (
	"time"

	"candidate_admin/internal/feature/candidates/domain/entity"
	"candidate_admin/internal/feature/candidates/dto"
)

// nowUTC は登録・更新日時の打刻に使う現在時刻（UTC）を返します。
func nowUTC() time.Time {
	return time.Now().UTC()
}

// toCandidateDTO はエンティティをフィールドごとにDTOへ写します。
func toCandidateDTO(c *entity.Candidate) *dto.CandidateDTO {
	exps := make([]dto.CandidateExperienceDTO, 0, len(c.Experiences))
	for _, e := range c.Experiences {
		exps = append(exps, dto.CandidateExperienceDTO{
			Company:     e.Company,
			Job:         e.Job,
			Description: e.Description,
			Salary:      e.Salary,
			BeginDate:   e.BeginDate,
			EndDate:     e.EndDate,
			InsertDate:  e.InsertDate,
			ModifyDate:  e.ModifyDate,
		})
	}
	return &dto.CandidateDTO{
		ID:          c.ID,
		Name:        c.Name,
		Surname:     c.Surname,
		Birthdate:   c.Birthdate,
		Email:       c.Email,
		InsertDate:  c.InsertDate,
		ModifyDate:  c.ModifyDate,
		Experiences: exps,
	}
}

// toCandidateDTOs maps a list of entities, never returning nil.
func toCandidateDTOs(cs []entity.Candidate) []dto.CandidateDTO {
	out := make([]dto.CandidateDTO, 0, len(cs))
	for i := range cs {
		out = append(out, *toCandidateDTO(&cs[i]))
	}
	return out
}

// experienceFromDTO copies the business fields of an experience DTO.
// Timestamps are left to the caller.
func experienceFromDTO(e dto.CandidateExperienceDTO) entity.CandidateExperience {
	return entity.CandidateExperience{
		Company:     e.Company,
		Job:         e.Job,
		Description: e.Description,
		Salary:      e.Salary,
		BeginDate:   e.BeginDate,
		EndDate:     e.EndDate,
	}
}
