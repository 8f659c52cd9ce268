package usecase_test

import (
	"time"

	"github.com/shopspring/decimal"

	"candidate_admin/internal/feature/candidates/domain/entity"
	"candidate_admin/internal/feature/candidates/dto"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

// lauraDTO は登録・更新テストで使う候補者DTOを返します。
func lauraDTO() *dto.CandidateDTO {
	return &dto.CandidateDTO{
		Name:      "Laura",
		Surname:   "García López",
		Birthdate: date(1990, time.May, 17),
		Email:     "laura@example.com",
		// 呼び出し側の日時は登録時に無視される
		InsertDate: date(2001, time.January, 1),
		ModifyDate: ptr(date(2001, time.January, 2)),
		Experiences: []dto.CandidateExperienceDTO{
			{
				Company:     "Tech Co",
				Job:         "Backend Engineer",
				Description: "Payments platform",
				Salary:      decimal.RequireFromString("4200.50"),
				BeginDate:   date(2018, time.March, 1),
				EndDate:     ptr(date(2022, time.June, 30)),
				InsertDate:  date(2001, time.January, 1),
				ModifyDate:  ptr(date(2001, time.January, 2)),
			},
		},
	}
}

// storedLaura はストアに保存済みの候補者エンティティを返します。
func storedLaura(id uint) *entity.Candidate {
	return &entity.Candidate{
		ID:         id,
		Name:       "Laura",
		Surname:    "García",
		Birthdate:  date(1990, time.May, 17),
		Email:      "laura@old.example.com",
		InsertDate: date(2024, time.February, 10),
		Experiences: []entity.CandidateExperience{
			{
				ID:          11,
				CandidateID: id,
				Company:     "Old Corp",
				Job:         "Intern",
				Description: "",
				Salary:      decimal.RequireFromString("900"),
				BeginDate:   date(2015, time.September, 1),
				InsertDate:  date(2024, time.February, 10),
			},
		},
	}
}
