package adapters

import (
	"time"

	"github.com/shopspring/decimal"

	"candidate_admin/internal/feature/candidates/domain/entity"
)

// CandidateModel is the GORM model for the candidates table.
type CandidateModel struct {
	ID          uint              `gorm:"primaryKey"`
	Name        string            `gorm:"size:50;not null"`
	Surname     string            `gorm:"size:150;not null"`
	Birthdate   time.Time         `gorm:"not null"`
	Email       string            `gorm:"size:250;not null"`
	InsertDate  time.Time         `gorm:"not null"`
	ModifyDate  *time.Time        `gorm:"column:modify_date"`
	Experiences []ExperienceModel `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM.
func (CandidateModel) TableName() string {
	return "candidates"
}

// ExperienceModel is the GORM model for the candidate_experiences table.
type ExperienceModel struct {
	ID          uint            `gorm:"primaryKey"`
	CandidateID uint            `gorm:"index;not null"`
	Company     string          `gorm:"size:100;not null"`
	Job         string          `gorm:"size:100;not null"`
	Description string          `gorm:"size:4000;not null"`
	Salary      decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	BeginDate   time.Time       `gorm:"not null"`
	EndDate     *time.Time      `gorm:"column:end_date"`
	InsertDate  time.Time       `gorm:"not null"`
	ModifyDate  *time.Time      `gorm:"column:modify_date"`
}

// TableName returns the table name for GORM.
func (ExperienceModel) TableName() string {
	return "candidate_experiences"
}

// Models lists the models of this feature for AutoMigrate.
func Models() []any {
	return []any{&CandidateModel{}, &ExperienceModel{}}
}

// ToEntity converts the GORM model to a domain entity.
func (m *CandidateModel) ToEntity() *entity.Candidate {
	exps := make([]entity.CandidateExperience, 0, len(m.Experiences))
	for i := range m.Experiences {
		exps = append(exps, m.Experiences[i].toEntity())
	}
	return &entity.Candidate{
		ID:          m.ID,
		Name:        m.Name,
		Surname:     m.Surname,
		Birthdate:   m.Birthdate,
		Email:       m.Email,
		InsertDate:  m.InsertDate,
		ModifyDate:  m.ModifyDate,
		Experiences: exps,
	}
}

func (m *ExperienceModel) toEntity() entity.CandidateExperience {
	return entity.CandidateExperience{
		ID:          m.ID,
		CandidateID: m.CandidateID,
		Company:     m.Company,
		Job:         m.Job,
		Description: m.Description,
		Salary:      m.Salary,
		BeginDate:   m.BeginDate,
		EndDate:     m.EndDate,
		InsertDate:  m.InsertDate,
		ModifyDate:  m.ModifyDate,
	}
}

// CandidateModelFromEntity converts a domain entity to a GORM model.
// Experience IDs are dropped: experiences are always written as new rows.
func CandidateModelFromEntity(c *entity.Candidate) *CandidateModel {
	return &CandidateModel{
		ID:          c.ID,
		Name:        c.Name,
		Surname:     c.Surname,
		Birthdate:   c.Birthdate,
		Email:       c.Email,
		InsertDate:  c.InsertDate,
		ModifyDate:  c.ModifyDate,
		Experiences: experienceModelsFromEntity(c.ID, c.Experiences),
	}
}

func experienceModelsFromEntity(candidateID uint, exps []entity.CandidateExperience) []ExperienceModel {
	out := make([]ExperienceModel, 0, len(exps))
	for _, e := range exps {
		out = append(out, ExperienceModel{
			CandidateID: candidateID,
			Company:     e.Company,
			Job:         e.Job,
			Description: e.Description,
			Salary:      e.Salary.Round(2),
			BeginDate:   e.BeginDate,
			EndDate:     e.EndDate,
			InsertDate:  e.InsertDate,
			ModifyDate:  e.ModifyDate,
		})
	}
	return out
}
