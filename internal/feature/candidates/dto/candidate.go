// Package dto defines the transfer objects exchanged between the candidate
// usecases and the presentation layer.
//
// The binding tags carry the field constraints; they are enforced by gin's
// validator before a command reaches the usecase layer.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CandidateDTO mirrors entity.Candidate field for field.
type CandidateDTO struct {
	ID          uint                     `json:"id"`
	Name        string                   `json:"name" binding:"required,max=50"`
	Surname     string                   `json:"surname" binding:"required,max=150"`
	Birthdate   time.Time                `json:"birthdate" binding:"required"`
	Email       string                   `json:"email" binding:"required,email,max=250"`
	InsertDate  time.Time                `json:"insert_date"`
	ModifyDate  *time.Time               `json:"modify_date,omitempty"`
	Experiences []CandidateExperienceDTO `json:"experiences" binding:"dive"`
}

// CandidateExperienceDTO mirrors entity.CandidateExperience without the
// identifiers, which never cross the presentation boundary.
type CandidateExperienceDTO struct {
	Company     string          `json:"company" binding:"required,max=100"`
	Job         string          `json:"job" binding:"required,max=100"`
	Description string          `json:"description" binding:"max=4000"`
	Salary      decimal.Decimal `json:"salary" binding:"money"`
	BeginDate   time.Time       `json:"begin_date" binding:"required"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	InsertDate  time.Time       `json:"insert_date"`
	ModifyDate  *time.Time      `json:"modify_date,omitempty"`
}
