// Package entity defines the domain models for the candidates feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candidate represents a person tracked by the administration tool together
// with the history of their employment experiences.
type Candidate struct {
	ID          uint
	Name        string     // 最大50文字
	Surname     string     // 最大150文字
	Birthdate   time.Time
	Email       string     // 最大250文字
	InsertDate  time.Time  // 登録日時（UTC）
	ModifyDate  *time.Time // 最終更新日時（未更新の場合はnil）
	Experiences []CandidateExperience
}

// CandidateExperience is one employment stint belonging to exactly one Candidate.
type CandidateExperience struct {
	ID          uint
	CandidateID uint
	Company     string
	Job         string
	Description string
	Salary      decimal.Decimal // decimal(8,2)
	BeginDate   time.Time
	EndDate     *time.Time
	InsertDate  time.Time
	ModifyDate  *time.Time
}

// ClearExperiences drops every experience from the in-memory aggregate.
// The store removes the persisted rows on its own when the candidate is deleted.
func (c *Candidate) ClearExperiences() {
	c.Experiences = []CandidateExperience{}
}
