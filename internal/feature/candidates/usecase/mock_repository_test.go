package usecase_test

import (
	"context"

	"candidate_admin/internal/feature/candidates/domain/entity"
	"candidate_admin/internal/shared/pagination"
)

// mockCandidateRepository はCandidateStoreインターフェースのモック実装です。
// 各メソッドの呼び出し回数も記録します。
type mockCandidateRepository struct {
	AddFunc     func(ctx context.Context, c *entity.Candidate) (uint, error)
	GetAllFunc  func(ctx context.Context, withExperiences bool) ([]entity.Candidate, error)
	GetByIDFunc func(ctx context.Context, id uint, withExperiences bool) (*entity.Candidate, error)
	UpdateFunc  func(ctx context.Context, c *entity.Candidate) error
	DeleteFunc  func(ctx context.Context, c *entity.Candidate) error
	GetPageFunc func(ctx context.Context, pageIndex, pageSize int, withExperiences bool) (*pagination.PaginatedList[entity.Candidate], error)

	addCalls    int
	updateCalls int
	deleteCalls int
}

// Add はモックのAdd関数を呼び出します。
func (m *mockCandidateRepository) Add(ctx context.Context, c *entity.Candidate) (uint, error) {
	m.addCalls++
	if m.AddFunc != nil {
		return m.AddFunc(ctx, c)
	}
	return 1, nil
}

// GetAll はモックのGetAll関数を呼び出します。
func (m *mockCandidateRepository) GetAll(ctx context.Context, withExperiences bool) ([]entity.Candidate, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx, withExperiences)
	}
	return nil, nil
}

// GetByID はモックのGetByID関数を呼び出します。
func (m *mockCandidateRepository) GetByID(ctx context.Context, id uint, withExperiences bool) (*entity.Candidate, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, withExperiences)
	}
	return nil, nil
}

// Update はモックのUpdate関数を呼び出します。
func (m *mockCandidateRepository) Update(ctx context.Context, c *entity.Candidate) error {
	m.updateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

// Delete はモックのDelete関数を呼び出します。
func (m *mockCandidateRepository) Delete(ctx context.Context, c *entity.Candidate) error {
	m.deleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, c)
	}
	return nil
}

// GetPage はモックのGetPage関数を呼び出します。
func (m *mockCandidateRepository) GetPage(ctx context.Context, pageIndex, pageSize int, withExperiences bool) (*pagination.PaginatedList[entity.Candidate], error) {
	if m.GetPageFunc != nil {
		return m.GetPageFunc(ctx, pageIndex, pageSize, withExperiences)
	}
	return pagination.New([]entity.Candidate{}, 0, pageIndex, pageSize)
}
