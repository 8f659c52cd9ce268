// Package adapters はcandidatesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"candidate_admin/internal/feature/candidates/domain/entity"
	"candidate_admin/internal/feature/candidates/usecase"
	"candidate_admin/internal/shared/pagination"
)

// candidateGorm はCandidateStoreインターフェースのGORM実装です。
type candidateGorm struct {
	db *gorm.DB
}

// candidateGormがCandidateStoreを実装していることをコンパイル時に検証します。
var _ usecase.CandidateStore = (*candidateGorm)(nil)

// NewCandidateRepository は指定されたDB接続でcandidateGormの新しいインスタンスを生成します。
func NewCandidateRepository(db *gorm.DB) *candidateGorm {
	return &candidateGorm{db: db}
}

// orderByID は経験をID順（登録順）に並べます。
func orderByID(tx *gorm.DB) *gorm.DB {
	return tx.Order("id ASC")
}

// preloadExperiences returns the scopes that eager-load experiences when requested.
func preloadExperiences(withExperiences bool) []func(*gorm.DB) *gorm.DB {
	if !withExperiences {
		return nil
	}
	return []func(*gorm.DB) *gorm.DB{
		func(tx *gorm.DB) *gorm.DB { return tx.Preload("Experiences", orderByID) },
	}
}

// Add は候補者と経験を1回の呼び出しで保存し、採番されたIDを返します。
// 渡されたエンティティは変更しません。
func (r *candidateGorm) Add(ctx context.Context, c *entity.Candidate) (uint, error) {
	m := CandidateModelFromEntity(c)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return 0, err
	}
	return m.ID, nil
}

// GetAll はID順にすべての候補者を返します。
func (r *candidateGorm) GetAll(ctx context.Context, withExperiences bool) ([]entity.Candidate, error) {
	var models []CandidateModel
	if err := r.db.WithContext(ctx).
		Scopes(preloadExperiences(withExperiences)...).
		Order("id ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Candidate, 0, len(models))
	for i := range models {
		out = append(out, *models[i].ToEntity())
	}
	return out, nil
}

// GetByID はIDで候補者を取得します。存在しない場合はnil, nilを返します。
func (r *candidateGorm) GetByID(ctx context.Context, id uint, withExperiences bool) (*entity.Candidate, error) {
	var m CandidateModel
	if err := r.db.WithContext(ctx).
		Scopes(preloadExperiences(withExperiences)...).
		Where("id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// Update はスカラー項目を書き戻し、経験を丸ごと置き換えます。
// 両方を1つのトランザクションで実行します。
func (r *candidateGorm) Update(ctx context.Context, c *entity.Candidate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&CandidateModel{}).
			Where("id = ?", c.ID).
			Updates(map[string]any{
				"name":        c.Name,
				"surname":     c.Surname,
				"birthdate":   c.Birthdate,
				"email":       c.Email,
				"modify_date": c.ModifyDate,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return usecase.ErrCandidateNotFound
		}

		if err := tx.Where("candidate_id = ?", c.ID).Delete(&ExperienceModel{}).Error; err != nil {
			return err
		}

		exps := experienceModelsFromEntity(c.ID, c.Experiences)
		if len(exps) == 0 {
			return nil
		}
		return tx.Create(&exps).Error
	})
}

// Delete は候補者を削除します。経験は外部キーのON DELETE CASCADEで削除されます。
func (r *candidateGorm) Delete(ctx context.Context, c *entity.Candidate) error {
	result := r.db.WithContext(ctx).Delete(&CandidateModel{}, c.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrCandidateNotFound
	}
	return nil
}

// GetPage は件数取得とOFFSET/LIMIT付きの取得をストアに発行し、1ページ分の候補者を返します。
func (r *candidateGorm) GetPage(ctx context.Context, pageIndex, pageSize int, withExperiences bool) (*pagination.PaginatedList[entity.Candidate], error) {
	query := r.db.WithContext(ctx).Model(&CandidateModel{}).Order("id ASC")

	page, err := pagination.CreateFromQuery[CandidateModel](ctx, query, pageIndex, pageSize, preloadExperiences(withExperiences)...)
	if err != nil {
		return nil, err
	}
	return pagination.Map(page, func(m CandidateModel) entity.Candidate {
		return *m.ToEntity()
	}), nil
}
