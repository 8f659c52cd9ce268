// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"candidate_admin/internal/feature/auth/domain/entity"
	"candidate_admin/internal/feature/auth/usecase"
)

// adminGorm はAdminRepositoryインターフェースのGORM実装です。
type adminGorm struct {
	db *gorm.DB
}

// adminGormがAdminRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.AdminRepository = (*adminGorm)(nil)

// NewAdminRepository は指定されたgorm.DB接続でadminGormの新しいインスタンスを生成します。
// 重複検出のため、接続はTranslateErrorを有効にして開く必要があります。
func NewAdminRepository(db *gorm.DB) *adminGorm {
	return &adminGorm{db: db}
}

// Create は管理者をデータベースに追加します。
// 同じメールアドレスが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *adminGorm) Create(ctx context.Context, a *entity.Admin) error {
	if a == nil {
		return errors.New("admin is nil")
	}
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスで管理者を取得します。
// 存在しない場合、usecase.ErrAdminNotFoundを返します。
func (r *adminGorm) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAdminNotFound
		}
		return nil, err
	}
	return &a, nil
}
