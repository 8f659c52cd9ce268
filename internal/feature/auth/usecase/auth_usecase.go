package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"candidate_admin/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// dummyHash はユーザーが存在しない場合にもbcrypt比較を行うためのハッシュです。
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// AdminRepository は管理者エンティティの永続化層を抽象化します。
// インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type AdminRepository interface {
	// Create は新しい管理者を保存します。メールアドレスが重複する場合はErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, admin *entity.Admin) error
	// FindByEmail はメールアドレスで管理者を取得します。存在しない場合はErrAdminNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
}

// TokenGenerator はJWTトークン生成のインターフェースを定義します。
type TokenGenerator interface {
	// GenerateToken は指定された管理者の署名済みJWTトークンを生成します。
	GenerateToken(adminID uint, email string) (string, error)
}

// authUsecase は管理者認証のビジネスロジックを実装します。
type authUsecase struct {
	admins AdminRepository
	tokens TokenGenerator
	cost   int
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(admins AdminRepository, tokens TokenGenerator) *authUsecase {
	return &authUsecase{
		admins: admins,
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters long", ErrWeakPassword, minPasswordLength)
	}
	return nil
}

// Signup はハッシュ化されたパスワードで管理者を登録します。
func (u *authUsecase) Signup(ctx context.Context, email, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := u.admins.Create(ctx, &entity.Admin{Email: email, PasswordHash: string(hashed)}); err != nil {
		return err
	}
	slog.Info("admin registered", "email", email)
	return nil
}

// Login は管理者を認証し、成功時にJWTトークンを返します。
// 管理者が存在しない場合でもbcrypt比較を実行し、応答時間を揃えます。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := u.admins.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrAdminNotFound) {
		return "", err
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = admin.PasswordHash
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
