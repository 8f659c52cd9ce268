package di

import (
	"time"

	"gorm.io/gorm"

	authadapters "candidate_admin/internal/feature/auth/adapters"
	"candidate_admin/internal/feature/auth/transport/handler"
	"candidate_admin/internal/feature/auth/usecase"
	jwtmw "candidate_admin/internal/platform/jwt"
)

// NewAuthHandler wires the administrator repository, bcrypt usecase and JWT generator.
func NewAuthHandler(db *gorm.DB, jwtSecret string, jwtExpiration time.Duration) *handler.AuthHandler {
	uc := usecase.NewAuthUsecase(authadapters.NewAdminRepository(db), jwtmw.NewGenerator(jwtSecret, jwtExpiration))
	return handler.NewAuthHandler(uc)
}
