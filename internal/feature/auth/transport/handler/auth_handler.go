// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"candidate_admin/internal/feature/auth/transport/http/dto"
	"candidate_admin/internal/feature/auth/usecase"
	"candidate_admin/internal/platform/validation"
	"candidate_admin/internal/shared/apperror"
)

// AuthUsecase は認証操作のユースケースを定義します。
// インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は指定されたメールアドレスとパスワードで管理者を登録します。
	Signup(ctx context.Context, email, password string) error
	// Login は管理者を認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup は管理者登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - 成功時は201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		_ = c.Error(apperror.Validation(err, validation.FormatValidationErrors(err)))
		return
	}
	if err := h.auth.Signup(c.Request.Context(), req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			_ = c.Error(apperror.Conflict("signup failed", err))
		case errors.Is(err, usecase.ErrWeakPassword):
			_ = c.Error(apperror.New(http.StatusBadRequest, "password is too short", err))
		default:
			_ = c.Error(err)
		}
		return
	}
	slog.Info("admin signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.MessageRes{Message: "ok"})
}

// Login は管理者ログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（理由は公開しない）
// - 認証成功時はJWTトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		_ = c.Error(apperror.Validation(err, validation.FormatValidationErrors(err)))
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, usecase.ErrInvalidCredentials) {
			_ = c.Error(err)
			return
		}
		slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
		_ = c.Error(apperror.Unauthorized("invalid email or password"))
		return
	}
	slog.Info("admin login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenRes{Token: token})
}
