// Package handler はcandidatesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"candidate_admin/internal/feature/candidates/dto"
	httpdto "candidate_admin/internal/feature/candidates/transport/http/dto"
	"candidate_admin/internal/feature/candidates/usecase"
	"candidate_admin/internal/platform/validation"
	"candidate_admin/internal/shared/apperror"
	"candidate_admin/internal/shared/pagination"
)

// CandidateService は候補者のコマンドとクエリを受け付けます。
// インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type CandidateService interface {
	CreateCandidate(ctx context.Context, cmd usecase.CreateCandidateCommand) (*uint, error)
	UpdateCandidate(ctx context.Context, cmd usecase.UpdateCandidateCommand) (*dto.CandidateDTO, error)
	DeleteCandidate(ctx context.Context, cmd usecase.DeleteCandidateCommand) (bool, error)
	GetCandidateByID(ctx context.Context, q usecase.GetCandidateByIDQuery) (*dto.CandidateDTO, error)
	GetAllCandidates(ctx context.Context, q usecase.GetAllCandidatesQuery) ([]dto.CandidateDTO, error)
	GetCandidatesPage(ctx context.Context, q usecase.GetCandidatesPageQuery) (*pagination.PaginatedList[dto.CandidateDTO], error)
}

// CandidateHandler は候補者のCRUDエンドポイントを処理します。
// エラーはc.Errorで登録し、middleware.ErrorHandlerがレスポンスに変換します。
type CandidateHandler struct {
	svc CandidateService
	now func() time.Time
}

// NewCandidateHandler はCandidateHandlerの新しいインスタンスを生成します。
func NewCandidateHandler(svc CandidateService) *CandidateHandler {
	return &CandidateHandler{
		svc: svc,
		now: func() time.Time { return time.Now().UTC() },
	}
}

var errNotCreated = errors.New("candidate was not created")

// List は GET /candidates を処理します。page と page_size の既定値は 1 と 5 です。
func (h *CandidateHandler) List(c *gin.Context) {
	var q httpdto.ListCandidatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(apperror.Validation(err, validation.FormatValidationErrors(err)))
		return
	}

	page, err := h.svc.GetCandidatesPage(c.Request.Context(), usecase.GetCandidatesPageQuery{
		PageIndex:       q.Page,
		PageSize:        q.PageSize,
		SkipExperiences: !q.Experiences,
	})
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidPageSize) || errors.Is(err, pagination.ErrInvalidPageIndex) {
			_ = c.Error(apperror.New(http.StatusBadRequest, err.Error(), err))
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, httpdto.CandidatePageRes{
		Items:           page.Items,
		PageIndex:       page.PageIndex,
		TotalPages:      page.TotalPages,
		HasPreviousPage: page.HasPreviousPage(),
		HasNextPage:     page.HasNextPage(),
	})
}

// All は GET /candidates/all を処理し、ページ分割せずに全候補者をID順で返します。
func (h *CandidateHandler) All(c *gin.Context) {
	var q httpdto.AllCandidatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(apperror.Validation(err, validation.FormatValidationErrors(err)))
		return
	}

	items, err := h.svc.GetAllCandidates(c.Request.Context(), usecase.GetAllCandidatesQuery{SkipExperiences: !q.Experiences})
	if err != nil {
		_ = c.Error(err)
		return
	}
	if items == nil {
		items = []dto.CandidateDTO{}
	}
	c.JSON(http.StatusOK, items)
}

// Get は GET /candidates/:id を処理します。
func (h *CandidateHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	candidate, err := h.svc.GetCandidateByID(c.Request.Context(), usecase.GetCandidateByIDQuery{ID: id})
	if err != nil {
		_ = c.Error(err)
		return
	}
	if candidate == nil {
		_ = c.Error(apperror.NotFound("candidate not found"))
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// Create は POST /candidates を処理します。成功時は201と採番されたIDを返します。
func (h *CandidateHandler) Create(c *gin.Context) {
	var req dto.CandidateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.Validation(err, validation.FormatValidationErrors(err)))
		return
	}

	id, err := h.svc.CreateCandidate(c.Request.Context(), usecase.CreateCandidateCommand{Candidate: &req})
	if err != nil {
		_ = c.Error(err)
		return
	}
	if id == nil || *id == 0 {
		_ = c.Error(errNotCreated)
		return
	}

	c.Header("Location", fmt.Sprintf("/candidates/%d", *id))
	c.JSON(http.StatusCreated, httpdto.CreatedRes{ID: *id})
}

// Update は PUT /candidates/:id を処理します。パスのIDが本文のIDより優先されます。
// 経験の更新日時はここで現在時刻に設定されます。
func (h *CandidateHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CandidateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.Validation(err, validation.FormatValidationErrors(err)))
		return
	}
	req.ID = id

	now := h.now()
	for i := range req.Experiences {
		req.Experiences[i].ModifyDate = &now
	}

	updated, err := h.svc.UpdateCandidate(c.Request.Context(), usecase.UpdateCandidateCommand{Candidate: &req})
	if err != nil {
		_ = c.Error(err)
		return
	}
	if updated == nil {
		_ = c.Error(apperror.NotFound("candidate not found"))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete は DELETE /candidates/:id を処理します。
func (h *CandidateHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := h.svc.DeleteCandidate(c.Request.Context(), usecase.DeleteCandidateCommand{ID: id})
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !deleted {
		_ = c.Error(apperror.NotFound("candidate not found"))
		return
	}
	slog.Info("candidate deleted via api", "id", id, "remote_addr", c.ClientIP())
	c.Status(http.StatusNoContent)
}

// pathID parses :id. On failure the error is registered and false is returned.
func pathID(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || n == 0 {
		_ = c.Error(apperror.BadRequest("invalid candidate id"))
		return 0, false
	}
	return uint(n), true
}
