// Package pagination はリストをページ単位に分割する汎用ヘルパーを提供します。
package pagination

import (
	"context"
	"errors"
	"math"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	// ErrInvalidPageSize is returned when the page size is zero or negative.
	ErrInvalidPageSize = errors.New("page size must be greater than zero")

	// ErrInvalidPageIndex is returned when the page index is lower than 1.
	ErrInvalidPageIndex = errors.New("page index must be at least 1")
)

// PaginatedList は1ページ分の要素と、ページ番号・総ページ数を保持します。
// ページ番号は1始まりです。最終ページを超えた番号は空のページになり、エラーにはなりません。
type PaginatedList[T any] struct {
	Items      []T
	PageIndex  int
	TotalPages int
}

// New は取得済みの要素と総件数からPaginatedListを組み立てます。
func New[T any](items []T, count, pageIndex, pageSize int) (*PaginatedList[T], error) {
	if err := validate(pageIndex, pageSize); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return &PaginatedList[T]{
		Items:      items,
		PageIndex:  pageIndex,
		TotalPages: int(math.Ceil(float64(count) / float64(pageSize))),
	}, nil
}

// Create はメモリ上の順序付きスライスから指定ページを切り出します。
// (pageIndex-1)*pageSize 件をスキップし、最大 pageSize 件を取り出します。
func Create[T any](source []T, pageIndex, pageSize int) (*PaginatedList[T], error) {
	if err := validate(pageIndex, pageSize); err != nil {
		return nil, err
	}

	count := len(source)
	start, ok := offset(pageIndex, pageSize)
	if !ok || start > count {
		start = count
	}
	end := start + pageSize
	if end > count {
		end = count
	}

	items := make([]T, end-start)
	copy(items, source[start:end])
	return New(items, count, pageIndex, pageSize)
}

// CreateFromQuery はクエリに対して件数取得とOFFSET/LIMIT付きの取得を並行に発行します。
// query にはModelと並び順を設定しておく必要があります。
// itemScopes はページ要素の取得にのみ適用されます（Preloadなど件数取得に不要なもの）。
func CreateFromQuery[T any](ctx context.Context, query *gorm.DB, pageIndex, pageSize int,
	itemScopes ...func(*gorm.DB) *gorm.DB) (*PaginatedList[T], error) {
	if err := validate(pageIndex, pageSize); err != nil {
		return nil, err
	}

	var (
		count int64
		items []T
	)

	skip, ok := offset(pageIndex, pageSize)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return query.Session(&gorm.Session{}).WithContext(gctx).Count(&count).Error
	})
	// オフセットがintに収まらないページは必ず最終ページより後ろなので取得しない
	if ok {
		g.Go(func() error {
			return query.Session(&gorm.Session{}).WithContext(gctx).
				Scopes(itemScopes...).
				Offset(skip).
				Limit(pageSize).
				Find(&items).Error
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return New(items, int(count), pageIndex, pageSize)
}

// Map はページ情報を保ったまま要素を変換します。
func Map[T, U any](p *PaginatedList[T], f func(T) U) *PaginatedList[U] {
	out := make([]U, 0, len(p.Items))
	for _, item := range p.Items {
		out = append(out, f(item))
	}
	return &PaginatedList[U]{
		Items:      out,
		PageIndex:  p.PageIndex,
		TotalPages: p.TotalPages,
	}
}

// HasPreviousPage は前のページが存在する場合にtrueを返します。
func (p *PaginatedList[T]) HasPreviousPage() bool {
	return p.PageIndex > 1
}

// HasNextPage は次のページが存在する場合にtrueを返します。
func (p *PaginatedList[T]) HasNextPage() bool {
	return p.PageIndex < p.TotalPages
}

// offset は (pageIndex-1)*pageSize を返します。intに収まらない場合はfalseを返します。
func offset(pageIndex, pageSize int) (int, bool) {
	if pageIndex-1 > (math.MaxInt-1)/pageSize {
		return 0, false
	}
	return (pageIndex - 1) * pageSize, true
}

func validate(pageIndex, pageSize int) error {
	if pageSize <= 0 {
		return ErrInvalidPageSize
	}
	if pageIndex < 1 {
		return ErrInvalidPageIndex
	}
	return nil
}
