package usecase

import (
	"context"
	"metastock_backend/internal/domain/entity"
	"metastock_backend/internal/domain/repository"
)

// CatalogUsecase は銘柄カタログの参照ユースケースです。
type CatalogUsecase struct {
	repo repository.SymbolRepository
}

// NewCatalogUsecase は新しい CatalogUsecase を作成します。
func NewCatalogUsecase(r repository.SymbolRepository) *CatalogUsecase {
	return &CatalogUsecase{repo: r}
}

// ListSymbols はカタログの全銘柄を返します。
func (u *CatalogUsecase) ListSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListSymbols(ctx)
}
