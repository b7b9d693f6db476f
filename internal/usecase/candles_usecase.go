package usecase

import (
	"context"
	"metastock_backend/internal/domain/entity"
	"metastock_backend/internal/domain/repository"
)

// ロウソク足取得のデフォルト/上限件数。
const (
	DefaultOutputSize = 200
	MaxOutputSize     = 5000
)

// CandlesUsecase はロウソク足データの参照ユースケースです。
type CandlesUsecase struct {
	candle repository.CandleRepository
}

// NewCandlesUsecase は新しい CandlesUsecase を作成します。
func NewCandlesUsecase(candle repository.CandleRepository) *CandlesUsecase {
	return &CandlesUsecase{candle: candle}
}

// GetCandles は銘柄コードを指定してロウソク足データを新しい順に取得します。
// outputsizeが範囲外の場合はデフォルト値に丸めます。
func (cu *CandlesUsecase) GetCandles(ctx context.Context, code string, outputsize int) ([]entity.Candle, error) {
	if outputsize <= 0 || outputsize > MaxOutputSize {
		outputsize = DefaultOutputSize
	}
	return cu.candle.Find(ctx, code, outputsize)
}
