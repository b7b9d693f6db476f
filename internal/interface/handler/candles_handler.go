package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"metastock_backend/internal/domain/entity"
	"metastock_backend/internal/interface/dto"
	"metastock_backend/internal/platform/metastock"
)

// CandlesUsecase はロウソク足データ操作のユースケースインターフェースを定義します。
type CandlesUsecase interface {
	GetCandles(ctx context.Context, code string, outputsize int) ([]entity.Candle, error)
}

// CandlesHandler はロウソク足データのHTTPリクエストを処理します。
type CandlesHandler struct {
	uc CandlesUsecase
}

// NewCandlesHandler は指定されたusecaseでCandlesHandlerの新しいインスタンスを生成します。
func NewCandlesHandler(uc CandlesUsecase) *CandlesHandler {
	return &CandlesHandler{uc: uc}
}

// GetCandlesHandler は銘柄コードを受け取り、ロウソク足データをJSONで返します。
//
// エンドポイント例:
// GET /candles/:code?outputsize=200
func (h *CandlesHandler) GetCandlesHandler(c *gin.Context) {
	code := c.Param("code")
	// 未指定の場合はデフォルト値を使用
	outputsizeStr := c.DefaultQuery("outputsize", "200")
	// 文字列を整数に変換
	outputsize, _ := strconv.Atoi(outputsizeStr)

	candles, err := h.uc.GetCandles(c.Request.Context(), code, outputsize)
	if err != nil {
		if errors.Is(err, metastock.ErrUnknownSymbol) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// データをフォーマット
	out := make([]dto.CandleResponse, 0, len(candles))
	for _, x := range candles {
		out = append(out, dto.CandleResponse{
			Time:         x.Time.UTC().Format("2006-01-02"),
			Open:         x.Open,
			High:         x.High,
			Low:          x.Low,
			Close:        x.Close,
			Volume:       x.Volume,
			OpenInterest: x.OpenInterest,
		})
	}

	c.JSON(http.StatusOK, out)
}
