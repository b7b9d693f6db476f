package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"metastock_backend/internal/domain/entity"
	"metastock_backend/internal/interface/dto"
)

// CatalogUsecase は銘柄カタログ参照のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CatalogUsecase interface {
	ListSymbols(ctx context.Context) ([]entity.Symbol, error)
}

// SymbolHandler は銘柄カタログのHTTPリクエストを処理します。
type SymbolHandler struct {
	uc CatalogUsecase
}

// NewSymbolHandler は指定されたusecaseでSymbolHandlerの新しいインスタンスを生成します。
func NewSymbolHandler(uc CatalogUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List はカタログ内の全銘柄をJSONで返します。
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	out := make([]dto.SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		item := dto.SymbolItem{
			Code:       s.Code,
			Name:       s.Name,
			FileNumber: s.FileNumber,
		}
		if !s.FirstDate.IsZero() {
			item.FirstDate = s.FirstDate.Format("2006-01-02")
		}
		if !s.LastDate.IsZero() {
			item.LastDate = s.LastDate.Format("2006-01-02")
		}
		out = append(out, item)
	}
	c.JSON(http.StatusOK, out)
}
