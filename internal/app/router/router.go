package router

import (
	"github.com/gin-gonic/gin"

	"metastock_backend/internal/interface/handler"
)

// NewRouter は読み取りAPIのルーティングを構築します。
func NewRouter(candles *handler.CandlesHandler, symbol *handler.SymbolHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// カタログ一覧
	r.GET("/symbols", symbol.List)
	// 銘柄ごとのロウソク足
	r.GET("/candles/:code", candles.GetCandlesHandler)

	return r
}
