package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"metastock_backend/internal/app/di"
	"metastock_backend/internal/app/router"
	"metastock_backend/internal/interface/handler"
	infraredis "metastock_backend/internal/platform/redis"
	"metastock_backend/internal/usecase"
)

func main() {
	// Metastockカタログ
	market, err := di.NewMarket()
	if err != nil {
		log.Fatal("failed to load catalog:", err)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository（必要に応じてRedisキャッシュでラップ）
	candleRepo := di.NewCandleRepository(rdb, market)

	// Usecase
	catalogUC := usecase.NewCatalogUsecase(market)
	candlesUC := usecase.NewCandlesUsecase(candleRepo)

	// Handler
	symbolH := handler.NewSymbolHandler(catalogUC)
	candlesH := handler.NewCandlesHandler(candlesUC)

	// ルータ生成
	router := router.NewRouter(candlesH, symbolH)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
