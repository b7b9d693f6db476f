package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"metastock_backend/internal/domain/entity"
	"metastock_backend/internal/interface/handler"
	"metastock_backend/internal/platform/metastock"
)

// mockCandlesUsecase はCandlesUsecaseインターフェースのモック実装です。
type mockCandlesUsecase struct {
	GetCandlesFunc func(ctx context.Context, code string, outputsize int) ([]entity.Candle, error)
}

func (m *mockCandlesUsecase) GetCandles(ctx context.Context, code string, outputsize int) ([]entity.Candle, error) {
	return m.GetCandlesFunc(ctx, code, outputsize)
}

// TestCandlesHandler_GetCandlesHandler はGetCandlesHandlerのHTTPリクエスト/レスポンス処理をテストします。
func TestCandlesHandler_GetCandlesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testTime := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		mockGetCandles func(ctx context.Context, code string, outputsize int) ([]entity.Candle, error)
		expectedStatus int
		expectedBody   string // JSON文字列として比較
	}{
		{
			name: "success: returns candles",
			url:  "/candles/MSFT",
			mockGetCandles: func(ctx context.Context, code string, outputsize int) ([]entity.Candle, error) {
				return []entity.Candle{
					{Symbol: "MSFT", Time: testTime, Open: 250.5, High: 260, Low: 240.25, Close: 255.75, Volume: 123456},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"time":"2020-06-15","open":250.5,"high":260,"low":240.25,"close":255.75,"volume":123456,"open_interest":0}]`,
		},
		{
			name: "success: empty result",
			url:  "/candles/MSFT",
			mockGetCandles: func(ctx context.Context, code string, outputsize int) ([]entity.Candle, error) {
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "failure: unknown symbol returns 404",
			url:  "/candles/NONE",
			mockGetCandles: func(ctx context.Context, code string, outputsize int) ([]entity.Candle, error) {
				return nil, metastock.ErrUnknownSymbol
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "failure: read error returns 502",
			url:  "/candles/MSFT",
			mockGetCandles: func(ctx context.Context, code string, outputsize int) ([]entity.Candle, error) {
				return nil, errors.New("data file is truncated")
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewCandlesHandler(&mockCandlesUsecase{GetCandlesFunc: tt.mockGetCandles})

			r := gin.New()
			r.GET("/candles/:code", h.GetCandlesHandler)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				body, _ := io.ReadAll(w.Body)
				assert.JSONEq(t, tt.expectedBody, string(body))
			}
		})
	}
}

// TestCandlesHandler_OutputsizeQuery はoutputsizeクエリがusecaseへ渡ることをテストします。
func TestCandlesHandler_OutputsizeQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotCode string
	var gotOutputsize int
	h := handler.NewCandlesHandler(&mockCandlesUsecase{
		GetCandlesFunc: func(ctx context.Context, code string, outputsize int) ([]entity.Candle, error) {
			gotCode = code
			gotOutputsize = outputsize
			return nil, nil
		},
	})

	r := gin.New()
	r.GET("/candles/:code", h.GetCandlesHandler)

	req := httptest.NewRequest(http.MethodGet, "/candles/AAPL?outputsize=50", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "AAPL", gotCode)
	assert.Equal(t, 50, gotOutputsize)
}
