package dto

// ErrorResponse はエラー時の共通レスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}
