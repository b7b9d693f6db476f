package dto

// SymbolItem はカタログ一覧のレスポンスDTOです。
type SymbolItem struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	FileNumber uint16 `json:"file_number"`
	FirstDate  string `json:"first_date,omitempty"`
	LastDate   string `json:"last_date,omitempty"`
}
