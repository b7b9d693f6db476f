package entity

import "time"

// Candle はDATファイルの1レコードを型付きで表したロウソク足です。
// TIMEカラムを持たない日足データでは Time は当日0時（UTC）になります。
type Candle struct {
	Symbol       string
	Time         time.Time
	Open         float64
	High         float64
	Low          float64
	Close        float64
	Volume       int64
	OpenInterest int64
}
