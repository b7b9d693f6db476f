package metastock

import (
	"fmt"
	"time"
)

// msDate はMetastockの整数表現（1900年起点のYYMMDD+）から桁分解した暦日です。
// 不正な値（月0や13など）もそのまま保持し、テキスト出力では桁をそのまま
// 書き出します。time.Dateによる正規化は型付きアクセス時のみ行います。
type msDate struct {
	year, month, day int
}

// floatToDate はMBFデコード済みの数値を暦日に変換します。
// 101未満（1900-01-01より前の表現）は101に切り上げます。
func floatToDate(v float32) msDate {
	d := int(v)
	if d < 101 {
		d = 101
	}
	return msDate{
		year:  1900 + d/10000,
		month: d % 10000 / 100,
		day:   d % 100,
	}
}

// packedToDate はXMASTERが使う生の32bit整数の日付を暦日に変換します。
// MBF経由ではなく、年も1900年オフセットなしの生値です。
func packedToDate(v uint32) msDate {
	return msDate{
		year:  int(v / 10000),
		month: int(v % 10000 / 100),
		day:   int(v % 100),
	}
}

// String はYYYYMMDD形式で返します。
func (d msDate) String() string {
	return fmt.Sprintf("%04d%02d%02d", d.year, d.month, d.day)
}

// Time はtime.Timeに変換します（UTC、0時）。
func (d msDate) Time() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
}

// msClock はMetastockの整数表現（HHMMSS、秒は常に0）から桁分解した時刻です。
type msClock struct {
	hour, minute int
}

// floatToClock はMBFデコード済みの数値を時刻に変換します。
func floatToClock(v float32) msClock {
	t := int(v)
	return msClock{
		hour:   t / 10000,
		minute: t % 10000 / 100,
	}
}

// String はHHMMSS形式で返します（秒は常に00）。
func (c msClock) String() string {
	return fmt.Sprintf("%02d%02d00", c.hour, c.minute)
}
