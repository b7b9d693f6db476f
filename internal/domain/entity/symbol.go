package entity

import (
	"fmt"
	"time"
)

// Symbol はMetastockインデックスファイル（MASTER/EMASTER/XMASTER）の
// 1スロットから読み取った銘柄情報です。
type Symbol struct {
	// FileNumber はこの銘柄のデータファイル（F<n>.DAT / F<n>.MWD）の番号です。
	// 0 は未使用スロットを意味し、カタログには登録されません。
	FileNumber uint16
	// RecordLength はデータファイルの1レコードのバイト数です（MASTERのみ保持）。
	RecordLength uint8
	// Fields はデータファイルのカラム数です。DOPファイルがない場合の
	// デフォルトカラムセット（7列/8列）の選択に使われます。
	Fields uint8
	// Code は銘柄コード（固定幅フィールドのパディングを除去済み）です。
	Code string
	// Name は人間向けの銘柄名です。指定した文字エンコーディングでデコードされます。
	Name string
	// FirstDate / LastDate はデータファイルが対象とする期間です。
	// 空の銘柄では意味を持たないことがあるため、表示用途のみに使用します。
	FirstDate time.Time
	LastDate  time.Time
	// TimeFrame は時間足の1文字表現です（日足 'D' がデフォルト）。
	TimeFrame byte
	// Ext はデータファイルの拡張子です（".DAT" または ".MWD"）。
	Ext string
}

// DataFileName はこの銘柄のデータファイル名（例: "F12.DAT"）を返します。
func (s Symbol) DataFileName() string {
	return fmt.Sprintf("F%d%s", s.FileNumber, s.Ext)
}

// DopFileName はこの銘柄のカラム定義サイドカー名（例: "F12.DOP"）を返します。
func (s Symbol) DopFileName() string {
	return fmt.Sprintf("F%d.DOP", s.FileNumber)
}
