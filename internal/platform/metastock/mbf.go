// Package metastock はMetastock形式のバイナリファイル群
// （MASTER/EMASTER/XMASTERインデックス、F<n>.DATデータ、F<n>.DOPサイドカー）を
// 読み取るアダプタです。IEEE-754以前の独自浮動小数点（MBF）のデコードを含みます。
package metastock

import (
	"encoding/binary"
	"math"
)

// mbfToIEEE は4バイトのMicrosoft Binary Format浮動小数点をIEEE-754の
// float32に変換します。
//
// 後半2バイトをリトルエンディアンの16bit語として扱い、上位バイトが
// 指数部（バイアス0x81）、下位バイトのbit7が符号、bit6-0が仮数部上位です。
// 指数バイアスを差し替え、符号ビットをIEEEの位置へ移した上で、先頭2バイトと
// 合わせてIEEEのビット列を組み立て直します。
//
// 指数の再構成で符号ビットの不一致（指数オーバーフロー）が起きた場合は
// 固定値1.0を返します。これは入力データの既知の性質であり、エラーには
// しません。
func mbfToIEEE(b []byte) float32 {
	man := int(binary.LittleEndian.Uint16(b[2:4]))
	if man == 0 {
		// 仮数ゼロはMBFのゼロ表現
		return 0
	}
	exp := man&0xff00 - 0x0200
	if exp&0x8000 != man&0x8000 {
		// 指数オーバーフロー
		return 1
	}
	man = man&0x7f | (man<<8)&0x8000
	man |= exp >> 1

	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(man&0xff)<<16 | uint32(man>>8&0xff)<<24
	return math.Float32frombits(bits)
}
