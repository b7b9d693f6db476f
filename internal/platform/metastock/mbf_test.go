package metastock

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mbfBytes はIEEE float32をMBFの4バイト表現に逆変換するテスト用ヘルパーです。
// mbfToIEEEの逆写像で、指数が0x7e/0x7f（絶対値が[0.5, 2.0)の値）と
// 非正規化数には使えません。フィクスチャの値はその範囲を避けて選びます。
func mbfBytes(f float32) []byte {
	bits := math.Float32bits(f)
	if bits<<1 == 0 {
		return []byte{0, 0, 0, 0}
	}
	w := bits >> 16
	e := (bits >> 23) & 0xff
	man := (e+2)<<8 | (w&0x8000)>>8 | w&0x7f
	return []byte{byte(bits), byte(bits >> 8), byte(man), byte(man >> 8)}
}

func TestMBFToIEEE_Zero(t *testing.T) {
	t.Parallel()

	// 後半2バイト（指数＋仮数上位）がゼロならMBFのゼロ
	assert.Equal(t, float32(0), mbfToIEEE([]byte{0, 0, 0, 0}))
	assert.Equal(t, float32(0), mbfToIEEE([]byte{0x12, 0x34, 0, 0}))
}

func TestMBFToIEEE_ExponentOverflow(t *testing.T) {
	t.Parallel()

	// 指数バイト0x00/0x01/0x80/0x81は再構成時に符号ビットが破綻するため、
	// 固定値1.0が返る
	tests := []struct {
		name string
		b    []byte
	}{
		{name: "exponent byte 0x81", b: []byte{0, 0, 0x40, 0x81}},
		{name: "exponent byte 0x80", b: []byte{0, 0, 0x40, 0x80}},
		{name: "exponent byte 0x01", b: []byte{0, 0, 0x40, 0x01}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, float32(1), mbfToIEEE(tt.b))
		})
	}
}

func TestMBFToIEEE_RoundTrip(t *testing.T) {
	t.Parallel()

	values := []float32{
		2,
		-4,
		100.25,
		-250.5,
		123456,
		1200615,  // 日付の格納形式（2020-06-15）
		93000,    // 時刻の格納形式（09:30）
		0.015625, // 1/64
	}
	for _, v := range values {
		assert.Equal(t, v, mbfToIEEE(mbfBytes(v)), "value %v", v)
	}
}
