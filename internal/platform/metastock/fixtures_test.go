package metastock

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// テスト用のインデックス／データファイルをバイト列から組み立てるヘルパー群。
// スロット内のオフセットは各リーダーの実装と同じ固定値を使います。

type masterEntry struct {
	fileNumber byte
	recLen     byte
	fields     byte
	name       string
	code       string
	firstDate  float32
	lastDate   float32
	timeFrame  byte
}

func buildMaster(entries ...masterEntry) []byte {
	data := make([]byte, (len(entries)+1)*masterSlotSize)
	binary.LittleEndian.PutUint16(data[0:2], uint16(len(entries)))
	for i, e := range entries {
		rec := data[(i+1)*masterSlotSize:]
		rec[0] = e.fileNumber
		rec[3] = e.recLen
		rec[4] = e.fields
		copy(rec[7:23], e.name)
		copy(rec[25:29], mbfBytes(e.firstDate))
		copy(rec[29:33], mbfBytes(e.lastDate))
		rec[33] = e.timeFrame
		copy(rec[36:50], e.code)
	}
	return data
}

type emasterEntry struct {
	fileNumber byte
	fields     byte
	code       string
	name       string
	firstDate  float32
	lastDate   float32
	timeFrame  byte
}

func buildEMaster(entries ...emasterEntry) []byte {
	data := make([]byte, (len(entries)+1)*emasterSlotSize)
	binary.LittleEndian.PutUint16(data[0:2], uint16(len(entries)))
	for i, e := range entries {
		rec := data[(i+1)*emasterSlotSize:]
		rec[2] = e.fileNumber
		rec[6] = e.fields
		copy(rec[11:25], e.code)
		copy(rec[32:48], e.name)
		rec[60] = e.timeFrame
		copy(rec[64:68], mbfBytes(e.firstDate))
		copy(rec[72:76], mbfBytes(e.lastDate))
	}
	return data
}

type xmasterEntry struct {
	fileNumber uint16
	code       string
	name       string
	firstDate  uint32
	lastDate   uint32
	timeFrame  byte
}

func buildXMaster(entries ...xmasterEntry) []byte {
	data := make([]byte, (len(entries)+1)*xmasterSlotSize)
	binary.LittleEndian.PutUint16(data[10:12], uint16(len(entries)))
	for i, e := range entries {
		rec := data[(i+1)*xmasterSlotSize:]
		copy(rec[1:15], e.code)
		copy(rec[16:61], e.name)
		rec[62] = e.timeFrame
		binary.LittleEndian.PutUint16(rec[65:67], e.fileNumber)
		binary.LittleEndian.PutUint32(rec[108:112], e.firstDate)
		binary.LittleEndian.PutUint32(rec[116:120], e.lastDate)
	}
	return data
}

// buildDat はDATファイルを組み立てます。レコードは値の並び（カラム順）の
// スライスで渡します。
func buildDat(fields int, records ...[]float32) []byte {
	headerSize := 4 + (fields-1)*columnWidth
	data := make([]byte, headerSize, headerSize+len(records)*fields*columnWidth)
	binary.LittleEndian.PutUint16(data[0:2], uint16(len(records)+1)) // max_recs
	binary.LittleEndian.PutUint16(data[2:4], uint16(len(records)+1)) // last_rec
	for _, rec := range records {
		for _, v := range rec {
			data = append(data, mbfBytes(v)...)
		}
	}
	return data
}

func writeFixture(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}
