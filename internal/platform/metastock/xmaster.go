package metastock

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"metastock_backend/internal/domain/entity"
)

// XMASTERインデックスのレコード構造。ヘッダは10バイト読み飛ばした後の
// レコード数2バイト。スロットは150バイト固定で、ファイル番号が16bitに
// 拡張されている（256ファイル超をサポート）ほか、日付はMBFではなく
// 生の32bit整数で格納されます。データファイルの拡張子は .MWD です。
const xmasterSlotSize = 150

// xmasterSlotUsed はスロット内で実際に読み取るバイト数です。
const xmasterSlotUsed = 120

// readXMaster はXMASTERインデックスの全スロットを読み取ります。
// ファイルが存在しない場合は0件を返します。
func readXMaster(dir string, dec *TextDecoder) ([]entity.Symbol, error) {
	data, err := os.ReadFile(filepath.Join(dir, "XMASTER"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) < 12 {
		return nil, fmt.Errorf("%w: XMASTER header too short", ErrMalformedIndex)
	}

	count := int(binary.LittleEndian.Uint16(data[10:12]))
	symbols := make([]entity.Symbol, 0, count)
	for i := 0; i < count; i++ {
		off := (i + 1) * xmasterSlotSize
		if off+xmasterSlotUsed > len(data) {
			return nil, fmt.Errorf("%w: XMASTER record %d is truncated", ErrMalformedIndex, i)
		}
		s, err := parseXMasterSlot(data[off:off+xmasterSlotUsed], dec)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, s)
	}
	return symbols, nil
}

// parseXMasterSlot は150バイトスロットの固定オフセットから1銘柄を組み立てます。
// オフセット67以降にはビットセット(1)や収集日(4)などの未解明フィールドが
// 並ぶため、日付まで41バイト読み飛ばします。
func parseXMasterSlot(rec []byte, dec *TextDecoder) (entity.Symbol, error) {
	code, err := asciiDecoder.paddedString(rec[1:15])
	if err != nil {
		return entity.Symbol{}, err
	}
	name, err := dec.paddedString(rec[16:61])
	if err != nil {
		return entity.Symbol{}, err
	}
	firstDate := packedToDate(binary.LittleEndian.Uint32(rec[108:112]))
	// rec[112:116] は「開始時刻」と思われるが未使用
	lastDate := packedToDate(binary.LittleEndian.Uint32(rec[116:120]))

	return entity.Symbol{
		FileNumber: binary.LittleEndian.Uint16(rec[65:67]),
		Code:       code,
		Name:       name,
		FirstDate:  firstDate.Time(),
		LastDate:   lastDate.Time(),
		TimeFrame:  rec[62],
		Ext:        ".MWD",
	}, nil
}
