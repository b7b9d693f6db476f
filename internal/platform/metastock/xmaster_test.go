package metastock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadXMaster(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "XMASTER", buildXMaster(
		xmasterEntry{
			// 8bitに収まらないファイル番号を扱えるのがXMASTERの存在理由
			fileNumber: 300,
			code:       "GOOG",
			name:       "Alphabet Inc Class C",
			firstDate:  20200102,
			lastDate:   20200615,
			timeFrame:  'D',
		},
	))

	symbols, err := readXMaster(dir, asciiDecoder)
	require.NoError(t, err)
	require.Len(t, symbols, 1)

	s := symbols[0]
	assert.Equal(t, uint16(300), s.FileNumber)
	assert.Equal(t, "GOOG", s.Code)
	assert.Equal(t, "Alphabet Inc Class C", s.Name)
	assert.Equal(t, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), s.FirstDate)
	assert.Equal(t, time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC), s.LastDate)
	assert.Equal(t, byte('D'), s.TimeFrame)
	assert.Equal(t, ".MWD", s.Ext)
	assert.Equal(t, "F300.MWD", s.DataFileName())
}

func TestReadXMaster_Missing(t *testing.T) {
	t.Parallel()

	symbols, err := readXMaster(t.TempDir(), asciiDecoder)
	require.NoError(t, err)
	assert.Empty(t, symbols)
}

func TestReadXMaster_ShortHeader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "XMASTER", make([]byte, 11))

	_, err := readXMaster(dir, asciiDecoder)
	assert.ErrorIs(t, err, ErrMalformedIndex)
}
