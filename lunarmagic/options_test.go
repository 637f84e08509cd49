package lunarmagic

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestRomSizeString(t *testing.T) {
	tests := []struct {
		size RomSize
		want string
	}{
		{RomSize2MB, "2MB"},
		{RomSize3MB, "3MB"},
		{RomSize4MB, "4MB"},
		{RomSize6MBSA1, "6MB_SA1"},
		{RomSize8MBSA1, "8MB_SA1"},
		{RomSize(99), ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.size.String())
	}
}

func TestCompressionFormatString(t *testing.T) {
	tests := []struct {
		format CompressionFormat
		want   string
	}{
		{CompressionLZ2Orig, "LC_LZ2_Orig"},
		{CompressionLZ2Speed, "LC_LZ2_Speed"},
		{CompressionLZ3, "LC_LZ3"},
		{CompressionFormat(99), ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.format.String())
	}
}

func TestFlagCombination(t *testing.T) {
	assert.Equal(t, ClearSecondaryExits, ClearSecondaryExits|ClearSecondaryExits)
	assert.Equal(t, OnlyModifiedLevels, OnlyModifiedLevels|OnlyModifiedLevels)

	assert.Equal(t, LevelImportFlags(1), ClearSecondaryExits|LevelImportFlags(0))
	assert.Equal(t, LevelExportFlags(1), OnlyModifiedLevels|LevelExportFlags(0))
}
