package lunarmagic

// RomSize defines the ROM sizes supported by ExpandROM.
type RomSize int

const (
	RomSize2MB RomSize = iota
	RomSize3MB
	RomSize4MB
	RomSize6MBSA1
	RomSize8MBSA1
)

// String returns the size token that Lunar Magic expects on the command
// line. It returns an empty string for values outside the defined set.
func (s RomSize) String() string {
	switch s {
	case RomSize2MB:
		return "2MB"
	case RomSize3MB:
		return "3MB"
	case RomSize4MB:
		return "4MB"
	case RomSize6MBSA1:
		return "6MB_SA1"
	case RomSize8MBSA1:
		return "8MB_SA1"
	default:
		return ""
	}
}

// CompressionFormat defines the ROM compression formats supported by
// ChangeCompression.
type CompressionFormat int

const (
	CompressionLZ2Orig CompressionFormat = iota
	CompressionLZ2Speed
	CompressionLZ3
)

// String returns the format token that Lunar Magic expects on the command
// line. It returns an empty string for values outside the defined set.
func (c CompressionFormat) String() string {
	switch c {
	case CompressionLZ2Orig:
		return "LC_LZ2_Orig"
	case CompressionLZ2Speed:
		return "LC_LZ2_Speed"
	case CompressionLZ3:
		return "LC_LZ3"
	default:
		return ""
	}
}

// LevelImportFlags adjust the behavior of ImportMultLevels.
// Flags combine using bitwise OR and are passed to Lunar Magic as their
// combined unsigned integer value.
type LevelImportFlags uint32

const (
	// ClearSecondaryExits removes all existing secondary exits from the ROM
	// before importing the levels.
	ClearSecondaryExits LevelImportFlags = 1 << iota
)

// LevelExportFlags adjust the behavior of ExportMultLevels.
// Flags combine using bitwise OR and are passed to Lunar Magic as their
// combined unsigned integer value.
type LevelExportFlags uint32

const (
	// OnlyModifiedLevels exports only levels that differ from the original
	// game.
	OnlyModifiedLevels LevelExportFlags = 1 << iota
)
