package runner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/lmwrapper/lunarmagic"
)

// parseLevel parses a level number argument. SMW level numbers are
// conventionally written in hex, a 0x prefix is accepted next to plain
// decimal values.
func parseLevel(arg string) (uint16, error) {
	value, err := strconv.ParseUint(arg, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid level number '%s': %w", arg, err)
	}
	return uint16(value), nil
}

// parseLocation parses a map16 location argument of the form x,y.
func parseLocation(arg string) (uint32, uint32, error) {
	xPart, yPart, found := strings.Cut(arg, ",")
	if !found {
		return 0, 0, fmt.Errorf("invalid map16 location '%s', expected format x,y", arg)
	}

	x, err := strconv.ParseUint(xPart, 0, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid map16 x coordinate '%s': %w", xPart, err)
	}
	y, err := strconv.ParseUint(yPart, 0, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid map16 y coordinate '%s': %w", yPart, err)
	}
	return uint32(x), uint32(y), nil
}

// parseRomSize matches a ROM size argument against the tokens that Lunar
// Magic defines.
func parseRomSize(arg string) (lunarmagic.RomSize, error) {
	sizes := []lunarmagic.RomSize{
		lunarmagic.RomSize2MB,
		lunarmagic.RomSize3MB,
		lunarmagic.RomSize4MB,
		lunarmagic.RomSize6MBSA1,
		lunarmagic.RomSize8MBSA1,
	}
	for _, size := range sizes {
		if size.String() == arg {
			return size, nil
		}
	}
	return 0, fmt.Errorf("unsupported ROM size '%s'", arg)
}

// parseCompressionFormat matches a compression format argument against the
// tokens that Lunar Magic defines.
func parseCompressionFormat(arg string) (lunarmagic.CompressionFormat, error) {
	formats := []lunarmagic.CompressionFormat{
		lunarmagic.CompressionLZ2Orig,
		lunarmagic.CompressionLZ2Speed,
		lunarmagic.CompressionLZ3,
	}
	for _, format := range formats {
		if format.String() == arg {
			return format, nil
		}
	}
	return 0, fmt.Errorf("unsupported compression format '%s'", arg)
}

var levelImportFlagNames = map[string]lunarmagic.LevelImportFlags{
	"none":                  0,
	"clear-secondary-exits": lunarmagic.ClearSecondaryExits,
}

var levelExportFlagNames = map[string]lunarmagic.LevelExportFlags{
	"none":                 0,
	"only-modified-levels": lunarmagic.OnlyModifiedLevels,
}

// parseImportFlags parses a comma separated list of level import flag names
// into their combined flag value.
func parseImportFlags(arg string) (lunarmagic.LevelImportFlags, error) {
	var combined lunarmagic.LevelImportFlags
	for _, name := range strings.Split(arg, ",") {
		flag, ok := levelImportFlagNames[name]
		if !ok {
			return 0, fmt.Errorf("unsupported level import flag '%s'", name)
		}
		combined |= flag
	}
	return combined, nil
}

// parseExportFlags parses a comma separated list of level export flag names
// into their combined flag value.
func parseExportFlags(arg string) (lunarmagic.LevelExportFlags, error) {
	var combined lunarmagic.LevelExportFlags
	for _, name := range strings.Split(arg, ",") {
		flag, ok := levelExportFlagNames[name]
		if !ok {
			return 0, fmt.Errorf("unsupported level export flag '%s'", name)
		}
		combined |= flag
	}
	return combined, nil
}
