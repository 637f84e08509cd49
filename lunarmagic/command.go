package lunarmagic

import (
	"context"
	"strconv"
)

// ExportGFX exports the GFX files of the given ROM.
func (w *Wrapper) ExportGFX(ctx context.Context, romPath string) ([]string, error) {
	return w.run(ctx, "-ExportGFX", romPath)
}

// ExportExGFX exports the ExGFX files of the given ROM.
func (w *Wrapper) ExportExGFX(ctx context.Context, romPath string) ([]string, error) {
	return w.run(ctx, "-ExportExGFX", romPath)
}

// ImportGFX imports the GFX files into the given ROM.
func (w *Wrapper) ImportGFX(ctx context.Context, romPath string) ([]string, error) {
	return w.run(ctx, "-ImportGFX", romPath)
}

// ImportExGFX imports the ExGFX files into the given ROM.
func (w *Wrapper) ImportExGFX(ctx context.Context, romPath string) ([]string, error) {
	return w.run(ctx, "-ImportExGFX", romPath)
}

// ImportAllGraphics imports both the GFX and ExGFX files into the given ROM.
func (w *Wrapper) ImportAllGraphics(ctx context.Context, romPath string) ([]string, error) {
	return w.run(ctx, "-ImportAllGraphics", romPath)
}

// ExportLevel exports the given level number of the ROM as an MWL file.
// Lunar Magic expects level numbers in the range 0 to 511, out of range
// values are passed through and rejected by the tool itself.
func (w *Wrapper) ExportLevel(ctx context.Context, romPath, mwlPath string, levelNumber uint16) ([]string, error) {
	return w.run(ctx, "-ExportLevel", romPath, mwlPath, levelToken(levelNumber))
}

// ImportLevel imports the given MWL file into the ROM, the level number is
// derived from the MWL file name by Lunar Magic. Use ImportLevelAs to import
// into a specific level instead.
func (w *Wrapper) ImportLevel(ctx context.Context, romPath, mwlPath string) ([]string, error) {
	return w.run(ctx, "-ImportLevel", romPath, mwlPath)
}

// ImportLevelAs imports the given MWL file as the given level number into
// the ROM.
func (w *Wrapper) ImportLevelAs(ctx context.Context, romPath, mwlPath string, levelNumber uint16) ([]string, error) {
	return w.run(ctx, "-ImportLevel", romPath, mwlPath, levelToken(levelNumber))
}

// ImportMap16 imports the given map16 file into the ROM using the tileset of
// the given level, at the location stored in the map16 file. Use
// ImportMap16At to import at a specific location instead.
func (w *Wrapper) ImportMap16(ctx context.Context, romPath, map16Path string, levelNumber uint16) ([]string, error) {
	return w.run(ctx, "-ImportMap16", romPath, map16Path, levelToken(levelNumber))
}

// ImportMap16At imports the given map16 file into the ROM using the tileset
// of the given level, at the given x and y map16 location.
func (w *Wrapper) ImportMap16At(ctx context.Context, romPath, map16Path string, levelNumber uint16,
	x, y uint32) ([]string, error) {

	location := strconv.FormatUint(uint64(x), 10) + "," + strconv.FormatUint(uint64(y), 10)
	return w.run(ctx, "-ImportMap16", romPath, map16Path, levelToken(levelNumber), location)
}

// ImportCustomPalette imports the given palette file into the given level of
// the ROM.
func (w *Wrapper) ImportCustomPalette(ctx context.Context, romPath, palettePath string,
	levelNumber uint16) ([]string, error) {

	return w.run(ctx, "-ImportCustomPalette", romPath, palettePath, levelToken(levelNumber))
}

// ExportSharedPalette exports the shared palette of the ROM to the given
// file.
func (w *Wrapper) ExportSharedPalette(ctx context.Context, romPath, palettePath string) ([]string, error) {
	return w.run(ctx, "-ExportSharedPalette", romPath, palettePath)
}

// ImportSharedPalette imports the given shared palette file into the ROM.
func (w *Wrapper) ImportSharedPalette(ctx context.Context, romPath, palettePath string) ([]string, error) {
	return w.run(ctx, "-ImportSharedPalette", romPath, palettePath)
}

// ExportAllMap16 exports the complete map16 data of the ROM to the given
// file.
func (w *Wrapper) ExportAllMap16(ctx context.Context, romPath, map16Path string) ([]string, error) {
	return w.run(ctx, "-ExportAllMap16", romPath, map16Path)
}

// ImportAllMap16 imports the given complete map16 file into the ROM.
func (w *Wrapper) ImportAllMap16(ctx context.Context, romPath, map16Path string) ([]string, error) {
	return w.run(ctx, "-ImportAllMap16", romPath, map16Path)
}

// ExportMultLevels exports all levels of the ROM as MWL files, the file name
// of every level starts with the given path prefix. If no flags are given,
// Lunar Magic uses its own default settings, which differs from passing a
// zero flags value. Multiple flags combine using bitwise OR.
func (w *Wrapper) ExportMultLevels(ctx context.Context, romPath, mwlPathPrefix string,
	flags ...LevelExportFlags) ([]string, error) {

	if len(flags) == 0 {
		return w.run(ctx, "-ExportMultLevels", romPath, mwlPathPrefix)
	}

	var combined LevelExportFlags
	for _, flag := range flags {
		combined |= flag
	}
	return w.run(ctx, "-ExportMultLevels", romPath, mwlPathPrefix,
		strconv.FormatUint(uint64(combined), 10))
}

// ImportMultLevels imports all MWL files of the given directory into the
// ROM. If no flags are given, Lunar Magic uses its own default settings,
// which differs from passing a zero flags value. Multiple flags combine
// using bitwise OR.
func (w *Wrapper) ImportMultLevels(ctx context.Context, romPath, levelDirectory string,
	flags ...LevelImportFlags) ([]string, error) {

	if len(flags) == 0 {
		return w.run(ctx, "-ImportMultLevels", romPath, levelDirectory)
	}

	var combined LevelImportFlags
	for _, flag := range flags {
		combined |= flag
	}
	return w.run(ctx, "-ImportMultLevels", romPath, levelDirectory,
		strconv.FormatUint(uint64(combined), 10))
}

// ExpandROM expands the ROM to the given size.
func (w *Wrapper) ExpandROM(ctx context.Context, romPath string, size RomSize) ([]string, error) {
	return w.run(ctx, "-ExpandROM", romPath, size.String())
}

// ChangeCompression changes the compression format of the ROM.
func (w *Wrapper) ChangeCompression(ctx context.Context, romPath string,
	format CompressionFormat) ([]string, error) {

	return w.run(ctx, "-ChangeCompression", romPath, format.String())
}

// TransferLevelGlobalExAnim transfers the global ExAnimation data from the
// source ROM to the destination ROM.
func (w *Wrapper) TransferLevelGlobalExAnim(ctx context.Context, destinationRomPath,
	sourceRomPath string) ([]string, error) {

	return w.run(ctx, "-TransferLevelGlobalExAnim", destinationRomPath, sourceRomPath)
}

// TransferOverworld transfers the overworld data from the source ROM to the
// destination ROM.
func (w *Wrapper) TransferOverworld(ctx context.Context, destinationRomPath,
	sourceRomPath string) ([]string, error) {

	return w.run(ctx, "-TransferOverworld", destinationRomPath, sourceRomPath)
}

// TransferTitleScreen transfers the title screen data from the source ROM to
// the destination ROM.
func (w *Wrapper) TransferTitleScreen(ctx context.Context, destinationRomPath,
	sourceRomPath string) ([]string, error) {

	return w.run(ctx, "-TransferTitleScreen", destinationRomPath, sourceRomPath)
}

// TransferCredits transfers the credits data from the source ROM to the
// destination ROM.
func (w *Wrapper) TransferCredits(ctx context.Context, destinationRomPath,
	sourceRomPath string) ([]string, error) {

	return w.run(ctx, "-TransferCredits", destinationRomPath, sourceRomPath)
}

// ExportTitleMoves exports the title screen movement data of the ROM to the
// given file.
func (w *Wrapper) ExportTitleMoves(ctx context.Context, romPath, titleMovesPath string) ([]string, error) {
	return w.run(ctx, "-ExportTitleMoves", romPath, titleMovesPath)
}

// ImportTitleMoves imports the given title screen movement data file into
// the ROM.
func (w *Wrapper) ImportTitleMoves(ctx context.Context, romPath, titleMovesPath string) ([]string, error) {
	return w.run(ctx, "-ImportTitleMoves", romPath, titleMovesPath)
}

func levelToken(levelNumber uint16) string {
	return strconv.FormatUint(uint64(levelNumber), 10)
}
