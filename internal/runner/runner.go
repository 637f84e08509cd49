// Package runner dispatches command line operations to the Lunar Magic
// wrapper and logs the captured tool output.
package runner

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/retroenv/lmwrapper/internal/options"
	"github.com/retroenv/lmwrapper/lunarmagic"
	"github.com/retroenv/retrogolib/log"
)

type operationFunc func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error)

// operation describes a dispatchable Lunar Magic command line operation.
type operation struct {
	usage   string // positional argument signature for usage output
	minArgs int
	maxArgs int
	run     operationFunc
}

var operations = map[string]operation{
	"export-gfx": {usage: "<rom>", minArgs: 1, maxArgs: 1,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			return lm.ExportGFX(ctx, args[0])
		}},
	"export-exgfx": {usage: "<rom>", minArgs: 1, maxArgs: 1,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			return lm.ExportExGFX(ctx, args[0])
		}},
	"import-gfx": {usage: "<rom>", minArgs: 1, maxArgs: 1,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			return lm.ImportGFX(ctx, args[0])
		}},
	"import-exgfx": {usage: "<rom>", minArgs: 1, maxArgs: 1,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			return lm.ImportExGFX(ctx, args[0])
		}},
	"import-all-graphics": {usage: "<rom>", minArgs: 1, maxArgs: 1,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			return lm.ImportAllGraphics(ctx, args[0])
		}},
	"export-level": {usage: "<rom> <mwl> <level>", minArgs: 3, maxArgs: 3,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			level, err := parseLevel(args[2])
			if err != nil {
				return nil, err
			}
			return lm.ExportLevel(ctx, args[0], args[1], level)
		}},
	"import-level": {usage: "<rom> <mwl> [level]", minArgs: 2, maxArgs: 3,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			if len(args) == 2 {
				return lm.ImportLevel(ctx, args[0], args[1])
			}
			level, err := parseLevel(args[2])
			if err != nil {
				return nil, err
			}
			return lm.ImportLevelAs(ctx, args[0], args[1], level)
		}},
	"import-map16": {usage: "<rom> <map16> <level> [x,y]", minArgs: 3, maxArgs: 4,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			level, err := parseLevel(args[2])
			if err != nil {
				return nil, err
			}
			if len(args) == 3 {
				return lm.ImportMap16(ctx, args[0], args[1], level)
			}
			x, y, err := parseLocation(args[3])
			if err != nil {
				return nil, err
			}
			return lm.ImportMap16At(ctx, args[0], args[1], level, x, y)
		}},
	"import-custom-palette": {usage: "<rom> <palette> <level>", minArgs: 3, maxArgs: 3,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			level, err := parseLevel(args[2])
			if err != nil {
				return nil, err
			}
			return lm.ImportCustomPalette(ctx, args[0], args[1], level)
		}},
	"export-shared-palette": {usage: "<rom> <palette>", minArgs: 2, maxArgs: 2,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			return lm.ExportSharedPalette(ctx, args[0], args[1])
		}},
	"import-shared-palette": {usage: "<rom> <palette>", minArgs: 2, maxArgs: 2,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			return lm.ImportSharedPalette(ctx, args[0], args[1])
		}},
	"export-all-map16": {usage: "<rom> <map16>", minArgs: 2, maxArgs: 2,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			return lm.ExportAllMap16(ctx, args[0], args[1])
		}},
	"import-all-map16": {usage: "<rom> <map16>", minArgs: 2, maxArgs: 2,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			return lm.ImportAllMap16(ctx, args[0], args[1])
		}},
	"export-mult-levels": {usage: "<rom> <mwl prefix> [flags]", minArgs: 2, maxArgs: 3,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			if len(args) == 2 {
				return lm.ExportMultLevels(ctx, args[0], args[1])
			}
			flags, err := parseExportFlags(args[2])
			if err != nil {
				return nil, err
			}
			return lm.ExportMultLevels(ctx, args[0], args[1], flags)
		}},
	"import-mult-levels": {usage: "<rom> <level directory> [flags]", minArgs: 2, maxArgs: 3,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			if len(args) == 2 {
				return lm.ImportMultLevels(ctx, args[0], args[1])
			}
			flags, err := parseImportFlags(args[2])
			if err != nil {
				return nil, err
			}
			return lm.ImportMultLevels(ctx, args[0], args[1], flags)
		}},
	"expand-rom": {usage: "<rom> <2MB|3MB|4MB|6MB_SA1|8MB_SA1>", minArgs: 2, maxArgs: 2,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			size, err := parseRomSize(args[1])
			if err != nil {
				return nil, err
			}
			return lm.ExpandROM(ctx, args[0], size)
		}},
	"change-compression": {usage: "<rom> <LC_LZ2_Orig|LC_LZ2_Speed|LC_LZ3>", minArgs: 2, maxArgs: 2,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			format, err := parseCompressionFormat(args[1])
			if err != nil {
				return nil, err
			}
			return lm.ChangeCompression(ctx, args[0], format)
		}},
	"transfer-level-global-exanim": {usage: "<destination rom> <source rom>", minArgs: 2, maxArgs: 2,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			return lm.TransferLevelGlobalExAnim(ctx, args[0], args[1])
		}},
	"transfer-overworld": {usage: "<destination rom> <source rom>", minArgs: 2, maxArgs: 2,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			return lm.TransferOverworld(ctx, args[0], args[1])
		}},
	"transfer-title-screen": {usage: "<destination rom> <source rom>", minArgs: 2, maxArgs: 2,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			return lm.TransferTitleScreen(ctx, args[0], args[1])
		}},
	"transfer-credits": {usage: "<destination rom> <source rom>", minArgs: 2, maxArgs: 2,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			return lm.TransferCredits(ctx, args[0], args[1])
		}},
	"export-title-moves": {usage: "<rom> <movement file>", minArgs: 2, maxArgs: 2,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			return lm.ExportTitleMoves(ctx, args[0], args[1])
		}},
	"import-title-moves": {usage: "<rom> <movement file>", minArgs: 2, maxArgs: 2,
		run: func(ctx context.Context, lm *lunarmagic.Wrapper, args []string) ([]string, error) {
			return lm.ImportTitleMoves(ctx, args[0], args[1])
		}},
}

// Run executes the operation selected by the program options and logs the
// captured Lunar Magic output lines.
func Run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	op, ok := operations[opts.Operation]
	if !ok {
		return fmt.Errorf("unsupported operation '%s', supported operations: %s",
			opts.Operation, strings.Join(Names(), ", "))
	}
	if len(opts.Args) < op.minArgs || len(opts.Args) > op.maxArgs {
		return fmt.Errorf("usage: %s %s", opts.Operation, op.usage)
	}

	lines, err := op.run(ctx, lunarmagic.New(opts.ToolPath), opts.Args)
	if err != nil {
		// A cancelled context kills the external process, which surfaces as
		// a regular invocation failure, report the cancellation instead.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("performing operation: %w", ctxErr)
		}
		return fmt.Errorf("performing operation: %w", err)
	}

	for _, line := range lines {
		logger.Info(line)
	}
	return nil
}

// Names returns the sorted names of all supported operations.
func Names() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usage returns the positional argument signature of the given operation,
// it returns an empty string for unsupported operations.
func Usage(name string) string {
	return operations[name].usage
}
