package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  string

		wantErr  bool
		wantTool string
		wantOp   string
		wantArgs []string
	}{
		{
			name:     "operation with tool flag",
			args:     []string{"prog", "-lm", "lunar_magic.exe", "export-gfx", "hack.smc"},
			wantTool: "lunar_magic.exe",
			wantOp:   "export-gfx",
			wantArgs: []string{"hack.smc"},
		},
		{
			name:     "tool path from environment",
			args:     []string{"prog", "import-level", "hack.smc", "level.mwl"},
			env:      "env_lunar_magic.exe",
			wantTool: "env_lunar_magic.exe",
			wantOp:   "import-level",
			wantArgs: []string{"hack.smc", "level.mwl"},
		},
		{
			name:     "flag overrides environment",
			args:     []string{"prog", "-lm", "flag.exe", "export-gfx", "hack.smc"},
			env:      "env.exe",
			wantTool: "flag.exe",
			wantOp:   "export-gfx",
			wantArgs: []string{"hack.smc"},
		},
		{
			name:    "no tool path configured",
			args:    []string{"prog", "export-gfx", "hack.smc"},
			wantErr: true,
		},
		{
			name:    "no operation",
			args:    []string{"prog", "-lm", "lunar_magic.exe"},
			wantErr: true,
		},
		{
			name:    "flag after operation",
			args:    []string{"prog", "export-gfx", "-lm", "lunar_magic.exe", "hack.smc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args
			t.Setenv("LUNAR_MAGIC", tt.env)

			opts, err := ParseFlags()
			if tt.wantErr {
				var usageErr *UsageError
				assert.True(t, errors.As(err, &usageErr))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTool, opts.ToolPath)
			assert.Equal(t, tt.wantOp, opts.Operation)
			assert.Equal(t, tt.wantArgs, opts.Args)
		})
	}
}

func TestParseFlagsLoggingOptions(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "-lm", "lunar_magic.exe", "-debug", "-q", "export-gfx", "hack.smc"}
	t.Setenv("LUNAR_MAGIC", "")

	opts, err := ParseFlags()
	assert.NoError(t, err)
	assert.True(t, opts.Debug)
	assert.True(t, opts.Quiet)
}
