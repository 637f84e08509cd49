// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/lmwrapper/internal/options"
	"github.com/retroenv/lmwrapper/internal/runner"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	flags.StringVar(&opts.ToolPath, "lm", "", "path to the Lunar Magic executable (default: $LUNAR_MAGIC)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args, flags); err != nil {
		return opts, err
	}

	if opts.ToolPath == "" {
		opts.ToolPath = os.Getenv("LUNAR_MAGIC")
	}
	if opts.ToolPath == "" {
		return opts, &UsageError{
			flags: flags,
			msg:   "no Lunar Magic executable configured, pass -lm or set LUNAR_MAGIC",
		}
	}

	opts.Operation = args[0]
	opts.Args = args[1:]
	return opts, nil
}

// validateArgs checks that no flag got passed after the operation name,
// the flag package stops parsing at the first positional argument.
func validateArgs(args []string, flags *flag.FlagSet) error {
	for _, arg := range args[1:] {
		if len(arg) > 0 && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("potential flag %s found after the operation name, pass flags before the operation", arg),
			}
		}
	}
	return nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: lmwrapper [options] <operation> <arguments...>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
		fmt.Println()
	}
	fmt.Printf("operations:\n")
	for _, name := range runner.Names() {
		fmt.Printf("  %s %s\n", name, runner.Usage(name))
	}
	fmt.Println()
}
