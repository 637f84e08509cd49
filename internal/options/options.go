// Package options contains the program options.
package options

// Program options of the command line tool.
type Program struct {
	ToolPath string // path to the Lunar Magic executable

	Operation string   // name of the operation to perform
	Args      []string // positional arguments of the operation

	Debug bool
	Quiet bool
}
