package lunarmagic

import (
	"bufio"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

const logFileName = "lunar_magic.log"

// run executes the given operation arguments against the configured Lunar
// Magic executable and returns its captured output lines.
//
// Lunar Magic writes its status text directly to the console device instead
// of the standard streams, redirecting its output through a shell into a
// file is the only known way to capture it. Each invocation captures the
// output in a fresh temporary directory that is removed again on every
// return path.
func (w *Wrapper) run(ctx context.Context, args ...string) ([]string, error) {
	command := w.toolPath + " " + strings.Join(args, " ")

	if _, err := os.Stat(w.toolPath); err != nil {
		return nil, &Error{Kind: FailureToolMissing, Command: command, ExitCode: -1, cause: err}
	}

	tempDir, err := os.MkdirTemp("", "lmwrapper")
	if err != nil {
		return nil, &Error{Kind: FailureNoTempDir, Command: command, ExitCode: -1, cause: err}
	}
	defer func() {
		_ = os.RemoveAll(tempDir)
	}()

	logFile := filepath.Join(tempDir, logFileName)

	if _, err := exec.LookPath(w.toolPath); err != nil && !errors.Is(err, exec.ErrDot) {
		return nil, &Error{Kind: FailureExecution, Command: command, ExitCode: -1, cause: err}
	}

	runErr := shellCommand(ctx, command, logFile).Run()
	var exitErr *exec.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		return nil, &Error{Kind: FailureExecution, Command: command, ExitCode: -1, cause: runErr}
	}

	lines, err := readLogFile(logFile)
	if err != nil {
		return nil, &Error{Kind: FailureNoTempFile, Command: command, ExitCode: -1, cause: err}
	}

	if exitErr != nil {
		return nil, &Error{
			Kind:     FailureOperation,
			Command:  command,
			ExitCode: exitErr.ExitCode(),
			Output:   lines,
		}
	}
	return lines, nil
}

// shellCommand wraps the composed command line into a shell call that
// redirects the console output into the given log file.
func shellCommand(ctx context.Context, command, logFile string) *exec.Cmd {
	redirected := command + " > " + logFile
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", redirected)
	}
	return exec.CommandContext(ctx, "sh", "-c", redirected)
}

// readLogFile returns the lines of the captured log file.
func readLogFile(name string) ([]string, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
