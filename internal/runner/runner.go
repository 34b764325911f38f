// Package runner invokes resolved tool commands as subprocesses.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"mvdan.cc/sh/v3/syntax"

	"github.com/temirov/fixit/internal/utils"
)

// FailureExitCode is reported for a batch whose tool could not be started.
const FailureExitCode = 1

const (
	programLineFormat   = "Program: %s\n"
	argumentsLineFormat = "Args: %s\n"
	filesLineFormat     = "Files: %s\n"
	commandLineFormat   = "Command: %s\n"

	unavailableMessage = "cannot run formatter/linter: not installed or not on PATH"
	spawnFailedMessage = "error running formatter/linter"
	toolFailedMessage  = "formatter/linter exited with non-zero status"
)

// ErrUnavailable reports a program that is neither an existing path nor found on the search path.
var ErrUnavailable = errors.New("executable not available")

// Runner executes one batch at a time, forwarding the tool's output streams.
type Runner struct {
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *zap.Logger
	LookPath func(executableName string) (string, error)
	// DryRun prints the resolved commands without checking or running them.
	DryRun bool
}

// Run prints the batch description, then runs program with arguments followed
// by files and returns its exit status. A program that cannot be started
// yields FailureExitCode.
func (runner *Runner) Run(ctx context.Context, program string, arguments []string, files []string) int {
	logger := utils.LoggerOrNop(runner.Logger)
	stdout := runner.stdout()

	fmt.Fprintf(stdout, programLineFormat, program)
	fmt.Fprintf(stdout, argumentsLineFormat, QuoteArguments(arguments))
	fmt.Fprintf(stdout, filesLineFormat, strings.Join(files, " "))
	commandArguments := append(append([]string{}, arguments...), files...)
	fmt.Fprintf(stdout, commandLineFormat, QuoteCommand(program, commandArguments))

	if runner.DryRun {
		return 0
	}

	if availabilityError := runner.CheckAvailable(program); availabilityError != nil {
		logger.Error(unavailableMessage, zap.String("program", program), zap.Error(availabilityError))
		return FailureExitCode
	}

	// #nosec G204
	command := exec.CommandContext(ctx, program, commandArguments...)
	command.Stdout = stdout
	command.Stderr = runner.stderr()
	command.Stdin = runner.stdin()

	runError := command.Run()
	if runError == nil {
		return 0
	}
	var exitError *exec.ExitError
	if errors.As(runError, &exitError) {
		exitCode := exitError.ExitCode()
		if exitCode <= 0 {
			exitCode = FailureExitCode
		}
		logger.Warn(toolFailedMessage, zap.String("program", program), zap.Int("exit_code", exitCode))
		return exitCode
	}
	logger.Error(spawnFailedMessage, zap.String("program", program), zap.Error(runError))
	return FailureExitCode
}

// CheckAvailable verifies program can be started. Paths are checked for
// existence; bare names are resolved through the search path.
func (runner *Runner) CheckAvailable(program string) error {
	if filepath.IsAbs(program) || strings.ContainsAny(program, `/\`) {
		if _, statError := os.Stat(program); statError != nil {
			return fmt.Errorf("%w: %s: %w", ErrUnavailable, program, statError)
		}
		return nil
	}
	lookPath := runner.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if _, lookError := lookPath(program); lookError != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, program, lookError)
	}
	return nil
}

// QuoteCommand renders program and arguments as a single shell-safe line for display.
func QuoteCommand(program string, arguments []string) string {
	return QuoteArguments(append([]string{program}, arguments...))
}

// QuoteArguments shell-quotes every argument and joins them with spaces, so an
// argument holding a space stays distinguishable from two arguments.
func QuoteArguments(arguments []string) string {
	quotedParts := make([]string, 0, len(arguments))
	for _, part := range arguments {
		quotedPart, quoteError := syntax.Quote(part, syntax.LangBash)
		if quoteError != nil {
			quotedPart = fmt.Sprintf("%q", part)
		}
		quotedParts = append(quotedParts, quotedPart)
	}
	return strings.Join(quotedParts, " ")
}

func (runner *Runner) stdin() io.Reader {
	if runner.Stdin == nil {
		return os.Stdin
	}
	return runner.Stdin
}

func (runner *Runner) stdout() io.Writer {
	if runner.Stdout == nil {
		return os.Stdout
	}
	return runner.Stdout
}

func (runner *Runner) stderr() io.Writer {
	if runner.Stderr == nil {
		return os.Stderr
	}
	return runner.Stderr
}
