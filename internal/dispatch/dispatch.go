// Package dispatch runs one complete pass: walk the roots, resolve a command
// for every recognized file, batch identical commands and run each batch.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/fixit/internal/batch"
	"github.com/temirov/fixit/internal/config"
	"github.com/temirov/fixit/internal/registry"
	"github.com/temirov/fixit/internal/resolve"
	"github.com/temirov/fixit/internal/runner"
	"github.com/temirov/fixit/internal/utils"
	"github.com/temirov/fixit/internal/walker"
)

const (
	defaultRoot = "."

	cannotReadPathMessage       = "cannot read path"
	cannotResolveMessage        = "cannot resolve command"
	cannotReadIgnoreFileMessage = "cannot read ignore file"
	pathFieldName               = "path"
)

var errNotRegularFile = errors.New("not a regular file")

// Options configures a run.
type Options struct {
	// Paths are the roots to walk. No paths means the current directory.
	Paths             []string
	ExclusionPatterns []string
	// Jobs bounds the resolution workers. Values below one mean one.
	Jobs   int
	DryRun bool
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
	// LookPath replaces the system search path lookup for resolution and availability checks.
	LookPath resolve.LookPathFunc
}

type resolution struct {
	filePath string
	command  resolve.Command
	resolved bool
	err      error
}

// Run performs the pass and returns the first non-zero batch exit status, or zero.
func Run(ctx context.Context, options Options) int {
	logger := utils.LoggerOrNop(options.Logger)

	candidates := discover(options, logger)
	resolutions := resolveAll(options, candidates)

	collection := batch.NewCollection()
	for _, result := range resolutions {
		if result.err != nil {
			logFailure(logger, result)
			continue
		}
		if !result.resolved {
			continue
		}
		collection.Add(result.filePath, result.command.Program, result.command.Args)
	}

	batchRunner := &runner.Runner{
		Stdout: options.Stdout,
		Stderr: options.Stderr,
		Logger: logger,
		DryRun: options.DryRun,
	}
	if options.LookPath != nil {
		batchRunner.LookPath = options.LookPath
	}

	aggregateExitCode := 0
	for _, currentBatch := range collection.Batches() {
		exitCode := batchRunner.Run(ctx, currentBatch.Program, currentBatch.Args, currentBatch.Files)
		if exitCode != 0 && aggregateExitCode == 0 {
			aggregateExitCode = exitCode
		}
	}
	return aggregateExitCode
}

// discover walks every root in argument order and returns candidate files in discovery order.
func discover(options Options, logger *zap.Logger) []string {
	roots := options.Paths
	if len(roots) == 0 {
		roots = []string{defaultRoot}
	}

	var candidates []string
	for _, root := range roots {
		rootWalker := &walker.Walker{
			ExclusionPatterns: rootExclusionPatterns(root, options.ExclusionPatterns, logger),
			Logger:            logger,
		}
		rootWalker.Walk(root, func(filePath string) {
			candidates = append(candidates, filePath)
		})
	}
	return candidates
}

// rootExclusionPatterns combines the run patterns with the root's ignore file, if any.
func rootExclusionPatterns(root string, patterns []string, logger *zap.Logger) []string {
	rootInformation, statError := os.Stat(root)
	if statError != nil || !rootInformation.IsDir() {
		return patterns
	}
	ignoreFilePath := filepath.Join(root, config.IgnoreFileName)
	ignorePatterns, loadError := config.LoadIgnoreFilePatterns(ignoreFilePath)
	if loadError != nil {
		logger.Warn(cannotReadIgnoreFileMessage, zap.String(pathFieldName, ignoreFilePath), zap.Error(loadError))
		return patterns
	}
	if len(ignorePatterns) == 0 {
		return patterns
	}
	return utils.DeduplicatePatterns(append(append([]string{}, patterns...), ignorePatterns...))
}

// resolveAll resolves candidates on up to options.Jobs workers. Results keep
// the discovery order regardless of the worker count.
func resolveAll(options Options, candidates []string) []resolution {
	resolver := resolve.NewResolver()
	if options.LookPath != nil {
		resolver.LookPath = options.LookPath
	}
	workerLimit := options.Jobs
	if workerLimit < 1 {
		workerLimit = 1
	}

	resolutions := make([]resolution, len(candidates))
	var group errgroup.Group
	group.SetLimit(workerLimit)
	for index, candidate := range candidates {
		group.Go(func() error {
			resolutions[index] = resolveFile(resolver, candidate)
			return nil
		})
	}
	_ = group.Wait()
	return resolutions
}

func resolveFile(resolver *resolve.Resolver, candidate string) resolution {
	canonicalPath, canonicalError := canonicalize(candidate)
	if canonicalError != nil {
		return resolution{filePath: candidate, err: canonicalError}
	}
	language, detected := registry.Detect(canonicalPath)
	if !detected {
		return resolution{filePath: canonicalPath}
	}
	command, resolveError := resolver.Resolve(canonicalPath, language)
	if resolveError != nil {
		return resolution{filePath: canonicalPath, err: fmt.Errorf("%s: %w", language.Name, resolveError)}
	}
	return resolution{filePath: canonicalPath, command: command, resolved: true}
}

// canonicalize returns the absolute, symlink-free path of a regular file.
func canonicalize(filePath string) (string, error) {
	evaluatedPath, evaluateError := filepath.EvalSymlinks(filePath)
	if evaluateError != nil {
		return "", evaluateError
	}
	absolutePath, absoluteError := filepath.Abs(evaluatedPath)
	if absoluteError != nil {
		return "", absoluteError
	}
	fileInformation, statError := os.Stat(absolutePath)
	if statError != nil {
		return "", statError
	}
	if !fileInformation.Mode().IsRegular() {
		return "", fmt.Errorf("%s: %w", absolutePath, errNotRegularFile)
	}
	return absolutePath, nil
}

func logFailure(logger *zap.Logger, result resolution) {
	if errors.Is(result.err, resolve.ErrEmptyCommand) {
		logger.Error(cannotResolveMessage, zap.String(pathFieldName, result.filePath), zap.Error(result.err))
		return
	}
	logger.Error(cannotReadPathMessage, zap.String(pathFieldName, result.filePath), zap.Error(result.err))
}
