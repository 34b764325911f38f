// Package walker enumerates candidate files under root paths.
package walker

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/fixit/internal/utils"
)

const (
	cannotReadPathMessage      = "cannot read path"
	cannotReadDirectoryMessage = "cannot read directory"
	pathFieldName              = "path"
)

// prunedDirectoryNames are skipped at every depth below a root.
var prunedDirectoryNames = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	"node_modules": {},
	"vendor":       {},
	"target":       {},
	"build":        {},
	"dist":         {},
	".venv":        {},
	"venv":         {},
	"__pycache__":  {},
}

// IsPrunedDirectory reports whether a directory name is always skipped.
func IsPrunedDirectory(directoryName string) bool {
	_, pruned := prunedDirectoryNames[directoryName]
	return pruned
}

// Walker walks root paths without following symbolic links.
type Walker struct {
	// ExclusionPatterns are user patterns evaluated with utils.MatchesEntryName.
	ExclusionPatterns []string
	Logger            *zap.Logger
}

// Walk calls visit for root itself when it is a regular file, or for every
// regular file below it when it is a directory. It returns the number of
// path errors reported.
func (walker *Walker) Walk(root string, visit func(filePath string)) int {
	logger := utils.LoggerOrNop(walker.Logger)

	rootInformation, statError := os.Stat(root)
	if statError != nil {
		logger.Error(cannotReadPathMessage, zap.String(pathFieldName, root), zap.Error(statError))
		return 1
	}
	if rootInformation.Mode().IsRegular() {
		visit(root)
		return 0
	}
	if !rootInformation.IsDir() {
		return 0
	}
	return walker.walkDirectory(root, visit, logger)
}

func (walker *Walker) walkDirectory(directoryPath string, visit func(filePath string), logger *zap.Logger) int {
	reportedErrors := 0
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		logger.Error(cannotReadDirectoryMessage, zap.String(pathFieldName, directoryPath), zap.Error(readDirectoryError))
		reportedErrors++
	}

	for _, directoryEntry := range directoryEntries {
		entryType := directoryEntry.Type()
		if entryType&os.ModeSymlink != 0 {
			continue
		}
		entryName := directoryEntry.Name()
		entryPath := filepath.Join(directoryPath, entryName)
		isDirectory := directoryEntry.IsDir()

		if utils.MatchesEntryName(entryName, isDirectory, walker.ExclusionPatterns) {
			continue
		}
		if isDirectory {
			if IsPrunedDirectory(entryName) {
				continue
			}
			reportedErrors += walker.walkDirectory(entryPath, visit, logger)
			continue
		}
		if entryType.IsRegular() {
			visit(entryPath)
		}
	}
	return reportedErrors
}
