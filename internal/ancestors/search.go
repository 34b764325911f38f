// Package ancestors walks parent directories looking for the first match.
package ancestors

import "path/filepath"

// Predicate inspects one directory and reports a result when it matches.
type Predicate[T any] func(directory string) (T, bool)

// Search tests each ancestor directory of startPath, nearest first, and
// returns the first result reported by predicate. The filesystem root and
// the relative directory "." are never tested.
func Search[T any](startPath string, predicate Predicate[T]) (T, bool) {
	var zero T
	currentDirectory := filepath.Dir(filepath.Clean(startPath))
	if currentDirectory == filepath.Clean(startPath) {
		return zero, false
	}
	for {
		if currentDirectory == "." || isRoot(currentDirectory) {
			return zero, false
		}
		if result, matched := predicate(currentDirectory); matched {
			return result, true
		}
		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			return zero, false
		}
		currentDirectory = parentDirectory
	}
}

func isRoot(directory string) bool {
	return filepath.Dir(directory) == directory
}
