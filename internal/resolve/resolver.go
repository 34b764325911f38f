// Package resolve turns a detected file into the concrete command that formats it.
package resolve

import (
	"os"
	"os/exec"
)

// LookPathFunc maps a bare executable name to a path on the program search path.
type LookPathFunc func(executableName string) (string, error)

// Resolver selects tools, locates executables and builds commands for files.
// The zero value uses exec.LookPath.
type Resolver struct {
	LookPath LookPathFunc
}

// NewResolver returns a resolver backed by the system search path.
func NewResolver() *Resolver {
	return &Resolver{LookPath: exec.LookPath}
}

func (resolver *Resolver) lookPath(executableName string) (string, error) {
	if resolver == nil || resolver.LookPath == nil {
		return exec.LookPath(executableName)
	}
	return resolver.LookPath(executableName)
}

func isRegularFile(path string) bool {
	fileInformation, statError := os.Stat(path)
	return statError == nil && fileInformation.Mode().IsRegular()
}

func isNonDirectory(path string) bool {
	fileInformation, statError := os.Stat(path)
	return statError == nil && !fileInformation.IsDir()
}
