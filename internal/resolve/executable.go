package resolve

import (
	"path/filepath"

	"github.com/temirov/fixit/internal/ancestors"
	"github.com/temirov/fixit/internal/registry"
)

// Executable picks the program to run for tool: a project-local vendored
// binary first, then the search path, then the language default verbatim.
func (resolver *Resolver) Executable(filePath string, language *registry.Language, tool *registry.Tool) string {
	if vendoredPath, found := FindVendored(filePath, language, tool); found {
		return vendoredPath
	}
	if searchPath, lookError := resolver.lookPath(tool.Executable); lookError == nil && searchPath != "" {
		return searchPath
	}
	return language.DefaultExecutable
}

// FindVendored searches the ancestors of filePath for the language's vendor
// binary directory holding an executable named after tool.
func FindVendored(filePath string, language *registry.Language, tool *registry.Tool) (string, bool) {
	if len(language.VendorDirectory) == 0 {
		return "", false
	}
	return ancestors.Search(filePath, func(directory string) (string, bool) {
		pathSegments := append([]string{directory}, language.VendorDirectory...)
		pathSegments = append(pathSegments, tool.Executable)
		candidatePath := filepath.Join(pathSegments...)
		if isNonDirectory(candidatePath) {
			return candidatePath, true
		}
		return "", false
	})
}
