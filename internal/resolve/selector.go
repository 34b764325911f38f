package resolve

import (
	"path/filepath"

	"github.com/temirov/fixit/internal/ancestors"
	"github.com/temirov/fixit/internal/registry"
)

// SelectTool returns the first tool of language whose configuration file is
// found in an ancestor directory of filePath, together with that file's path.
// When no tool has a configuration, the first tool is returned with hasConfig false.
func (resolver *Resolver) SelectTool(filePath string, language *registry.Language) (tool *registry.Tool, configPath string, hasConfig bool) {
	for _, candidateTool := range language.Tools {
		if discoveredPath, found := FindConfig(filePath, candidateTool); found {
			return candidateTool, discoveredPath, true
		}
	}
	return language.Tools[0], "", false
}

// FindConfig searches the ancestors of filePath for the first existing
// configuration file of tool. Within one directory the tool's file order decides.
func FindConfig(filePath string, tool *registry.Tool) (string, bool) {
	return ancestors.Search(filePath, func(directory string) (string, bool) {
		for _, configFileName := range tool.ConfigFiles {
			candidatePath := filepath.Join(directory, configFileName)
			if isRegularFile(candidatePath) {
				return candidatePath, true
			}
		}
		return "", false
	})
}
