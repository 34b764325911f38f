package registry

import (
	"path/filepath"
	"strings"
)

// Detect returns the first registered language recognizing filePath.
// The extension is compared case-insensitively; a file without an extension
// is matched by its exact base name instead.
func Detect(filePath string) (*Language, bool) {
	identity := fileIdentity(filePath)
	if identity == "" {
		return nil, false
	}
	for _, language := range languages {
		for _, extension := range language.Extensions {
			if normalizeIdentity(extension) == identity {
				return language, true
			}
		}
	}
	return nil, false
}

func fileIdentity(filePath string) string {
	baseName := filepath.Base(filePath)
	if baseName == "." || baseName == string(filepath.Separator) {
		return ""
	}
	extension := filepath.Ext(baseName)
	if extension != "" && extension != "." {
		return normalizeIdentity(extension)
	}
	return normalizeIdentity(baseName)
}

func normalizeIdentity(value string) string {
	return strings.ToLower(strings.TrimPrefix(value, "."))
}
