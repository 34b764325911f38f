// Package registry holds the static language and tool tables that drive
// formatter selection. The tables are built once and never mutated.
package registry

// Language names used in the registry.
const (
	LanguagePython     = "python"
	LanguageJavaScript = "javascript"
	LanguageTypeScript = "typescript"
	LanguageGo         = "go"
	LanguageRust       = "rust"
	LanguageJava       = "java"
	LanguagePHP        = "php"
	LanguageCSS        = "css"
	LanguageHTML       = "html"
	LanguageJSON       = "json"
	LanguageYAML       = "yaml"
	LanguageMarkdown   = "markdown"
	LanguageShell      = "shell"
	LanguageSQL        = "sql"
	LanguageDockerfile = "dockerfile"
)

// Language describes how files of one kind are recognized and which tools handle them.
type Language struct {
	Name string
	// Extensions holds extensions with a leading dot, or exact file names such as "Dockerfile".
	Extensions []string
	// Tools are ordered by priority.
	Tools []*Tool
	// DefaultExecutable is used verbatim when no tool executable can be located.
	DefaultExecutable string
	// VendorDirectory holds the path segments of the project-local binary directory, if any.
	VendorDirectory []string
}

var (
	nodeVendorDirectory     = []string{"node_modules", ".bin"}
	composerVendorDirectory = []string{"vendor", "bin"}

	javaScriptTools   = []*Tool{eslintTool, prettierTool}
	prettierOnlyTools = []*Tool{prettierTool}
)

// languages is ordered; detection returns the first match.
var languages = []*Language{
	{
		Name:              LanguagePython,
		Extensions:        []string{".py", ".pyw"},
		Tools:             []*Tool{blackTool, flake8Tool, pylintTool},
		DefaultExecutable: "black",
	},
	{
		Name:              LanguageJavaScript,
		Extensions:        []string{".js", ".mjs", ".cjs", ".jsx"},
		Tools:             javaScriptTools,
		DefaultExecutable: "eslint",
		VendorDirectory:   nodeVendorDirectory,
	},
	{
		Name:              LanguageTypeScript,
		Extensions:        []string{".ts", ".tsx"},
		Tools:             javaScriptTools,
		DefaultExecutable: "eslint",
		VendorDirectory:   nodeVendorDirectory,
	},
	{
		Name:              LanguageGo,
		Extensions:        []string{".go"},
		Tools:             []*Tool{gofmtTool, golangciLintTool},
		DefaultExecutable: "gofmt",
	},
	{
		Name:              LanguageRust,
		Extensions:        []string{".rs"},
		Tools:             []*Tool{rustfmtTool},
		DefaultExecutable: "rustfmt",
	},
	{
		Name:              LanguageJava,
		Extensions:        []string{".java"},
		Tools:             []*Tool{clangFormatTool, googleJavaFormatTool},
		DefaultExecutable: "clang-format",
	},
	{
		Name:              LanguagePHP,
		Extensions:        []string{".php"},
		Tools:             []*Tool{phpcbfTool, phpCsFixerTool},
		DefaultExecutable: "phpcbf",
		VendorDirectory:   composerVendorDirectory,
	},
	{
		Name:              LanguageCSS,
		Extensions:        []string{".css", ".scss", ".sass", ".less"},
		Tools:             []*Tool{prettierTool, stylelintTool},
		DefaultExecutable: "prettier",
		VendorDirectory:   nodeVendorDirectory,
	},
	{
		Name:              LanguageHTML,
		Extensions:        []string{".html", ".htm"},
		Tools:             prettierOnlyTools,
		DefaultExecutable: "prettier",
		VendorDirectory:   nodeVendorDirectory,
	},
	{
		Name:              LanguageJSON,
		Extensions:        []string{".json", ".jsonc"},
		Tools:             prettierOnlyTools,
		DefaultExecutable: "prettier",
		VendorDirectory:   nodeVendorDirectory,
	},
	{
		Name:              LanguageYAML,
		Extensions:        []string{".yaml", ".yml"},
		Tools:             prettierOnlyTools,
		DefaultExecutable: "prettier",
		VendorDirectory:   nodeVendorDirectory,
	},
	{
		Name:              LanguageMarkdown,
		Extensions:        []string{".md", ".markdown"},
		Tools:             prettierOnlyTools,
		DefaultExecutable: "prettier",
		VendorDirectory:   nodeVendorDirectory,
	},
	{
		Name:              LanguageShell,
		Extensions:        []string{".sh", ".bash", ".zsh", ".fish"},
		Tools:             []*Tool{shellcheckTool},
		DefaultExecutable: "shellcheck",
	},
	{
		Name:              LanguageSQL,
		Extensions:        []string{".sql"},
		Tools:             []*Tool{sqlfluffTool},
		DefaultExecutable: "sqlfluff",
	},
	{
		Name:              LanguageDockerfile,
		Extensions:        []string{"Dockerfile"},
		Tools:             []*Tool{hadolintTool},
		DefaultExecutable: "hadolint",
	},
}

// Languages returns the registered languages in detection order.
func Languages() []*Language {
	return append([]*Language(nil), languages...)
}

// Lookup returns the language registered under name.
func Lookup(name string) (*Language, bool) {
	for _, language := range languages {
		if language.Name == name {
			return language, true
		}
	}
	return nil, false
}
