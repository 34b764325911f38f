package registry

// Tool describes one formatter or linter executable.
type Tool struct {
	// Executable is the bare program name looked up in vendor directories and on PATH.
	Executable string
	// ConfigFiles lists recognized configuration file names; the first existing one wins.
	ConfigFiles []string
	// Template builds the invocation arguments.
	Template *CommandTemplate
}

var (
	eslintTool = &Tool{
		Executable:  "eslint",
		ConfigFiles: []string{".eslintrc.js", ".eslintrc.cjs", ".eslintrc.json", ".eslintrc.yml", ".eslintrc.yaml", "eslint.config.js"},
		Template:    eslintTemplate,
	}
	prettierTool = &Tool{
		Executable:  "prettier",
		ConfigFiles: []string{".prettierrc", ".prettierrc.json", ".prettierrc.yml", ".prettierrc.yaml", "prettier.config.js"},
		Template:    prettierTemplate,
	}
	stylelintTool = &Tool{
		Executable:  "stylelint",
		ConfigFiles: []string{".stylelintrc", ".stylelintrc.js", ".stylelintrc.json", ".stylelintrc.yaml", ".stylelintrc.yml", "stylelint.config.js"},
		Template:    eslintTemplate,
	}
	blackTool = &Tool{
		Executable:  "black",
		ConfigFiles: []string{"pyproject.toml", "setup.cfg", ".flake8", "tox.ini"},
		Template:    simpleConfigTemplate,
	}
	flake8Tool = &Tool{
		Executable:  "flake8",
		ConfigFiles: []string{".flake8", "setup.cfg", "tox.ini"},
		Template:    simpleConfigTemplate,
	}
	pylintTool = &Tool{
		Executable:  "pylint",
		ConfigFiles: []string{".pylintrc", "pylintrc", "pyproject.toml"},
		Template:    simpleConfigTemplate,
	}
	gofmtTool = &Tool{
		Executable:  "gofmt",
		ConfigFiles: []string{".gofmt.toml", ".gofmt.json"},
		Template:    gofmtTemplate,
	}
	golangciLintTool = &Tool{
		Executable:  "golangci-lint",
		ConfigFiles: []string{".golangci.yml", ".golangci.yaml", ".golangci.json"},
		Template:    simpleConfigTemplate,
	}
	rustfmtTool = &Tool{
		Executable:  "rustfmt",
		ConfigFiles: []string{".rustfmt.toml", "rustfmt.toml"},
		Template:    rustfmtTemplate,
	}
	clangFormatTool = &Tool{
		Executable:  "clang-format",
		ConfigFiles: []string{".clang-format", "clang-format.yaml", "clang-format.json"},
		Template:    clangFormatTemplate,
	}
	googleJavaFormatTool = &Tool{
		Executable:  "google-java-format",
		ConfigFiles: []string{"google-java-format.xml"},
		Template:    clangFormatTemplate,
	}
	phpcbfTool = &Tool{
		Executable:  "phpcbf",
		ConfigFiles: []string{"phpcs.xml", "phpcs.xml.dist"},
		Template:    phpcbfTemplate,
	}
	phpCsFixerTool = &Tool{
		Executable:  "php-cs-fixer",
		ConfigFiles: []string{".php-cs-fixer", ".php-cs-fixer.php", ".php-cs-fixer.dist", ".php-cs-fixer.dist.php"},
		Template:    simpleConfigTemplate,
	}
	shellcheckTool = &Tool{
		Executable:  "shellcheck",
		ConfigFiles: []string{".shellcheckrc"},
		Template:    rcfileTemplate,
	}
	sqlfluffTool = &Tool{
		Executable:  "sqlfluff",
		ConfigFiles: []string{".sqlfluff", ".sqlfluff.ini", ".sqlfluff.cfg", "pyproject.toml"},
		Template:    sqlfluffTemplate,
	}
	hadolintTool = &Tool{
		Executable:  "hadolint",
		ConfigFiles: []string{".hadolint.yaml", ".hadolint.yml"},
		Template:    simpleConfigTemplate,
	}
)
