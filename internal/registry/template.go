package registry

import "strings"

const (
	// ExecutablePlaceholder is replaced with the resolved executable path.
	ExecutablePlaceholder = "{exec}"
	// ConfigPlaceholder is replaced with the discovered configuration file path.
	ConfigPlaceholder = "{config}"
)

// CommandTemplate holds the two argument patterns of a tool invocation.
// WithoutConfig never references ConfigPlaceholder.
type CommandTemplate struct {
	WithConfig    []string
	WithoutConfig []string
}

// Expand substitutes the placeholders of the pattern selected by hasConfig.
// The first element of the result is the program to execute.
func (template *CommandTemplate) Expand(executablePath string, configPath string, hasConfig bool) []string {
	selectedPattern := template.WithoutConfig
	if hasConfig {
		selectedPattern = template.WithConfig
	}

	expandedArguments := make([]string, 0, len(selectedPattern))
	for _, slot := range selectedPattern {
		resolvedSlot := strings.ReplaceAll(slot, ExecutablePlaceholder, executablePath)
		if hasConfig {
			resolvedSlot = strings.ReplaceAll(resolvedSlot, ConfigPlaceholder, configPath)
		}
		expandedArguments = append(expandedArguments, resolvedSlot)
	}
	return expandedArguments
}

var (
	prettierTemplate = &CommandTemplate{
		WithConfig:    []string{ExecutablePlaceholder, "--write", "--config", ConfigPlaceholder},
		WithoutConfig: []string{ExecutablePlaceholder, "--write"},
	}
	eslintTemplate = &CommandTemplate{
		WithConfig:    []string{ExecutablePlaceholder, "--fix", "--config", ConfigPlaceholder},
		WithoutConfig: []string{ExecutablePlaceholder, "--fix"},
	}
	simpleConfigTemplate = &CommandTemplate{
		WithConfig:    []string{ExecutablePlaceholder, "--config", ConfigPlaceholder},
		WithoutConfig: []string{ExecutablePlaceholder},
	}
	rcfileTemplate = &CommandTemplate{
		WithConfig:    []string{ExecutablePlaceholder, "--rcfile", ConfigPlaceholder},
		WithoutConfig: []string{ExecutablePlaceholder},
	}
	gofmtTemplate = &CommandTemplate{
		WithConfig:    []string{ExecutablePlaceholder, "-w", "-config", ConfigPlaceholder},
		WithoutConfig: []string{ExecutablePlaceholder, "-s", "-w"},
	}
	rustfmtTemplate = &CommandTemplate{
		WithConfig:    []string{ExecutablePlaceholder, "--config-path", ConfigPlaceholder},
		WithoutConfig: []string{ExecutablePlaceholder},
	}
	clangFormatTemplate = &CommandTemplate{
		WithConfig:    []string{ExecutablePlaceholder, "-style=file:" + ConfigPlaceholder},
		WithoutConfig: []string{ExecutablePlaceholder},
	}
	phpcbfTemplate = &CommandTemplate{
		WithConfig:    []string{"php", "-dmemory_limit=-1", ExecutablePlaceholder, "--standard=" + ConfigPlaceholder},
		WithoutConfig: []string{"php", "-dmemory_limit=-1", ExecutablePlaceholder, "--standard=PSR12"},
	}
	sqlfluffTemplate = &CommandTemplate{
		WithConfig:    []string{ExecutablePlaceholder, "format", "--dialect", "ansi", "--config", ConfigPlaceholder},
		WithoutConfig: []string{ExecutablePlaceholder, "format", "--dialect", "ansi"},
	}
)
