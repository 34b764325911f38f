package resolve

import (
	"errors"
	"fmt"

	"github.com/temirov/fixit/internal/registry"
)

// ErrEmptyCommand reports a template that expanded to no arguments.
var ErrEmptyCommand = errors.New("command template expanded to an empty command")

// Command is a fully resolved invocation for one file.
type Command struct {
	Program    string
	Args       []string
	Language   string
	Tool       string
	ConfigPath string
}

// BuildCommand expands the tool template and splits off the program.
func BuildCommand(executablePath string, tool *registry.Tool, configPath string, hasConfig bool) (Command, error) {
	expandedArguments := tool.Template.Expand(executablePath, configPath, hasConfig)
	if len(expandedArguments) == 0 {
		return Command{}, fmt.Errorf("%s: %w", tool.Executable, ErrEmptyCommand)
	}
	command := Command{
		Program: expandedArguments[0],
		Args:    append([]string{}, expandedArguments[1:]...),
		Tool:    tool.Executable,
	}
	if hasConfig {
		command.ConfigPath = configPath
	}
	return command, nil
}

// Resolve runs the whole pipeline for an absolute file path of a known language.
func (resolver *Resolver) Resolve(filePath string, language *registry.Language) (Command, error) {
	tool, configPath, hasConfig := resolver.SelectTool(filePath, language)
	executablePath := resolver.Executable(filePath, language, tool)
	command, buildError := BuildCommand(executablePath, tool, configPath, hasConfig)
	if buildError != nil {
		return Command{}, buildError
	}
	command.Language = language.Name
	return command, nil
}
