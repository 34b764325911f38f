// Package cli provides the command line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/fixit/internal/config"
	"github.com/temirov/fixit/internal/dispatch"
	"github.com/temirov/fixit/internal/utils"
)

const (
	configFlagName    = "config"
	exclusionFlagName = "exclude"
	exclusionFlagKey  = "e"
	dryRunFlagName    = "dry-run"
	jobsFlagName      = "jobs"
	jobsFlagKey       = "j"
	versionFlagName   = "version"
	versionTemplate   = "fixit version: %s\n"

	rootUse              = "fixit [paths...]"
	rootShortDescription = "run the right formatter or linter for every source file"
	rootLongDescription  = `fixit walks the given paths (the current directory by default), detects the
language of every file, picks the formatter or linter configured nearest to it
and runs each distinct command once with all of its files appended.
The exit status is the first non-zero status reported by a tool, or zero.`
	rootUsageExample = `  # Format everything below the current directory
  fixit

  # Show the commands for two directories without running them
  fixit --dry-run ./web ./api

  # Skip generated code and resolve tools on four workers
  fixit -e '*.pb.go' -e generated/ -j 4 .`

	configFlagDescription    = "path to a configuration file (default ./" + utils.ConfigFileName + ")"
	exclusionFlagDescription = "exclude entries matching pattern (repeatable)"
	dryRunFlagDescription    = "print the resolved commands without running them"
	jobsFlagDescription      = "number of workers resolving tools for files"
	versionFlagDescription   = "display application version"

	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	invalidJobsErrorFormat      = "--%s must be at least 1, got %d"
)

// Execute runs the fixit application with the process arguments.
func Execute(ctx context.Context, logger *zap.Logger) error {
	rootCommand := NewRootCommand(logger)
	rootCommand.SetArgs(os.Args[1:])
	return rootCommand.ExecuteContext(ctx)
}

// rootOptions stores the values of the root command flags.
type rootOptions struct {
	configFilePath    string
	exclusionPatterns []string
	dryRun            bool
	jobs              int
	showVersion       bool
}

// NewRootCommand builds the root Cobra command. A non-zero aggregate status is
// returned as *ExitError.
func NewRootCommand(logger *zap.Logger) *cobra.Command {
	var options rootOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			runOptions, optionsError := options.dispatchOptions(command, arguments, logger)
			if optionsError != nil {
				return optionsError
			}
			if exitCode := dispatch.Run(command.Context(), runOptions); exitCode != 0 {
				return &ExitError{Code: exitCode}
			}
			return nil
		},
	}

	flagSet := rootCommand.Flags()
	flagSet.StringVar(&options.configFilePath, configFlagName, "", configFlagDescription)
	flagSet.StringArrayVarP(&options.exclusionPatterns, exclusionFlagName, exclusionFlagKey, nil, exclusionFlagDescription)
	registerSwitchFlag(flagSet, &options.dryRun, dryRunFlagName, dryRunFlagDescription)
	flagSet.IntVarP(&options.jobs, jobsFlagName, jobsFlagKey, config.DefaultJobs, jobsFlagDescription)
	flagSet.BoolVar(&options.showVersion, versionFlagName, false, versionFlagDescription)
	return rootCommand
}

// dispatchOptions layers flags over the configuration files.
func (options *rootOptions) dispatchOptions(command *cobra.Command, arguments []string, logger *zap.Logger) (dispatch.Options, error) {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return dispatch.Options{}, fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configFilePath,
	})
	if configurationError != nil {
		return dispatch.Options{}, configurationError
	}

	flagSet := command.Flags()
	jobs := applicationConfiguration.JobsOrDefault()
	if flagSet.Changed(jobsFlagName) {
		if options.jobs < 1 {
			return dispatch.Options{}, fmt.Errorf(invalidJobsErrorFormat, jobsFlagName, options.jobs)
		}
		jobs = options.jobs
	}
	dryRun := applicationConfiguration.DryRunEnabled()
	if flagSet.Changed(dryRunFlagName) {
		dryRun = options.dryRun
	}

	return dispatch.Options{
		Paths:             arguments,
		ExclusionPatterns: utils.DeduplicatePatterns(append(append([]string{}, applicationConfiguration.Exclude...), options.exclusionPatterns...)),
		Jobs:              jobs,
		DryRun:            dryRun,
		Stdout:            command.OutOrStdout(),
		Stderr:            command.ErrOrStderr(),
		Logger:            logger,
	}, nil
}
