package utils

// Configuration file constants used across the project.
const (
	// ConfigFileName is the name of the local configuration file.
	ConfigFileName = ".fixit.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".fixit"
	// GlobalConfigFileName is the name of the global configuration file.
	GlobalConfigFileName = "config.yaml"
)

// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// ApplicationExecutionFailedMessage is logged when the command fails before or outside a tool run.
const ApplicationExecutionFailedMessage = "application execution failed"
