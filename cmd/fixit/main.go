package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/temirov/fixit/internal/cli"
	"github.com/temirov/fixit/internal/utils"
)

// main is the entry point for the fixit command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	os.Exit(run(loggerInstance))
}

func run(loggerInstance *zap.Logger) int {
	defer func() {
		_ = loggerInstance.Sync()
	}()
	applicationExecutionError := cli.Execute(context.Background(), loggerInstance)
	if applicationExecutionError == nil {
		return 0
	}
	var exitError *cli.ExitError
	if errors.As(applicationExecutionError, &exitError) {
		if exitError.Err != nil {
			loggerInstance.Error(utils.ApplicationExecutionFailedMessage, zap.Error(exitError.Err))
		}
		return exitError.Code
	}
	loggerInstance.Error(utils.ApplicationExecutionFailedMessage, zap.Error(applicationExecutionError))
	return 1
}
