package cli

import "fmt"

// ExitError carries a non-zero process exit status out of the root command
// so that only main calls os.Exit.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (exitError *ExitError) Error() string {
	if exitError.Err != nil {
		return exitError.Err.Error()
	}
	return fmt.Sprintf("exit status %d", exitError.Code)
}

// Unwrap returns the underlying error, if any.
func (exitError *ExitError) Unwrap() error {
	return exitError.Err
}
