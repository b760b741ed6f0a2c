package bandit

import "fmt"

// ConfigurationError reports malformed distribution parameters at
// construction. It is never recoverable.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "bandit: invalid configuration: " + e.Reason
}

func configErrorf(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// InvalidActionError reports a pull of an arm index outside [0, Arms).
type InvalidActionError struct {
	Action int
	Arms   int
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("bandit: action %d outside [0, %d)", e.Action, e.Arms)
}
