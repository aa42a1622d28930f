package service

import "fmt"

// FetchError marks a failed read of one of the planner's required inputs.
// Any FetchError aborts the run before the destructive replace step.
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func fetchErr(resource string, err error) error {
	return &FetchError{Resource: resource, Err: err}
}

// ConfigurationError marks missing or unusable planning configuration, such
// as a week without any work periods.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Msg
}

func configErr(format string, args ...any) error {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}
