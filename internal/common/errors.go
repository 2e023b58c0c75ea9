package common

import "fmt"

// ConfigError is returned for general configuration loading and validation errors.
type ConfigError struct {
	Op     string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error during '%s': %s", e.Op, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// FileIOError is returned for file I/O related errors.
type FileIOError struct {
	Op     string
	Reason string
	Err    error
}

func (e *FileIOError) Error() string {
	return fmt.Sprintf("file I/O error during '%s': %s", e.Op, e.Reason)
}

func (e *FileIOError) Unwrap() error {
	return e.Err
}

// InvalidConnStringError is returned when a connection string cannot be parsed.
type InvalidConnStringError struct {
	Reason string
	Err    error
}

func (e *InvalidConnStringError) Error() string {
	return fmt.Sprintf("invalid connection string: %s", e.Reason)
}

func (e *InvalidConnStringError) Unwrap() error {
	return e.Err
}

// DatabaseConnectionError is returned when a connection to a database fails.
type DatabaseConnectionError struct {
	Database string
	Reason   string
	Err      error
}

func (e *DatabaseConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to database '%s': %s", e.Database, e.Reason)
}

func (e *DatabaseConnectionError) Unwrap() error {
	return e.Err
}
