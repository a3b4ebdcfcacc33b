package pipeline

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks on the fatal error types below.
var (
	ErrValidation       = errors.New("invalid target directory")
	ErrAlreadyProcessed = errors.New("directory already processed")
	ErrTargetExists     = errors.New("target name already exists")
)

// NotFoundError reports that the target directory does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string { return "directory not found: " + e.Path }

func (e *NotFoundError) Unwrap() error { return ErrValidation }

// NotADirectoryError reports that the target path is not a directory.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string { return "not a directory: " + e.Path }

func (e *NotADirectoryError) Unwrap() error { return ErrValidation }

// AlreadyProcessedError reports that a previous run appears to have renamed
// this directory: a file named like run output sits next to the backup
// subdirectory. The check is a heuristic.
type AlreadyProcessedError struct {
	Dir       string
	Match     string // First file that looks like run output.
	BackupDir string
}

func (e *AlreadyProcessedError) Error() string {
	return fmt.Sprintf("%s looks already processed (%s exists alongside %s); refusing to run again",
		e.Dir, e.Match, e.BackupDir)
}

func (e *AlreadyProcessedError) Unwrap() error { return ErrAlreadyProcessed }

// FileError is a per-file failure. It is logged and counted, never fatal.
type FileError struct {
	Name string
	Op   string // "claim", "backup" or "rename".
	Err  error
}

func (e *FileError) Error() string { return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err) }

func (e *FileError) Unwrap() error { return e.Err }
