// Package pipeline validates the target directory, enumerates the files to
// rename, and runs the backup-then-rename loop with batch summary reporting.
//
// Flow for one run:
//
//	Validate  → directory exists, is a directory, is not already processed
//	Discover  → visible regular files, collated case-insensitively
//	Run       → per file: token → target name → backup copy → in-place rename
//
// Fatal errors (see errors.go) are returned before any mutation. Per-file
// failures are logged, counted in [RunStats.Failed], and the loop continues.
package pipeline
