package pipeline

import (
	"path/filepath"

	"github.com/sheley/photo-rename-script/internal/config"
)

// FileEntry is one file eligible for renaming. Entries are produced by
// [Discover] and consumed once by [Run].
type FileEntry struct {
	Name      string // Base name.
	FullPath  string
	Extension string // Including the leading dot; empty when absent.
	Size      int64
}

// RenameRecord pairs an original name with the name it was given.
type RenameRecord struct {
	OriginalName string
	NewName      string
}

// Layout describes where a run reads and writes.
type Layout struct {
	Dir        string // Directory being processed.
	Base       string // Base name of Dir; prefixes every target name.
	BackupName string // Name of the backup subdirectory inside Dir.
}

// NewLayout derives the layout from a validated config.
func NewLayout(cfg *config.Config) Layout {
	return Layout{
		Dir:        cfg.Dir,
		Base:       cfg.DirBase(),
		BackupName: cfg.BackupDirName,
	}
}

// BackupDir returns the full path of the backup subdirectory.
func (l Layout) BackupDir() string {
	return filepath.Join(l.Dir, l.BackupName)
}
