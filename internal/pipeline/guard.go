package pipeline

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/sheley/photo-rename-script/internal/naming"
)

// Validate runs the pre-flight checks. It never mutates the filesystem.
//
//  1. l.Dir must exist ([NotFoundError]).
//  2. l.Dir must be a directory ([NotADirectoryError]).
//  3. If the backup subdirectory exists and some file is already named
//     "<base>_<digit>...", the directory is treated as processed
//     ([AlreadyProcessedError]). Either condition alone passes.
func Validate(fsys afero.Fs, l Layout) error {
	fi, err := fsys.Stat(l.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Path: l.Dir}
		}
		return fmt.Errorf("stat %s: %w", l.Dir, err)
	}
	if !fi.IsDir() {
		return &NotADirectoryError{Path: l.Dir}
	}

	backupExists, err := afero.DirExists(fsys, l.BackupDir())
	if err != nil {
		return fmt.Errorf("stat %s: %w", l.BackupDir(), err)
	}
	if !backupExists {
		return nil
	}

	infos, err := afero.ReadDir(fsys, l.Dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", l.Dir, err)
	}
	re := naming.ProcessedPattern(l.Base)
	for _, e := range infos {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if re.MatchString(e.Name()) {
			return &AlreadyProcessedError{Dir: l.Dir, Match: e.Name(), BackupDir: l.BackupDir()}
		}
	}
	return nil
}
