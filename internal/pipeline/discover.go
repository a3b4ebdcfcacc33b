package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Discover lists the files in l.Dir eligible for renaming and returns them
// in processing order. The directory is not traversed recursively.
//
// A file is eligible when it is a regular file (a symlink counts if it
// resolves to one), its name does not start with ".", and it is not the
// backup subdirectory. Order is locale-aware and case-insensitive but not
// numeric-aware, so "10.jpg" sorts before "2.jpg".
func Discover(fsys afero.Fs, l Layout) ([]FileEntry, error) {
	infos, err := afero.ReadDir(fsys, l.Dir)
	if err != nil {
		return nil, err
	}

	var files []FileEntry
	for _, fi := range infos {
		name := fi.Name()
		if strings.HasPrefix(name, ".") || name == l.BackupName {
			continue
		}
		path := filepath.Join(l.Dir, name)
		if fi.Mode()&os.ModeSymlink != 0 {
			resolved, err := fsys.Stat(path)
			if err != nil {
				// Dangling link: nothing to back up.
				continue
			}
			fi = resolved
		}
		if !fi.Mode().IsRegular() {
			continue
		}
		files = append(files, FileEntry{
			Name:      name,
			FullPath:  path,
			Extension: filepath.Ext(name),
			Size:      fi.Size(),
		})
	}

	SortEntries(files)
	return files, nil
}

// SortEntries orders files by name using a case-insensitive collation.
// Names that collate equal fall back to byte order so the result is
// deterministic.
func SortEntries(files []FileEntry) {
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(files, func(i, j int) bool {
		if r := c.CompareString(files[i].Name, files[j].Name); r != 0 {
			return r < 0
		}
		return files[i].Name < files[j].Name
	})
}

// describe renders a short "n files" label for logs.
func describe(files []FileEntry) string {
	if len(files) == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", len(files))
}
