// Package config holds runtime configuration: defaults, config-file and
// environment layering, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sheley/photo-rename-script/internal/sequence"
)

// DefaultBackupDirName is the subdirectory that receives copies of the
// originals before they are renamed.
const DefaultBackupDirName = "lab scans"

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by the config file, environment and flags (see [NewCommand]), and
// finally resolved by [Config.Validate].
type Config struct {
	// Positional arguments, kept raw until Validate resolves them.
	Dir         string // Default: current working directory.
	StartMode   string // "x"/"X", "0", "00"; anything else is Default.
	SkipNumbers string // "2,5" or "[2,5]".
	Suffix      string // Appended verbatim after the token.

	// Behavior.
	BackupDirName string // Default: "lab scans".
	DryRun        bool
	VerifyBackup  bool // Hash source and copy after each backup.

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	ConfigFile string    // Optional explicit config file.

	// Derived by Validate.
	Mode sequence.StartMode
	Skip sequence.SkipSet
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		BackupDirName: DefaultBackupDirName,
		ColorMode:     ColorAuto,
		Skip:          sequence.SkipSet{},
	}
}

// SkipNumberParseError reports a skip list entry that is not an integer.
type SkipNumberParseError struct {
	Input string // Whole raw value.
	Token string // Offending entry.
}

func (e *SkipNumberParseError) Error() string {
	return fmt.Sprintf("invalid skip number %q in %q (use comma-separated integers, e.g. 2,5 or [2,5])", e.Token, e.Input)
}

// ParseSkipNumbers parses "1,2,3" or "[1,2,3]" into a skip set. Whitespace
// around entries and empty entries are ignored; any other non-integer entry
// fails the whole parse.
func ParseSkipNumbers(raw string) (sequence.SkipSet, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = s[1 : len(s)-1]
	}
	set := sequence.SkipSet{}
	if strings.TrimSpace(s) == "" {
		return set, nil
	}
	for _, part := range strings.Split(s, ",") {
		tok := strings.TrimSpace(part)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &SkipNumberParseError{Input: raw, Token: tok}
		}
		set[n] = struct{}{}
	}
	return set, nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum and name fields and resolves the derived fields
// (Dir default, Mode, Skip). It touches the filesystem only to read the
// working directory.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	name := strings.TrimSpace(c.BackupDirName)
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("invalid backup directory name %q", c.BackupDirName)
	}

	skip, err := ParseSkipNumbers(c.SkipNumbers)
	if err != nil {
		return err
	}
	c.Skip = skip
	c.Mode = sequence.ParseStartMode(c.StartMode)

	if c.Dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("cannot determine working directory: %w", err)
		}
		c.Dir = wd
	}
	c.Dir = NormalizeDirArg(c.Dir)
	if c.Dir == "" {
		return errors.New("directory must not be empty")
	}
	return nil
}

// DirBase returns the base name of the target directory, which prefixes
// every renamed file. Relative paths such as "." are resolved first.
func (c *Config) DirBase() string {
	if abs, err := filepath.Abs(c.Dir); err == nil {
		return filepath.Base(abs)
	}
	return filepath.Base(c.Dir)
}

// BackupDir returns the full path of the backup subdirectory.
func (c *Config) BackupDir() string {
	return filepath.Join(c.Dir, c.BackupDirName)
}
