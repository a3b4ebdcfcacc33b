package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sheley/photo-rename-script/internal/sequence"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/photos/box1", "/photos/box1"},
		{"single trailing slash", "/photos/box1/", "/photos/box1"},
		{"multiple trailing slashes", "/photos/box1///", "/photos/box1"},
		{"root path", "/", "/"},
		{"relative path", "box1", "box1"},
		{"relative with slash", "box1/", "box1"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSkipNumbers(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"single", "2", []int{2}, false},
		{"list", "4,13,2", []int{2, 4, 13}, false},
		{"brackets", "[4,13]", []int{4, 13}, false},
		{"spaces", " [ 4 , 13 ] ", []int{4, 13}, false},
		{"empty brackets", "[]", nil, false},
		{"trailing comma", "4,", []int{4}, false},
		{"duplicates", "4,4", []int{4}, false},
		{"word", "4,five", nil, true},
		{"float", "4.5", nil, true},
		{"unbalanced bracket", "[4,5", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSkipNumbers(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSkipNumbers(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				var perr *SkipNumberParseError
				if !errors.As(err, &perr) {
					t.Errorf("error %v is not a *SkipNumberParseError", err)
				}
				return
			}
			sorted := got.Sorted()
			if len(sorted) != len(tt.want) {
				t.Fatalf("ParseSkipNumbers(%q) = %v, want %v", tt.in, sorted, tt.want)
			}
			for i := range tt.want {
				if sorted[i] != tt.want[i] {
					t.Errorf("ParseSkipNumbers(%q) = %v, want %v", tt.in, sorted, tt.want)
				}
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Dir = t.TempDir()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_BackupDirName(t *testing.T) {
	for _, name := range []string{"", " ", ".", "..", "a/b"} {
		cfg := DefaultConfig()
		cfg.Dir = t.TempDir()
		cfg.BackupDirName = name
		if err := cfg.Validate(); err == nil {
			t.Errorf("Validate() with backup dir %q should fail", name)
		}
	}
}

func TestValidate_ResolvesDerivedFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dir = "/photos/box1/"
	cfg.StartMode = "X"
	cfg.SkipNumbers = "[3,7]"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Dir != "/photos/box1" {
		t.Errorf("Dir = %q, want %q", cfg.Dir, "/photos/box1")
	}
	if cfg.Mode != sequence.ExtendedStart {
		t.Errorf("Mode = %v, want %v", cfg.Mode, sequence.ExtendedStart)
	}
	if !cfg.Skip.Contains(3) || !cfg.Skip.Contains(7) || len(cfg.Skip) != 2 {
		t.Errorf("Skip = %v, want {3,7}", cfg.Skip.Sorted())
	}
	if cfg.DirBase() != "box1" {
		t.Errorf("DirBase() = %q, want %q", cfg.DirBase(), "box1")
	}
	if cfg.BackupDir() != filepath.Join("/photos/box1", DefaultBackupDirName) {
		t.Errorf("BackupDir() = %q", cfg.BackupDir())
	}
}

func TestValidate_DefaultsToWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Dir != NormalizeDirArg(wd) {
		t.Errorf("Dir = %q, want %q", cfg.Dir, wd)
	}
}

func TestValidate_SkipParseError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dir = t.TempDir()
	cfg.SkipNumbers = "1,x"
	var perr *SkipNumberParseError
	if err := cfg.Validate(); !errors.As(err, &perr) {
		t.Fatalf("Validate() error = %v, want *SkipNumberParseError", err)
	}
	if perr.Token != "x" {
		t.Errorf("Token = %q, want %q", perr.Token, "x")
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BackupDirName != "lab scans" {
		t.Errorf("default BackupDirName = %q, want %q", cfg.BackupDirName, "lab scans")
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
	if cfg.DryRun {
		t.Error("default DryRun should be false")
	}
	if cfg.VerifyBackup {
		t.Error("default VerifyBackup should be false")
	}
}
