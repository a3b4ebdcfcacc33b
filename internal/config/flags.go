package config

// This file wires the cobra command, its flags and the viper layering.
// Precedence, lowest first: DefaultConfig, config file, PHOTORENAME_* env,
// flags, positional arguments.

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config keys shared by flags, env and config file.
const (
	keyStartMode = "mode"
	keySkip      = "skip"
	keySuffix    = "suffix"
	keyBackupDir = "backup-dir"
	keyDryRun    = "dry-run"
	keyVerify    = "verify"
	keyVerbose   = "verbose"
	keyColor     = "color"
	keyNoColor   = "no-color"
	keyLog       = "log"
)

// EnvPrefix is the prefix for environment overrides (PHOTORENAME_BACKUP_DIR, ...).
const EnvPrefix = "PHOTORENAME"

// NewCommand returns the root command. When it runs, cfg is populated and
// validated and then handed to run. Fatal errors from run are returned
// unmodified by Execute.
func NewCommand(cfg *Config, version string, run func(*Config) error) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "photorename [directory] [start-mode] [skip-numbers] [suffix]",
		Short: "Rename a directory of scans into a sortable, indexed scheme",
		Long: `photorename renames every visible file in a directory to
<dir>_<index><suffix><ext>, ordered alphabetically (case-insensitive), after
copying the original into the "lab scans" backup subdirectory.

Arguments (all optional):
  directory     directory to process (default: current directory)
  start-mode    x | 0 | 00 (special leading indexes __X, _00, 0)
  skip-numbers  indexes never to use, e.g. 4,13 or [4,13]
  suffix        literal text appended after every index

Flags must come before the directory; everything after it is an argument.

Examples:
  photorename ~/scans/box1
  photorename ~/scans/box1 x
  photorename ~/scans/box1 0 [2,13] b
  photorename ~/scans/box1 "" "" -b
  photorename --dry-run .`,
		Version:       version,
		Args:          cobra.MaximumNArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("bind flags: %w", err)
			}
			if err := load(v, cfg); err != nil {
				return err
			}
			applyPositionalArgs(cfg, args)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	f := cmd.Flags()
	f.BoolP(keyDryRun, "d", cfg.DryRun, "Preview only; do not copy or rename")
	f.Bool(keyVerify, cfg.VerifyBackup, "Hash-verify every backup copy against its original")
	f.String(keyBackupDir, cfg.BackupDirName, "Name of the backup subdirectory")
	f.BoolP(keyVerbose, "v", cfg.Verbose, "Verbose output")
	f.String(keyColor, string(cfg.ColorMode), "Colored logs: auto | always | never")
	f.Bool(keyNoColor, false, "Disable colored logs")
	f.StringP(keyLog, "l", cfg.LogFile, "Append logs to file")
	f.StringVar(&cfg.ConfigFile, "config", "", "Config file (default: $HOME/.config/photorename/photorename.yaml)")

	// Positional values may also come from the config file or environment.
	v.SetDefault(keyStartMode, cfg.StartMode)
	v.SetDefault(keySkip, cfg.SkipNumbers)
	v.SetDefault(keySuffix, cfg.Suffix)

	// Flags end at the first positional argument, so a suffix or skip entry
	// starting with "-" is taken verbatim.
	f.SetInterspersed(false)
	return cmd
}

// load reads the optional config file and environment, then copies the
// merged values into cfg.
func load(v *viper.Viper, cfg *Config) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cfg.ConfigFile != "" {
		v.SetConfigFile(cfg.ConfigFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "photorename"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("photorename")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg.StartMode = v.GetString(keyStartMode)
	cfg.SkipNumbers = v.GetString(keySkip)
	cfg.Suffix = v.GetString(keySuffix)
	cfg.BackupDirName = v.GetString(keyBackupDir)
	cfg.DryRun = v.GetBool(keyDryRun)
	cfg.VerifyBackup = v.GetBool(keyVerify)
	cfg.Verbose = v.GetBool(keyVerbose)
	cfg.LogFile = v.GetString(keyLog)
	cfg.ColorMode = ColorMode(strings.ToLower(v.GetString(keyColor)))
	if v.GetBool(keyNoColor) {
		cfg.ColorMode = ColorNever
	}
	return nil
}

// applyPositionalArgs sets directory, start mode, skip list and suffix from
// up to four positional arguments. Missing arguments keep earlier values.
func applyPositionalArgs(cfg *Config, args []string) {
	if len(args) > 0 {
		cfg.Dir = args[0]
	}
	if len(args) > 1 {
		cfg.StartMode = args[1]
	}
	if len(args) > 2 {
		cfg.SkipNumbers = args[2]
	}
	if len(args) > 3 {
		cfg.Suffix = args[3]
	}
}
