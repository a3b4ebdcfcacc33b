package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/sheley/photo-rename-script/internal/backup"
	"github.com/sheley/photo-rename-script/internal/config"
	"github.com/sheley/photo-rename-script/internal/display"
	"github.com/sheley/photo-rename-script/internal/logging"
	"github.com/sheley/photo-rename-script/internal/naming"
	"github.com/sheley/photo-rename-script/internal/sequence"
)

// Run is the top-level batch entry point. It validates the directory,
// discovers files, ensures the backup subdirectory, then backs up and
// renames each file in order. Validation errors are returned unmodified;
// per-file failures only show up in the logs and in RunStats.Failed.
func Run(fsys afero.Fs, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats
	layout := NewLayout(cfg)

	if err := Validate(fsys, layout); err != nil {
		return stats, err
	}

	files, err := Discover(fsys, layout)
	if err != nil {
		return stats, fmt.Errorf("list %s: %w", layout.Dir, err)
	}
	stats.Total = len(files)
	if stats.Total == 0 {
		log.Warn("No files found in %s", layout.Dir)
		return stats, nil
	}

	logBatchHeader(cfg, log, layout, files)

	copier := backup.New(fsys, cfg.VerifyBackup)
	if !cfg.DryRun {
		created, err := copier.EnsureDir(layout.BackupDir())
		if err != nil {
			return stats, err
		}
		if created {
			log.Info("Created backup directory: %s", layout.BackupDir())
		} else {
			log.Info("Reusing backup directory: %s", layout.BackupDir())
		}
	}

	r := &runner{
		fsys:   fsys,
		cfg:    cfg,
		log:    log,
		layout: layout,
		seq:    sequence.New(cfg.Mode, cfg.Skip),
		claims: naming.NewClaimSet(),
		copier: copier,
		stats:  &stats,
	}
	for i, f := range files {
		stats.Current = i + 1
		r.processFile(i, f)
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// runner carries the state of one run through the per-file loop.
type runner struct {
	fsys   afero.Fs
	cfg    *config.Config
	log    *logging.Logger
	layout Layout
	seq    *sequence.Sequencer
	claims *naming.ClaimSet
	copier *backup.Copier
	stats  *RunStats
}

// processFile handles one file: token → target → backup → rename.
// The token is drawn before anything can fail, so a failed file still
// consumes its index.
func (r *runner) processFile(pos int, f FileEntry) {
	token := r.seq.Token(pos)
	target := naming.TargetName(r.layout.Base, token, r.cfg.Suffix, f.Extension)
	r.log.Info("[%d/%d] %s -> %s", r.stats.Current, r.stats.Total, f.Name, target)

	if err := r.claims.Claim(f.Name, target); err != nil {
		r.fail(&FileError{Name: f.Name, Op: "claim", Err: err})
		return
	}

	targetPath := filepath.Join(r.layout.Dir, target)
	if target != f.Name {
		exists, err := afero.Exists(r.fsys, targetPath)
		if err != nil {
			r.fail(&FileError{Name: f.Name, Op: "rename", Err: err})
			return
		}
		if exists {
			r.fail(&FileError{Name: f.Name, Op: "rename", Err: fmt.Errorf("%w: %s", ErrTargetExists, target)})
			return
		}
	}

	if r.cfg.DryRun {
		r.log.Success("[DRY] Would back up %s and rename to %s", f.Name, target)
		r.succeed(f.Name, target)
		return
	}

	n, err := r.copier.Copy(f.FullPath, r.layout.BackupDir())
	if err != nil {
		r.fail(&FileError{Name: f.Name, Op: "backup", Err: err})
		return
	}
	r.stats.BackedUpBytes += n
	r.log.Debug("  Backed up %s (%s)", f.Name, display.FormatBytes(n))

	if err := r.fsys.Rename(f.FullPath, targetPath); err != nil {
		r.fail(&FileError{Name: f.Name, Op: "rename", Err: err})
		return
	}
	r.succeed(f.Name, target)
}

func (r *runner) succeed(original, renamed string) {
	r.stats.Renamed++
	r.stats.Records = append(r.stats.Records, RenameRecord{OriginalName: original, NewName: renamed})
}

func (r *runner) fail(err *FileError) {
	r.stats.Failed++
	r.log.Error("  %v", err)
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, l Layout, files []FileEntry) {
	log.Info("Found %s in %s", describe(files), l.Dir)
	log.Info("Start mode: %s", cfg.Mode)
	if len(cfg.Skip) > 0 {
		nums := make([]string, 0, len(cfg.Skip))
		for _, n := range cfg.Skip.Sorted() {
			nums = append(nums, fmt.Sprint(n))
		}
		log.Info("Skipping indexes: %s", strings.Join(nums, ", "))
	}
	if cfg.Suffix != "" {
		log.Info("Suffix: %q", cfg.Suffix)
	}
	log.Info("Backup: %s", l.BackupDir())
	if cfg.VerifyBackup {
		log.Info("Backups are hash-verified")
	}
	if cfg.DryRun {
		log.Warn("DRY RUN: nothing will be copied or renamed")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d renamed, %d failed (of %d)", stats.Renamed, stats.Failed, stats.Total)
	for _, rec := range stats.Records {
		log.Info("  %s -> %s", rec.OriginalName, rec.NewName)
	}
	if cfg.DryRun {
		log.Info("  Backed up: n/a (dry run)")
		return
	}
	if stats.Failed > 0 {
		log.Warn("  %d file(s) were left untouched or only backed up; see errors above", stats.Failed)
	}
	log.Success("  Backed up: %s", display.FormatBytes(stats.BackedUpBytes))
}
