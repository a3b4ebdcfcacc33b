// Command photorename renames every visible file in a directory of scans to
// <dir>_<index><suffix><ext>, backing each original up first.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/sheley/photo-rename-script/internal/config"
	"github.com/sheley/photo-rename-script/internal/display"
	"github.com/sheley/photo-rename-script/internal/logging"
	"github.com/sheley/photo-rename-script/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// errReported marks a failure that was already written through the logger.
var errReported = errors.New("reported")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.DefaultConfig()
	cmd := config.NewCommand(&cfg, version, func(cfg *config.Config) error {
		log, err := logging.NewLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Close()

		// Logger available: all output goes through log from here on.
		display.PrintBanner(os.Stdout, version)
		log.Debug("photorename %s (%s)", version, commit)

		stats, err := pipeline.Run(afero.NewOsFs(), cfg, log)
		if err != nil {
			log.Error("%v", err)
			return errReported
		}
		if len(stats.Records) > 0 {
			rows := make([]display.Row, 0, len(stats.Records))
			for _, rec := range stats.Records {
				rows = append(rows, display.Row{From: rec.OriginalName, To: rec.NewName})
			}
			fmt.Fprintln(os.Stdout, display.RenderRenames(rows))
		}
		// Per-file failures were logged individually and do not change the exit status.
		return nil
	})
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errReported) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "photorename: %v\n", err)
		var skipErr *config.SkipNumberParseError
		if errors.As(err, &skipErr) {
			fmt.Fprint(os.Stderr, cmd.UsageString())
		}
		return 1
	}
	return 0
}
