package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	jars "github.com/hashicorp/go-jars"
)

// CLI are the cli parameters for the jars binary
type CLI struct {
	Archive           string           `arg:"" name:"archive" help:"Path to archive. (\"-\" for STDIN)"`
	Concurrency       int              `short:"j" default:"1" help:"Number of entries decompressed in parallel."`
	Exts              []string         `short:"e" name:"ext" help:"Extract entries with this file extension. (repeatable)"`
	ExtSuffix         bool             `help:"Match extensions by suffix, so \"ass\" matches \"class\"."`
	KeepMetaInfo      bool             `short:"k" help:"Extract the META-INF directory."`
	MatchAny          bool             `help:"Extract entries that match a target OR an extension."`
	MaxEntrySize      int64            `optional:"" default:"-1" help:"Maximum size of a single extracted entry (in bytes). (disable check: -1)"`
	MaxExtractionSize int64            `optional:"" default:"-1" help:"Maximum size of all extracted entries (in bytes). (disable check: -1)"`
	MaxFiles          int64            `optional:"" default:"-1" help:"Maximum entries in the archive. (disable check: -1)"`
	MaxInputSize      int64            `optional:"" default:"-1" help:"Maximum archive size (in bytes). (disable check: -1)"`
	Metrics           bool             `short:"M" help:"Print metrics to log after extraction."`
	Mmap              bool             `help:"Map the archive into memory (unix only)."`
	Targets           []string         `short:"t" name:"target" help:"Extract entries whose path starts with this prefix. (repeatable)"`
	Verbose           bool             `short:"v" help:"Verbose logging."`
	Version           kong.VersionFlag `short:"V" help:"Print release version information."`
}

// Run parses args and runs the jars cli. It returns the exit code.
func Run(args []string, stdout io.Writer, version, commit, date string) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("jars"),
		kong.Description("Extract entries of a jar into memory and list them"),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s), commit %s, built at %s", filepath.Base(os.Args[0]), version, commit, date),
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if _, err := parser.Parse(args); err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	// Check for verbose output
	logLevel := slog.LevelError
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := cli.Run(context.Background(), os.Stdin, stdout, logger); err != nil {
		logger.Error("extraction failed", "err", err)
		return 1
	}
	return 0
}

// Option builds the extraction filter from the cli parameters.
func (c *CLI) Option() jars.Option {
	b := jars.Builder().Targets(c.Targets...).Exts(c.Exts...)
	if c.KeepMetaInfo {
		b.KeepMetaInfo()
	}
	if c.MatchAny {
		b.MatchAny()
	}
	if c.ExtSuffix {
		b.ExtensionSuffix()
	}
	return b.Build()
}

// Run extracts the archive and writes the size and path of every extracted
// entry to stdout, sorted by path.
func (c *CLI) Run(ctx context.Context, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {

	// setup metrics hook
	metricsToLog := func(ctx context.Context, td *jars.TelemetryData) {
		if c.Metrics {
			logger.Info("extraction finished", "metrics", td)
		}
	}

	opts := []jars.ConfigOption{
		jars.WithConcurrency(c.Concurrency),
		jars.WithLogger(logger),
		jars.WithMaxEntrySize(c.MaxEntrySize),
		jars.WithMaxExtractionSize(c.MaxExtractionSize),
		jars.WithMaxFiles(c.MaxFiles),
		jars.WithMaxInputSize(c.MaxInputSize),
		jars.WithMemoryMap(c.Mmap),
		jars.WithTelemetryHook(metricsToLog),
	}

	var (
		jar *jars.Jar
		err error
	)
	if c.Archive == "-" {
		jar, err = jars.ExtractReader(ctx, bufio.NewReader(stdin), c.Option(), opts...)
	} else {
		jar, err = jars.Extract(ctx, c.Archive, c.Option(), opts...)
	}
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	for _, name := range jar.Names() {
		fmt.Fprintf(w, "%d\t%s\n", len(jar.Files[name]), name)
	}
	return w.Flush()
}
