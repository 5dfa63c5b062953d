// Package cli implements the windiff command line: argument parsing, wiring and exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Cyclone1070/windiff/internal/config"
	"github.com/Cyclone1070/windiff/internal/report"
	"github.com/Cyclone1070/windiff/internal/service/launcher"
	"github.com/Cyclone1070/windiff/internal/service/path"
	"github.com/spf13/pflag"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Version is reported by --version. Overridden at build time with -ldflags "-X".
var Version = "0.0"

const (
	name  = "windiff"
	about = "Launches a visual diff tool to compare files between two directories"
)

// viewerArgsNote documents how WINDIFF_VIEWER_ARGS is split.
const viewerArgsNote = "WINDIFF_VIEWER_ARGS is split on whitespace with no quoting; an argument cannot contain a space."

// ViewerLauncher starts the external diff viewer.
type ViewerLauncher interface {
	Launch(ctx context.Context, left, right string) (*launcher.Result, error)
}

// Dependencies holds the components required to run the application.
type Dependencies struct {
	LoadConfig  func() (*config.Config, error)
	NewLauncher func(*config.Config) ViewerLauncher
}

// DefaultDependencies wires the environment backed config loader and the OS launcher.
func DefaultDependencies() Dependencies {
	return Dependencies{
		LoadConfig: config.Load,
		NewLauncher: func(cfg *config.Config) ViewerLauncher {
			return launcher.NewLauncher(cfg)
		},
	}
}

type options struct {
	leftRoot  string
	rightRoot string
	verbose   bool
	version   bool
}

// Run parses args, resolves the file against both roots and launches the viewer.
// It returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, deps Dependencies) int {
	var opts options
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.leftRoot, "left-root-dir", "l", "", "left root directory (default "+config.DefaultLeftRoot+")")
	flags.StringVarP(&opts.rightRoot, "right-root-dir", "r", "", "right root directory (default "+config.DefaultRightRoot+")")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print resolved paths and the viewer result to stderr")
	flags.BoolVarP(&opts.version, "version", "V", false, "print version and exit")
	flags.Usage = func() {}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(stdout, flags)
			return ExitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printUsage(stderr, flags)
		return ExitUsage
	}

	if opts.version {
		fmt.Fprintf(stdout, "%s %s\n", name, Version)
		return ExitOK
	}

	if flags.NArg() != 1 {
		if flags.NArg() == 0 {
			fmt.Fprintln(stderr, "Error: missing required argument <file>")
		} else {
			fmt.Fprintf(stderr, "Error: expected one <file>, got %d arguments\n", flags.NArg())
		}
		fmt.Fprintln(stderr)
		printUsage(stderr, flags)
		return ExitUsage
	}
	file := flags.Arg(0)

	cfg, err := deps.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}
	if flags.Changed("left-root-dir") {
		cfg.Roots.Left = opts.leftRoot
	}
	if flags.Changed("right-root-dir") {
		cfg.Roots.Right = opts.rightRoot
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}

	if err := compare(ctx, file, cfg, opts.verbose, stderr, deps); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitOK
}

func compare(ctx context.Context, file string, cfg *config.Config, verbose bool, stderr io.Writer, deps Dependencies) error {
	resolver := path.NewResolver(cfg.Roots.Left, cfg.Roots.Right)
	pair := resolver.Resolve(file)

	var printer *report.Printer
	if verbose {
		printer = report.NewPrinter(stderr)
		printer.Paths(resolver.LeftRoot(), resolver.RightRoot(), pair)
	}

	res, err := deps.NewLauncher(cfg).Launch(ctx, pair.Left, pair.Right)
	if err != nil {
		return err
	}

	if verbose {
		printer.Result(res)
	}
	return nil
}

func printUsage(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintln(w, about)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s [options] <file>\n", name)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, flags.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  WINDIFF_LEFT_ROOT, WINDIFF_RIGHT_ROOT, WINDIFF_VIEWER, WINDIFF_VIEWER_ARGS, WINDIFF_MAX_OUTPUT_SIZE")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+viewerArgsNote)
}
