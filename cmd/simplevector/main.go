package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/simplevector/buffer"
	"github.com/wippyai/simplevector/vector"
)

func main() {
	var (
		names       = flag.String("scenario", "", "Scenarios to run (comma-separated)")
		all         = flag.Bool("all", false, "Run every scenario (default when nothing else is selected)")
		list        = flag.Bool("list", false, "List scenarios and exit")
		interactive = flag.Bool("i", false, "Interactive playground with TUI")
		verbose     = flag.Bool("v", false, "Log reallocations")
		logPath     = flag.String("log", "", "Write logs to this file instead of stderr")
	)
	flag.Parse()

	if *interactive && (*names != "" || *all || *list) {
		fmt.Fprintln(os.Stderr, "Usage: simplevector [-scenario a,b | -all] [-v] [-log file]")
		fmt.Fprintln(os.Stderr, "       simplevector -list")
		fmt.Fprintln(os.Stderr, "       simplevector -i  (interactive mode)")
		os.Exit(1)
	}

	logger, err := setupLogging(*verbose, *logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *list {
		listScenarios(os.Stdout)
		return
	}

	if *interactive {
		if err := startInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	selection := *names
	if *all {
		selection = ""
	}
	if err := run(os.Stdout, selection); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging installs a development logger into the container packages
// when verbose output or a log file is requested.
func setupLogging(verbose bool, path string) (*zap.Logger, error) {
	if !verbose && path == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	if path != "" {
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	vector.SetLogger(logger.Named("vector"))
	buffer.SetLogger(logger.Named("buffer"))
	return logger, nil
}

func startInteractive() error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return stderrors.New("interactive mode needs a terminal")
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		width = defaultWidth
	}
	v := vector.New[int]()
	defer v.Free()
	return runInteractive(v, width)
}

func listScenarios(w io.Writer) {
	for _, s := range scenarios {
		fmt.Fprintf(w, "  %-30s %s\n", s.name, s.desc)
	}
}

// run executes the named scenarios, or all of them when names is empty,
// and reports each outcome on w.
func run(w io.Writer, names string) error {
	selected, err := selectScenarios(names)
	if err != nil {
		return err
	}

	failed := 0
	for _, s := range selected {
		start := time.Now()
		err := runScenario(s)
		elapsed := time.Since(start).Round(time.Microsecond)
		if err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s (%s): %v\n", s.name, elapsed, err)
			continue
		}
		fmt.Fprintf(w, "ok   %s (%s)\n", s.name, elapsed)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(selected))
	}
	fmt.Fprintf(w, "\nall %d scenarios passed\n", len(selected))
	return nil
}

func selectScenarios(names string) ([]scenario, error) {
	if strings.TrimSpace(names) == "" {
		return scenarios, nil
	}

	var selected []scenario
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s, ok := findScenario(name)
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q (use -list)", name)
		}
		selected = append(selected, s)
	}
	return selected, nil
}
