// Diagnostic tool for rendering HDF5 datatype messages as dtype strings.
//
// Each argument (or each non-empty stdin line when no arguments are given)
// is a hex-encoded datatype message. For every message the tool prints the
// display string and the canonical repr.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/robert-malhotra/go-dtype/dtype"
	"github.com/robert-malhotra/go-dtype/internal/h5type"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	reprStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

type options struct {
	verbose  bool
	plain    bool
	maxDepth int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dtypeinspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.BoolVar(&opts.verbose, "v", false, "log diagnostics to stderr")
	fs.BoolVar(&opts.plain, "plain", false, "disable styled output")
	fs.IntVar(&opts.maxDepth, "max-depth", dtype.MaxNestingDepth, "maximum nesting depth to decode and render")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: dtypeinspect [flags] [hex-datatype-message ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := zap.NewNop()
	if opts.verbose {
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(stderr),
			zapcore.DebugLevel,
		)
		log = zap.New(core, zap.Development())
		defer log.Sync()
	}

	styled := !opts.plain && isTerminal(stdout)

	inputs := fs.Args()
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(stderr, "ERROR: Failed to read input: %v\n", err)
			return 1
		}
	}

	insp := &inspector{
		decodeOpts: []h5type.Option{h5type.WithMaxDepth(opts.maxDepth), h5type.WithLogger(log)},
		renderOpts: []dtype.Option{dtype.WithMaxDepth(opts.maxDepth), dtype.WithLogger(log)},
		styled:     styled,
	}

	status := 0
	for i, in := range inputs {
		if err := insp.inspect(stdout, in); err != nil {
			line := fmt.Sprintf("#%d ERROR: %v", i, err)
			if styled {
				line = errorStyle.Render(line)
			}
			fmt.Fprintln(stdout, line)
			status = 1
		}
	}
	return status
}

// inspector renders messages with one set of decode and render options.
type inspector struct {
	decodeOpts []h5type.Option
	renderOpts []dtype.Option
	styled     bool
}

func (in *inspector) inspect(w io.Writer, msg string) error {
	data, err := hex.DecodeString(strings.ReplaceAll(msg, " ", ""))
	if err != nil {
		return fmt.Errorf("invalid hex: %w", err)
	}

	d, err := h5type.Decode(data, in.decodeOpts...)
	if err != nil {
		return err
	}

	str, err := dtype.Display(d, in.renderOpts...)
	if err != nil {
		return err
	}
	repr, err := dtype.Repr(d, in.renderOpts...)
	if err != nil {
		return err
	}

	strLabel, reprLabel := "str: ", "repr:"
	if in.styled {
		strLabel = labelStyle.Render(strLabel)
		reprLabel = labelStyle.Render(reprLabel)
		repr = reprStyle.Render(repr)
	}
	fmt.Fprintf(w, "%s %s\n%s %s\n", strLabel, str, reprLabel, repr)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
