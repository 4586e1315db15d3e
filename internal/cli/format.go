package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"php-ls/internal/document"
	"php-ls/internal/format"
	"php-ls/internal/logging"
)

type formatFlags struct {
	write     bool
	check     bool
	diff      bool
	rangeSpec string
	tabSize   int
	useTabs   bool
	color     string
}

func newFormatCommand(a *app) *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "format [files...]",
		Short: "Format PHP files",
		Long:  formatLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFormat(cmd, args, flags)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&flags.write, "write", "w", false, "write the result back to the files")
	f.BoolVar(&flags.check, "check", false, "list files that would change and exit with status 1")
	f.BoolVarP(&flags.diff, "diff", "d", false, "print a diff instead of the formatted source")
	f.StringVar(&flags.rangeSpec, "range", "", "only format LINE:COL-LINE:COL (1-based, single input)")
	f.IntVar(&flags.tabSize, "tab-size", 0, "spaces per indentation level (default from config)")
	f.BoolVar(&flags.useTabs, "use-tabs", false, "indent with tabs")
	f.StringVar(&flags.color, "color", "auto", "colorize diffs: auto, always, never")

	return cmd
}

const formatLongDescription = `Format PHP source the same way the language server does.

With no files the source is read from stdin. By default the formatted source
is written to stdout; --write, --check and --diff change what is produced.
Files with syntax errors are reported and left alone.

Examples:
  php-ls format index.php                # Print the formatted file
  php-ls format -w src/*.php             # Format files in place
  php-ls format --check src/*.php        # Fail if any file would change
  php-ls format --diff index.php         # Show what would change
  php-ls format --range 10:1-20:1 a.php  # Format lines 10 to 19
  cat a.php | php-ls format --use-tabs   # Format stdin with tabs`

// formatRun holds the settings of one format invocation
type formatRun struct {
	manager *document.Manager
	options format.Options
	span    *protocol.Range
	flags   *formatFlags
	out     io.Writer
	colored bool
	logger  *log.Logger
}

func (a *app) runFormat(cmd *cobra.Command, args []string, flags *formatFlags) error {
	cfg := a.config()

	options, err := flags.options(cmd, cfg.FormatOptions())
	if err != nil {
		return err
	}

	run := &formatRun{
		options: options,
		flags:   flags,
		out:     cmd.OutOrStdout(),
		colored: colorEnabled(flags.color, cmd.OutOrStdout()),
		logger:  logging.FromContext(cmd.Context()),
	}

	if flags.rangeSpec != "" {
		span, err := parseRange(flags.rangeSpec)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
		if len(args) > 1 {
			return fmt.Errorf("%w: --range needs a single input", ErrInvalidUsage)
		}
		run.span = &span
	}
	if flags.write && len(args) == 0 {
		return fmt.Errorf("%w: --write needs file arguments", ErrInvalidUsage)
	}

	run.manager, err = document.NewManager(cfg.Files.Extensions...)
	if err != nil {
		return err
	}
	defer run.manager.Close()

	paths := args
	if len(paths) == 0 {
		paths = []string{""}
	}

	var changed, skipped int
	for _, path := range paths {
		in, err := readInput(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}

		result, err := run.format(in)
		if err != nil {
			return err
		}
		switch result {
		case resultChanged:
			changed++
		case resultSkipped:
			skipped++
		}
	}

	var errs []error
	if flags.check && changed > 0 {
		errs = append(errs, ErrFormattingNeeded)
	}
	if skipped > 0 {
		errs = append(errs, ErrSyntaxErrors)
	}
	return errors.Join(errs...)
}

type formatResult int

const (
	resultUnchanged formatResult = iota
	resultChanged
	resultSkipped
)

// format formats one input and produces the output the flags ask for
func (r *formatRun) format(in *input) (formatResult, error) {
	doc, err := r.manager.Parse(in.uri, in.content)
	if err != nil {
		return resultSkipped, err
	}

	if doc.ParseResult.HasErrors() {
		first := doc.ParseResult.Errors[0]
		r.logger.Warn("skipping file with syntax errors",
			logging.FieldPath, in.name,
			"line", first.Line+1,
			"column", first.Column+1,
			"count", len(doc.ParseResult.Errors))
		return resultSkipped, nil
	}

	var edits []protocol.TextEdit
	if r.span != nil {
		start := doc.OffsetAtPosition(r.span.Start)
		end := doc.OffsetAtPosition(r.span.End)
		if end < start {
			start, end = end, start
		}
		edits = format.FormatRange(doc, r.options, start, end)
	} else {
		edits = format.Format(doc, r.options)
	}

	formatted, err := doc.ApplyEdits(edits)
	if err != nil {
		return resultUnchanged, fmt.Errorf("applying edits to %s: %w", in.name, err)
	}

	changed := !bytes.Equal(formatted, in.content)
	r.logger.Debug("formatted input",
		logging.FieldPath, in.name,
		logging.FieldEdits, len(edits),
		"changed", changed)

	if r.flags.check && changed && !r.flags.diff {
		fmt.Fprintln(r.out, in.name)
	}
	if r.flags.diff && changed {
		writeDiff(r.out, in.name, in.content, formatted, r.colored)
	}
	if r.flags.write && changed {
		if err := in.write(formatted); err != nil {
			return resultChanged, err
		}
		r.logger.Info("formatted", logging.FieldPath, in.name)
	}
	if !r.flags.write && !r.flags.check && !r.flags.diff {
		if _, err := r.out.Write(formatted); err != nil {
			return resultUnchanged, fmt.Errorf("%w: %w", ErrIO, err)
		}
	}

	if changed {
		return resultChanged, nil
	}
	return resultUnchanged, nil
}

// options overlays the indentation flags that were set on defaults
func (f *formatFlags) options(cmd *cobra.Command, defaults format.Options) (format.Options, error) {
	options := defaults

	if cmd.Flags().Changed("tab-size") {
		if f.tabSize < 1 {
			return options, fmt.Errorf("%w: --tab-size must be positive, got %d", ErrInvalidUsage, f.tabSize)
		}
		options.TabSize = f.tabSize
	}
	if cmd.Flags().Changed("use-tabs") {
		options.InsertSpaces = !f.useTabs
	}

	return options, nil
}

// parseRange parses LINE:COL-LINE:COL with 1-based lines and columns into a
// protocol range
func parseRange(spec string) (protocol.Range, error) {
	from, to, ok := strings.Cut(spec, "-")
	if !ok {
		return protocol.Range{}, fmt.Errorf("range %q must look like LINE:COL-LINE:COL", spec)
	}

	start, err := parsePosition(from)
	if err != nil {
		return protocol.Range{}, fmt.Errorf("range start: %w", err)
	}
	end, err := parsePosition(to)
	if err != nil {
		return protocol.Range{}, fmt.Errorf("range end: %w", err)
	}

	return protocol.Range{Start: start, End: end}, nil
}

func parsePosition(s string) (protocol.Position, error) {
	lineText, colText, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return protocol.Position{}, fmt.Errorf("position %q must look like LINE:COL", s)
	}

	line, err := strconv.Atoi(lineText)
	if err != nil || line < 1 {
		return protocol.Position{}, fmt.Errorf("invalid line %q", lineText)
	}
	col, err := strconv.Atoi(colText)
	if err != nil || col < 1 {
		return protocol.Position{}, fmt.Errorf("invalid column %q", colText)
	}

	return protocol.Position{
		Line:      protocol.UInteger(line - 1),
		Character: protocol.UInteger(col - 1),
	}, nil
}
